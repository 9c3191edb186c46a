// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package document

import (
	"context"
	"sync"
)

// MemoryBackend keeps documents in process memory. Contents are lost on
// exit; used by tests and throwaway runs.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

// Ensure stores a copy of seed under name unless the name is already taken.
func (b *MemoryBackend) Ensure(_ context.Context, name string, seed []byte) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.docs[name]; ok {
		return false, nil
	}
	b.docs[name] = clone(seed)
	return true, nil
}

// Load returns a copy of the stored document, or ErrMissing.
func (b *MemoryBackend) Load(_ context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.docs[name]
	if !ok {
		return nil, ErrMissing
	}
	return clone(data), nil
}

// Save replaces the stored document with a copy of data.
func (b *MemoryBackend) Save(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.docs[name] = clone(data)
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
