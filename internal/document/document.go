// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package document persists whole JSON documents by name. A Backend knows
// how to seed, load and save raw bytes (a directory of files, a SQL table,
// or memory); a Document wraps one named document with a Go type, seed
// content, and a mutex that serializes its read-modify-write cycles.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrMissing is returned by Backend.Load when the document does not exist.
var ErrMissing = errors.New("document missing")

// Backend stores raw document bytes keyed by document name.
type Backend interface {
	// Ensure writes seed under name if no document exists yet. It reports
	// whether the seed was written.
	Ensure(ctx context.Context, name string, seed []byte) (bool, error)

	// Load returns the stored bytes, or ErrMissing.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the whole document.
	Save(ctx context.Context, name string, data []byte) error
}

// Document is a typed view over one named document. Every Read first
// ensures the document exists, seeding it with the default content.
// Update holds the document lock for the whole read-modify-write cycle,
// so concurrent writers in one process cannot lose each other's changes.
// Writers in separate processes sharing a backend remain last-write-wins.
type Document[T any] struct {
	backend Backend
	name    string
	seed    T

	mu sync.Mutex
}

// NewDocument returns a Document named name backed by b. seed is written
// the first time the document is read and found missing.
func NewDocument[T any](b Backend, name string, seed T) *Document[T] {
	return &Document[T]{backend: b, name: name, seed: seed}
}

// Name returns the document name.
func (d *Document[T]) Name() string {
	return d.name
}

// Read loads and decodes the document.
func (d *Document[T]) Read(ctx context.Context) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.read(ctx)
}

// Update loads the document, passes it to fn, and saves the result. If fn
// returns an error nothing is written and the error is returned as is.
func (d *Document[T]) Update(ctx context.Context, fn func(*T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	v, err := d.read(ctx)
	if err != nil {
		return err
	}
	if err := fn(&v); err != nil {
		return err
	}
	return d.write(ctx, v)
}

// RewriteRaw hands the stored bytes to fn under the document lock and
// saves what fn returns when changed is true. Used by migrations that
// need to see fields the Go type does not model.
func (d *Document[T]) RewriteRaw(ctx context.Context, fn func(data []byte) (out []byte, changed bool, err error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensure(ctx); err != nil {
		return err
	}
	data, err := d.backend.Load(ctx, d.name)
	if err != nil {
		return fmt.Errorf("load %s: %w", d.name, err)
	}
	out, changed, err := fn(data)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := d.backend.Save(ctx, d.name, out); err != nil {
		return fmt.Errorf("save %s: %w", d.name, err)
	}
	return nil
}

func (d *Document[T]) read(ctx context.Context) (T, error) {
	var v T
	if err := d.ensure(ctx); err != nil {
		return v, err
	}
	data, err := d.backend.Load(ctx, d.name)
	if err != nil {
		return v, fmt.Errorf("load %s: %w", d.name, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", d.name, err)
	}
	return v, nil
}

func (d *Document[T]) write(ctx context.Context, v T) error {
	data, err := Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.name, err)
	}
	if err := d.backend.Save(ctx, d.name, data); err != nil {
		return fmt.Errorf("save %s: %w", d.name, err)
	}
	return nil
}

func (d *Document[T]) ensure(ctx context.Context) error {
	seed, err := Encode(d.seed)
	if err != nil {
		return fmt.Errorf("encode seed %s: %w", d.name, err)
	}
	created, err := d.backend.Ensure(ctx, d.name, seed)
	if err != nil {
		return fmt.Errorf("ensure %s: %w", d.name, err)
	}
	if created {
		slog.Info("document seeded", "name", d.name)
	}
	return nil
}

// Encode renders v as two-space indented JSON, the on-disk format of every
// document.
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
