package store

import (
	"context"
	"testing"

	"nishat/internal/document"
)

// testBackend returns a fresh in-memory document backend.
func testBackend(t *testing.T) document.Backend {
	t.Helper()
	return document.NewMemoryBackend()
}

func ptr[T any](v T) *T { return &v }

var ctx = context.Background()
