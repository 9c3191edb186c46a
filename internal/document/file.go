// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// FileBackend stores each document as <dir>/<name>.json.
//
// Layout:
//
//	data/
//	  products.json
//	  hero-images.json
//	  schema-versions.json
type FileBackend struct {
	dir string
}

// NewFileBackend returns a FileBackend rooted at dir. The directory is
// created lazily by Ensure.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Path returns the file path for a document name.
func (b *FileBackend) Path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Ensure seeds the document file if it does not exist.
func (b *FileBackend) Ensure(_ context.Context, name string, seed []byte) (bool, error) {
	return EnsureFile(b.Path(name), seed)
}

// Load reads the document file.
func (b *FileBackend) Load(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrMissing
	}
	return data, err
}

// Save replaces the document file.
func (b *FileBackend) Save(_ context.Context, name string, data []byte) error {
	return writeFileAtomic(b.Path(name), data)
}

// EnsureFile makes sure path exists, writing seed to it if it does not.
// The parent directory is created recursively; a failure there is logged
// and otherwise ignored, since the write that follows reports it anyway.
// Safe to call before every read.
func EnsureFile(path string, seed []byte) (bool, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Error("create data directory failed", "dir", dir, "error", err)
	}

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := writeFileAtomic(path, seed); err != nil {
		return false, fmt.Errorf("seed %s: %w", path, err)
	}
	return true, nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so readers never observe a half-written document.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
