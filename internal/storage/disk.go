package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores uploads in <publicDir>/uploads, which the server exposes
// at /uploads/.
type Disk struct {
	dir string
}

// NewDisk returns a Disk store writing under publicDir/uploads.
func NewDisk(publicDir string) *Disk {
	return &Disk{dir: filepath.Join(publicDir, "uploads")}
}

// Dir returns the directory uploads are written to.
func (d *Disk) Dir() string {
	return d.dir
}

// Put writes data to uploads/<name>, creating the directory if needed,
// and returns its root-relative URL.
func (d *Disk) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid upload name %q", name)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload %s: %w", path, err)
	}
	return "/" + uploadPrefix + name, nil
}
