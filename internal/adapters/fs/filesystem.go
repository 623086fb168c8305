// Package fs implements the filesystem port over the local disk.
package fs

import (
	"os"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// GetFileInfo stats a path and returns its modification time.
func (f *FileSystem) GetFileInfo(path string) (ports.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ports.FileInfo{}, zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", path)
	}
	return ports.FileInfo{ModTime: info.ModTime()}, nil
}

// ReadFile reads a file's contents.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by the driver
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}
