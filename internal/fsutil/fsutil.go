// Package fsutil implements the file collaborator of the stages on top of afero.
package fsutil

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

// Files wraps an afero file system. Every error is returned as a model.IOError.
type Files struct {
	fs afero.Fs
}

// New creates the file collaborator backed by fs.
func New(fs afero.Fs) *Files {
	return &Files{fs: fs}
}

// NewOS creates the file collaborator backed by the operating system.
func NewOS() *Files {
	return New(afero.NewOsFs())
}

// Fs returns the underlying file system.
func (f *Files) Fs() afero.Fs {
	return f.fs
}

func (f *Files) MkdirAll(dir string) error {
	return model.NewIOError("mkdir", dir, f.fs.MkdirAll(dir, 0o755))
}

func (f *Files) List(dir string) ([]os.FileInfo, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, model.NewIOError("list", dir, err)
	}

	return infos, nil
}

func (f *Files) Rename(oldPath, newPath string) error {
	return model.NewIOError("rename", oldPath, f.fs.Rename(oldPath, newPath))
}

func (f *Files) Remove(path string) error {
	return model.NewIOError("remove", path, f.fs.Remove(path))
}

func (f *Files) Create(path string) (io.WriteCloser, error) {
	file, err := f.fs.Create(path)
	if err != nil {
		return nil, model.NewIOError("create", path, err)
	}

	return file, nil
}
