package meshblocks

import (
	"context"
	"io"
	"os"
)

// Files is the file system used by the stages to prepare their working directories.
type Files interface {
	// MkdirAll creates dir and its parents.
	MkdirAll(dir string) error
	// List returns the entries of dir sorted by name.
	List(dir string) ([]os.FileInfo, error)
	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath string) error
	// Remove deletes the file at path.
	Remove(path string) error
	// Create creates or truncates the file at path.
	Create(path string) (io.WriteCloser, error)
}

// Downloader fetches a remote file.
type Downloader interface {
	// Download writes the content served at url to dest.
	Download(ctx context.Context, url, dest string) error
}

// Extractor unpacks an archive.
type Extractor interface {
	// Extract writes the files of the archive at path into destDir.
	Extract(path, destDir string) error
}
