// Package archive implements the extraction collaborator for zip archives.
package archive

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/askiada/go-meshgraph/pkg/pipeline/model"
)

var (
	ErrUnsafePath    = errors.New("archive entry escapes the destination")
	ErrDuplicateName = errors.New("archive holds two files with the same name")
)

// Zip extracts zip archives. The directory structure of the archive is flattened: every file is
// written directly into the destination directory.
type Zip struct {
	fs afero.Fs
}

// NewZip creates a zip extractor reading and writing fs.
func NewZip(fs afero.Fs) *Zip {
	return &Zip{fs: fs}
}

// Extract writes the regular files of the archive at archivePath into destDir. Existing files are
// never overwritten.
func (z *Zip) Extract(archivePath, destDir string) error {
	file, err := z.fs.Open(archivePath)
	if err != nil {
		return model.NewIOError("open", archivePath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return model.NewIOError("stat", archivePath, err)
	}

	// ErrInsecurePath still returns a usable reader, unsafe entries are rejected by entryName.
	reader, err := zip.NewReader(file, info.Size())
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return model.NewIOError("unzip", archivePath, err)
	}

	seen := make(map[string]struct{}, len(reader.File))

	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || skipped(entry.Name) {
			continue
		}

		name, err := entryName(entry.Name)
		if err != nil {
			return model.NewIOError("unzip", archivePath, err)
		}

		if _, ok := seen[name]; ok {
			return model.NewIOError("unzip", archivePath, errors.Wrapf(ErrDuplicateName, "%s", name))
		}

		seen[name] = struct{}{}

		err = z.extractFile(entry, filepath.Join(destDir, name))
		if err != nil {
			return err
		}
	}

	return nil
}

func (z *Zip) extractFile(entry *zip.File, dest string) error {
	src, err := entry.Open()
	if err != nil {
		return model.NewIOError("unzip", entry.Name, err)
	}
	defer src.Close()

	dst, err := z.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return model.NewIOError("create", dest, err)
	}

	_, err = io.Copy(dst, src)
	if err != nil {
		dst.Close()

		return model.NewIOError("unzip", entry.Name, err)
	}

	return model.NewIOError("close", dest, dst.Close())
}

// entryName returns the base name of a zip entry, rejecting names that would resolve outside of
// the destination.
func entryName(name string) (string, error) {
	name = strings.ReplaceAll(name, `\`, "/")

	if path.IsAbs(name) || strings.HasPrefix(path.Clean(name), "../") || path.Clean(name) == ".." {
		return "", errors.Wrapf(ErrUnsafePath, "%s", name)
	}

	base := path.Base(name)
	if base == "." || base == ".." || base == "/" || base == "" {
		return "", errors.Wrapf(ErrUnsafePath, "%s", name)
	}

	return base, nil
}

// skipped reports the metadata entries added by macOS archivers.
func skipped(name string) bool {
	return strings.HasPrefix(name, "__MACOSX/") || strings.HasPrefix(path.Base(name), "._")
}
