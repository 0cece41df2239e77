package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

// Writer writes build outputs atomically.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores data at path through a temporary file in the same directory,
// so readers never observe a partially written bundle.
func (w *Writer) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return writeErr(err, path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return writeErr(err, path)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return writeErr(err, path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return writeErr(err, path)
	}
	if err := tmp.Close(); err != nil {
		return writeErr(err, path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return writeErr(err, path)
	}
	return nil
}

// Remove deletes the file at path. A missing file is not an error.
func (w *Writer) Remove(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", path)
	}
	return true, nil
}

func writeErr(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
}
