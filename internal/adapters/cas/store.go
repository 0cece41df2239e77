// Package cas implements build info storage for written artifacts.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a file-per-artifact strategy.
// Records live under <root>/.bundle/store, one JSON file per output path.
type Store struct{}

// NewStore creates a new BuildInfoStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the artifact info recorded for path.
func (s *Store) Get(root, path string) (*domain.ArtifactInfo, error) {
	filename := s.getFilename(root, path)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	var info domain.ArtifactInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}

	return &info, nil
}

// Put stores the artifact info. The stored Path is made relative to root.
func (s *Store) Put(root string, info domain.ArtifactInfo) error {
	info.Path = artifactKey(root, info.Path)

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, info.Path)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", info.Path)
	}

	return nil
}

// Reset removes every record under root.
func (s *Store) Reset(root string) error {
	if err := os.RemoveAll(filepath.Join(root, domain.StateDirName)); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *Store) getFilename(root, path string) string {
	hash := sha256.Sum256([]byte(artifactKey(root, path)))
	hexHash := hex.EncodeToString(hash[:])
	storeDir := filepath.Join(root, domain.DefaultStorePath())
	return filepath.Join(storeDir, hexHash+".json")
}

// artifactKey returns path relative to root, slash separated, so that an artifact
// has one key whether root is given as a relative or an absolute path.
func artifactKey(root, path string) string {
	absRoot, errRoot := filepath.Abs(root)
	absPath, errPath := filepath.Abs(path)
	if errRoot == nil && errPath == nil {
		if rel, err := filepath.Rel(absRoot, absPath); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(filepath.Clean(path))
}
