package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Missing returns the paths that do not exist, preserving their order.
func (v *Verifier) Missing(paths []string) ([]string, error) {
	var missing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, path)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
		}
	}
	return missing, nil
}
