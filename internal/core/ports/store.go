package ports

import "go.trai.ch/bundle/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving artifact information.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the artifact info recorded for path under the given project root.
	// Returns nil, nil if not found.
	Get(root, path string) (*domain.ArtifactInfo, error)

	// Put stores the artifact info under the given project root.
	Put(root string, info domain.ArtifactInfo) error

	// Reset removes every record under the given project root.
	Reset(root string) error
}
