package ports

import (
	"context"

	"go.trai.ch/bundle/internal/core/domain"
)

// Minifier compresses bundled source text.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Minify returns the compressed form of src.
	Minify(ctx context.Context, src []byte, opts domain.MinifyOptions) ([]byte, error)
}
