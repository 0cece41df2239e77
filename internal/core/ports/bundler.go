// Package ports defines the core interfaces for the application.
package ports

import "context"

// Transform rewrites the source of a single module before it is bundled.
//
//go:generate mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Transform interface {
	// Name identifies the transform in error reports.
	Name() string
	// Apply returns the rewritten source of the module at path.
	Apply(path string, src []byte) ([]byte, error)
}

// BundleOptions configures a single bundler invocation.
type BundleOptions struct {
	// Standalone is the global name the bundle's exports are exposed under.
	Standalone string
	// Debug embeds an inline source map.
	Debug bool
	// Transforms are applied in order to every local module.
	Transforms []Transform
}

// Bundler concatenates an entry module and its dependency closure into one bundle.
type Bundler interface {
	// Bundle returns the bundled source for the entry module.
	Bundle(ctx context.Context, entry string, opts BundleOptions) ([]byte, error)
}
