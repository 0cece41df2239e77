package ports

import "iter"

// FileWalker lists files on disk.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type FileWalker interface {
	// WalkFiles yields the files under root whose base name matches one of the patterns.
	WalkFiles(root string, patterns []string) iter.Seq[string]
}
