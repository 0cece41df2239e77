package domain

import "path/filepath"

const (
	// DirPerm is the permission used for directories created by the build.
	DirPerm = 0o750
	// FilePerm is the permission used for artifacts and store files.
	FilePerm = 0o644

	// StateDirName is the directory holding build metadata under the project root.
	StateDirName = ".bundle"
	// StoreDirName is the build info store directory under StateDirName.
	StoreDirName = "store"
)

// DefaultStorePath returns the build info store path relative to the project root.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, StoreDirName)
}
