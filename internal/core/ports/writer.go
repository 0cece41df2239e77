package ports

// ArtifactWriter writes and removes build outputs.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ArtifactWriter interface {
	// Write replaces the file at path with data, creating parent directories as needed.
	Write(path string, data []byte) error
	// Remove deletes the file at path. It reports whether a file was removed.
	Remove(path string) (bool, error)
}
