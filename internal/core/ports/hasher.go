package ports

// Hasher computes content hashes of artifacts.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashBytes returns the hex digest of data.
	HashBytes(data []byte) string
	// ComputeFileHash returns the hex digest of the file at path.
	ComputeFileHash(path string) (string, error)
}
