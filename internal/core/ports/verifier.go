package ports

// Verifier defines the interface for verifying file existence.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// Missing returns the paths that do not exist, in the given order.
	Missing(paths []string) ([]string, error)
}
