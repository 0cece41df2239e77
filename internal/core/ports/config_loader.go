package ports

import "go.trai.ch/bundle/internal/core/domain"

// ConstantsLoader defines the interface for loading the constants table.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConstantsLoader interface {
	// Load returns the constants table with every path joined to root.
	Load(root string) (domain.Constants, error)
}
