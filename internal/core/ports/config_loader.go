package ports

import "go.trai.ch/ship/internal/core/domain"

// ConfigLoader defines the interface for loading the release configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the project at root.
	// An empty path selects ship.yaml under root and falls back to the
	// defaults when that file does not exist.
	Load(root, path string) (*domain.Config, error)
}
