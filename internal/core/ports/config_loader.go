package ports

import "go.trai.ch/sharetree/internal/core/domain"

// ConfigLoader defines the interface for loading the optimizer configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the optimizer options.
	Load(path string) (domain.Options, error)
}
