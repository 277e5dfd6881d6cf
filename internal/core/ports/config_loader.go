package ports

import "go.trai.ch/rnbundle/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load applies the configuration file at path on top of base.
	// A missing file is not an error and returns base unchanged.
	Load(path string, base domain.BuildConfiguration) (domain.BuildConfiguration, error)
}

// ManifestLoader reads the project's npm manifest.
type ManifestLoader interface {
	Load(path string) (domain.Manifest, error)
}
