// Package config provides the configuration and manifest loaders for rnbundle.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the project root.
const DefaultFilename = "rnbundle.yaml"

var (
	_ ports.ConfigLoader   = (*Loader)(nil)
	_ ports.ManifestLoader = (*ManifestLoader)(nil)
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load applies the file at path on top of base. A missing file returns base unchanged.
func (l *Loader) Load(path string, base domain.BuildConfiguration) (domain.BuildConfiguration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read"), "path", path))
	}

	var pf Projectfile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return base, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "parse"), "path", path))
	}

	l.logger.Info("Loaded configuration from " + path)
	return apply(pf, base), nil
}

func apply(pf Projectfile, cfg domain.BuildConfiguration) domain.BuildConfiguration {
	if pf.Platform != "" {
		cfg.Platform = pf.Platform
	}
	if pf.EntryFile != "" {
		cfg.EntryFile = pf.EntryFile
	}
	if pf.OutputDir != "" {
		cfg.OutputDir = pf.OutputDir
	}
	if pf.Framework != "" {
		cfg.FrameworkPackage = pf.Framework
	}
	if pf.NewArchEnabled != nil {
		cfg.NewArchEnabled = *pf.NewArchEnabled
	}
	if len(pf.Bundler.Cmd) > 0 {
		cfg.BundlerCommand = append([]string(nil), pf.Bundler.Cmd...)
	}
	if pf.Package.Name != "" {
		cfg.PackageName = pf.Package.Name
	}
	return cfg
}

// ManifestLoader implements ports.ManifestLoader for npm package.json files.
type ManifestLoader struct{}

// NewManifestLoader creates a new ManifestLoader.
func NewManifestLoader() *ManifestLoader {
	return &ManifestLoader{}
}

// Load reads and decodes the manifest at path.
func (m *ManifestLoader) Load(path string) (domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		return domain.Manifest{}, errors.Join(domain.ErrManifestReadFailed,
			zerr.With(zerr.Wrap(err, "read"), "path", path))
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return domain.Manifest{}, errors.Join(domain.ErrManifestReadFailed,
			zerr.With(zerr.Wrap(err, "parse"), "path", path))
	}
	return manifest, nil
}
