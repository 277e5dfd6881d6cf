package domain

import "path/filepath"

// Mode selects how the bundler is asked to build the application.
type Mode string

const (
	// ModeDevelopment produces an unminified bundle and never compiles bytecode.
	ModeDevelopment Mode = "development"
	// ModeProduction produces a minified bundle eligible for bytecode compilation.
	ModeProduction Mode = "production"
)

// IsDevelopment reports whether the mode is development.
func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}

// PlatformAndroid is the only platform the brownfield bundle targets.
const PlatformAndroid = "android"

const (
	// DefaultEntryFile is the application entry point handed to the bundler.
	DefaultEntryFile = "index.js"
	// DefaultOutputDir is the directory every artifact is written to.
	DefaultOutputDir = "dist"
	// DefaultFrameworkPackage is the manifest dependency whose version is recorded in metadata.
	DefaultFrameworkPackage = "react-native"
	// DefaultPackageName is the name of the published bundle package.
	DefaultPackageName = "rnapp-bundle"
)

// DefaultBundlerCommand is the command prefix used to run the bundler.
var DefaultBundlerCommand = []string{"npx", "react-native", "bundle"}

// BuildConfiguration holds the inputs of a single pipeline run.
// It is built once at process start and must not be mutated afterwards.
type BuildConfiguration struct {
	Mode         Mode
	SkipBytecode bool
	Platform     string
	EntryFile    string

	// ProjectRoot is the directory holding the manifest and node_modules.
	ProjectRoot string
	// OutputDir is resolved against ProjectRoot when relative.
	OutputDir string

	BundlerCommand   []string
	FrameworkPackage string
	PackageName      string
	NewArchEnabled   bool

	// HostOS selects the bytecode compiler variant (runtime.GOOS values).
	HostOS string
}

// OutputPath returns the absolute-or-root-relative output directory.
func (c BuildConfiguration) OutputPath() string {
	if filepath.IsAbs(c.OutputDir) {
		return filepath.Clean(c.OutputDir)
	}
	return filepath.Join(c.ProjectRoot, c.OutputDir)
}

// Artifacts returns the artifact layout for this configuration.
func (c BuildConfiguration) Artifacts() ArtifactSet {
	return NewArtifactSet(c.OutputPath(), c.Platform)
}

// ManifestPath returns the location of the project manifest.
func (c BuildConfiguration) ManifestPath() string {
	return filepath.Join(c.ProjectRoot, ManifestFileName)
}

// ShouldCompileBytecode reports whether the bytecode step is attempted at all.
func (c BuildConfiguration) ShouldCompileBytecode() bool {
	return !c.Mode.IsDevelopment() && !c.SkipBytecode
}
