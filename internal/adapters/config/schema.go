package config

// Projectfile represents the structure of the rnbundle.yaml configuration file.
// Every field is optional; zero values keep the built-in defaults.
type Projectfile struct {
	Version        string     `yaml:"version"`
	Platform       string     `yaml:"platform"`
	EntryFile      string     `yaml:"entryFile"`
	OutputDir      string     `yaml:"outputDir"`
	Framework      string     `yaml:"framework"`
	NewArchEnabled *bool      `yaml:"newArchEnabled"`
	Bundler        BundlerDTO `yaml:"bundler"`
	Package        PackageDTO `yaml:"package"`
}

// BundlerDTO configures how the bundler is invoked.
type BundlerDTO struct {
	Cmd []string `yaml:"cmd"`
}

// PackageDTO configures the assembled distribution package.
type PackageDTO struct {
	Name string `yaml:"name"`
}
