// Package app implements the application layer for rnbundle.
package app

import (
	"context"
	"path/filepath"
	"runtime"

	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/rnbundle/internal/engine/metadata"
	"go.trai.ch/rnbundle/internal/engine/packager"
	"go.trai.ch/rnbundle/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// ProjectOptions locate the project and its optional configuration file.
type ProjectOptions struct {
	// Root is the project directory holding package.json.
	Root string
	// ConfigPath is resolved against Root when relative.
	ConfigPath string
}

// BuildOptions holds the flags of a bundle build.
type BuildOptions struct {
	Dev        bool
	SkipHermes bool
}

// MetadataOptions holds the flags of a standalone metadata run.
type MetadataOptions struct {
	// Output overrides the default <out>/metadata.json destination.
	Output        string
	HermesEnabled bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	manifests    ports.ManifestLoader
	pipeline     *pipeline.Pipeline
	generator    *metadata.Generator
	assembler    *packager.Assembler
	telemetry    ports.Telemetry
	logger       ports.Logger
	hostOS       string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	manifests ports.ManifestLoader,
	pipe *pipeline.Pipeline,
	generator *metadata.Generator,
	assembler *packager.Assembler,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		manifests:    manifests,
		pipeline:     pipe,
		generator:    generator,
		assembler:    assembler,
		telemetry:    telemetry,
		logger:       logger,
		hostOS:       runtime.GOOS,
	}
}

// WithHostOS overrides the operating system used to pick the bytecode compiler.
func (a *App) WithHostOS(goos string) *App {
	a.hostOS = goos
	return a
}

// Configure builds the immutable configuration for a run from defaults and the config file.
func (a *App) Configure(opts ProjectOptions) (domain.BuildConfiguration, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}

	base := domain.BuildConfiguration{
		Mode:             domain.ModeProduction,
		Platform:         domain.PlatformAndroid,
		EntryFile:        domain.DefaultEntryFile,
		ProjectRoot:      root,
		OutputDir:        domain.DefaultOutputDir,
		BundlerCommand:   append([]string(nil), domain.DefaultBundlerCommand...),
		FrameworkPackage: domain.DefaultFrameworkPackage,
		PackageName:      domain.DefaultPackageName,
		NewArchEnabled:   true,
		HostOS:           a.hostOS,
	}

	if opts.ConfigPath == "" {
		return base, nil
	}
	path := opts.ConfigPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	cfg, err := a.configLoader.Load(path, base)
	if err != nil {
		return base, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Build runs the bundle pipeline.
func (a *App) Build(ctx context.Context, project ProjectOptions, opts BuildOptions) (*pipeline.Result, error) {
	cfg, err := a.Configure(project)
	if err != nil {
		return nil, err
	}

	if opts.Dev {
		cfg.Mode = domain.ModeDevelopment
	}
	cfg.SkipBytecode = opts.SkipHermes

	return a.pipeline.Run(ctx, cfg)
}

// GenerateMetadata writes metadata.json outside of a full build.
func (a *App) GenerateMetadata(
	ctx context.Context,
	project ProjectOptions,
	opts MetadataOptions,
) (domain.BuildMetadata, string, error) {
	cfg, err := a.Configure(project)
	if err != nil {
		return domain.BuildMetadata{}, "", err
	}

	path := opts.Output
	if path == "" {
		path = cfg.Artifacts().Metadata
	}

	manifest, err := a.manifests.Load(cfg.ManifestPath())
	if err != nil {
		return domain.BuildMetadata{}, path, err
	}

	md, err := a.generator.Generate(ctx, manifest, path, metadata.Options{
		Dir:              cfg.ProjectRoot,
		FrameworkPackage: cfg.FrameworkPackage,
		HermesEnabled:    opts.HermesEnabled,
		NewArchEnabled:   cfg.NewArchEnabled,
	})
	return md, path, err
}

// Package assembles the publishable package from a previous build.
func (a *App) Package(ctx context.Context, project ProjectOptions) (domain.PackageDescriptor, error) {
	cfg, err := a.Configure(project)
	if err != nil {
		return domain.PackageDescriptor{}, err
	}
	return a.assembler.Assemble(ctx, cfg)
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}
