// Package metadata produces the provenance record shipped next to the bundle.
package metadata

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// timestampLayout matches JavaScript's Date.prototype.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Options carries the per-run inputs that do not come from the manifest.
type Options struct {
	// Dir is the working tree queried for commit and branch.
	Dir              string
	FrameworkPackage string
	HermesEnabled    bool
	NewArchEnabled   bool
}

// Generator builds and persists BuildMetadata.
type Generator struct {
	vcs    ports.VersionControl
	store  ports.DocumentStore
	logger ports.Logger
	now    func() time.Time
}

// NewGenerator creates a Generator using the wall clock.
func NewGenerator(vcs ports.VersionControl, store ports.DocumentStore, logger ports.Logger) *Generator {
	return &Generator{
		vcs:    vcs,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for buildDate.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Build assembles the record without writing it. Version control failures degrade to
// domain.UnknownVCSValue with a warning.
func (g *Generator) Build(ctx context.Context, m domain.Manifest, opts Options) domain.BuildMetadata {
	framework := opts.FrameworkPackage
	if framework == "" {
		framework = domain.DefaultFrameworkPackage
	}

	return domain.BuildMetadata{
		Version:            m.Version,
		Name:               m.Name,
		MinAndroidVersion:  m.MinAndroidVersion(),
		CommitSha:          g.query(ctx, "commit SHA", opts.Dir, g.vcs.ShortCommit),
		Branch:             g.query(ctx, "branch", opts.Dir, g.vcs.Branch),
		BuildDate:          g.now().UTC().Format(timestampLayout),
		HermesEnabled:      opts.HermesEnabled,
		NewArchEnabled:     opts.NewArchEnabled,
		ReactNativeVersion: m.DependencyVersion(framework),
	}
}

func (g *Generator) query(
	ctx context.Context,
	field, dir string,
	fn func(context.Context, string) (string, error),
) string {
	value, err := fn(ctx, dir)
	if err != nil || value == "" {
		g.logger.Warn("Could not get git " + field + ", using \"" + domain.UnknownVCSValue + "\"")
		return domain.UnknownVCSValue
	}
	return value
}

// Generate builds the record and writes it to path, overwriting any existing file.
func (g *Generator) Generate(
	ctx context.Context,
	m domain.Manifest,
	path string,
	opts Options,
) (domain.BuildMetadata, error) {
	md := g.Build(ctx, m, opts)

	if err := g.store.Put(path, md); err != nil {
		return md, errors.Join(domain.ErrMetadataWriteFailed, zerr.With(err, "path", path))
	}

	g.logger.Info("Generated metadata at " + path)
	return md, nil
}
