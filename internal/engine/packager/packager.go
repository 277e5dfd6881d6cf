// Package packager assembles the built output directory into a publishable npm package.
package packager

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"

	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// Assembler writes the package descriptor next to previously built artifacts.
type Assembler struct {
	verifier  ports.Verifier
	manifests ports.ManifestLoader
	store     ports.DocumentStore
	renderer  ports.Renderer
	logger    ports.Logger
}

// NewAssembler creates a new Assembler.
func NewAssembler(
	verifier ports.Verifier,
	manifests ports.ManifestLoader,
	store ports.DocumentStore,
	renderer ports.Renderer,
	logger ports.Logger,
) *Assembler {
	return &Assembler{
		verifier:  verifier,
		manifests: manifests,
		store:     store,
		renderer:  renderer,
		logger:    logger,
	}
}

// Assemble checks that a build has run, then writes package.json into the output directory
// and prints its contents. Nothing is written when a build artifact is missing or unreadable.
func (a *Assembler) Assemble(ctx context.Context, cfg domain.BuildConfiguration) (domain.PackageDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return domain.PackageDescriptor{}, err
	}

	artifacts := cfg.Artifacts()
	a.renderer.Note("Preparing npm package for publishing...")

	if err := a.checkPreconditions(artifacts); err != nil {
		return domain.PackageDescriptor{}, err
	}

	manifest, err := a.manifests.Load(cfg.ManifestPath())
	if err != nil {
		return domain.PackageDescriptor{}, err
	}

	var md domain.BuildMetadata
	if err := a.store.Get(artifacts.Metadata, &md); err != nil {
		return domain.PackageDescriptor{}, errors.Join(domain.ErrMetadataReadFailed,
			zerr.With(err, "path", artifacts.Metadata))
	}

	descriptor := domain.NewPackageDescriptor(manifest, cfg.PackageName, cfg.Platform)
	if err := a.store.Put(artifacts.Package, descriptor); err != nil {
		return descriptor, errors.Join(domain.ErrPackageWriteFailed, zerr.With(err, "path", artifacts.Package))
	}
	a.logger.Info("Generated package.json")

	a.report(artifacts, descriptor, md)
	return descriptor, nil
}

// checkPreconditions verifies the output directory, the bundle and the metadata, in that order.
func (a *Assembler) checkPreconditions(artifacts domain.ArtifactSet) error {
	ok, err := a.verifier.IsDir(artifacts.Dir)
	if err != nil || !ok {
		return missing(domain.ErrOutputDirMissing, artifacts.Dir, err)
	}

	for _, check := range []struct {
		sentinel error
		path     string
	}{
		{domain.ErrBundleMissing, artifacts.Bundle},
		{domain.ErrMetadataMissing, artifacts.Metadata},
	} {
		ok, err := a.verifier.Exists(check.path)
		if err != nil || !ok {
			return missing(check.sentinel, check.path, err)
		}
	}
	return nil
}

func missing(sentinel error, path string, cause error) error {
	if cause == nil {
		cause = zerr.New("not found")
	}
	return zerr.With(zerr.With(errors.Join(sentinel, cause), "path", path), "hint", domain.RebuildHint)
}

func (a *Assembler) report(artifacts domain.ArtifactSet, d domain.PackageDescriptor, md domain.BuildMetadata) {
	rn := a.renderer

	rn.Heading("Package contents")
	rn.Item(domain.ManifestFileName + " (name: " + d.Name + ", version: " + d.Version + ")")
	bundle := filepath.Base(artifacts.Bundle)
	if size, err := a.verifier.Size(artifacts.Bundle); err == nil {
		bundle += " (" + domain.FormatSize(size) + ")"
	}
	rn.Item(bundle)
	rn.Item(domain.MetadataFileName)

	rn.Heading("Metadata")
	rn.Item("version: " + md.Version)
	rn.Item("minAndroidVersion: " + md.MinAndroidVersion)
	rn.Item("commitSha: " + md.CommitSha)
	rn.Item("branch: " + md.Branch)
	rn.Item("hermesEnabled: " + strconv.FormatBool(md.HermesEnabled))

	rn.Success("\nPackage ready!")
	rn.Note(`   To test locally: use "file:` + filepath.ToSlash(artifacts.Dir) + `" as a dependency`)
	rn.Note("   To publish: npm publish " + filepath.ToSlash(artifacts.Dir))
}
