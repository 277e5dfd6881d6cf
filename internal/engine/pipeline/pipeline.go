// Package pipeline implements the build orchestrator as an explicit state machine.
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/rnbundle/internal/engine/bundler"
	"go.trai.ch/rnbundle/internal/engine/metadata"
	"go.trai.ch/zerr"
)

const totalSteps = 3

// Result describes a finished (or failed) pipeline run.
type Result struct {
	// Trace lists every stage entered, in order, ending with Done or Failed.
	Trace     []domain.Stage
	Bytecode  bundler.BytecodeOutcome
	Metadata  domain.BuildMetadata
	Artifacts domain.ArtifactSet
}

// Final returns the last stage reached.
func (r *Result) Final() domain.Stage {
	if len(r.Trace) == 0 {
		return domain.StageInit
	}
	return r.Trace[len(r.Trace)-1]
}

// Pipeline sequences bundling, bytecode compilation, metadata generation and the summary.
type Pipeline struct {
	invoker   *bundler.Invoker
	generator *metadata.Generator
	manifests ports.ManifestLoader
	verifier  ports.Verifier
	hasher    ports.Hasher
	assets    ports.AssetLister
	telemetry ports.Telemetry
	renderer  ports.Renderer
	logger    ports.Logger
}

// New creates a new Pipeline.
func New(
	invoker *bundler.Invoker,
	generator *metadata.Generator,
	manifests ports.ManifestLoader,
	verifier ports.Verifier,
	hasher ports.Hasher,
	assets ports.AssetLister,
	telemetry ports.Telemetry,
	renderer ports.Renderer,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		invoker:   invoker,
		generator: generator,
		manifests: manifests,
		verifier:  verifier,
		hasher:    hasher,
		assets:    assets,
		telemetry: telemetry,
		renderer:  renderer,
		logger:    logger,
	}
}

// run holds the state of a single execution.
type run struct {
	p      *Pipeline
	cfg    domain.BuildConfiguration
	result *Result
}

// Run drives the state machine from Init to Done. The first fatal error moves the machine
// to Failed and is returned wrapped with the name of the failing stage.
func (p *Pipeline) Run(ctx context.Context, cfg domain.BuildConfiguration) (*Result, error) {
	r := &run{
		p:   p,
		cfg: cfg,
		result: &Result{
			Trace:     []domain.Stage{domain.StageInit},
			Artifacts: cfg.Artifacts(),
		},
	}

	p.renderer.Banner("Bundling React Native for " + cfg.Platform + " (" + string(cfg.Mode) + ")")
	p.renderer.Field("Output directory", r.result.Artifacts.Dir)

	stage := domain.StageInit
	for !stage.IsTerminal() {
		next, err := r.step(ctx, stage)
		if err == nil && !stage.CanTransition(next) {
			err = errors.Join(domain.ErrInvalidTransition,
				zerr.With(zerr.With(zerr.New("transition rejected"), "from", string(stage)), "to", string(next)))
			next = domain.StageFailed
		}
		r.result.Trace = append(r.result.Trace, next)

		if err != nil {
			return r.result, zerr.With(zerr.Wrap(err, stage.Title()+" failed"), "stage", string(stage))
		}
		stage = next
	}

	return r.result, nil
}

// step executes stage and returns the next one.
func (r *run) step(ctx context.Context, stage domain.Stage) (domain.Stage, error) {
	switch stage {
	case domain.StageInit:
		return r.record(ctx, stage, r.prepareOutput, domain.StageBundling)
	case domain.StageBundling:
		r.p.renderer.Step(1, totalSteps, stage.Title())
		next, err := r.record(ctx, stage, r.bundle, domain.StageBytecodeSkipped)
		if err == nil && r.cfg.ShouldCompileBytecode() {
			next = domain.StageBytecodeCompiling
		}
		return next, err
	case domain.StageBytecodeCompiling:
		r.p.renderer.Step(2, totalSteps, stage.Title())
		return r.record(ctx, stage, r.compile, domain.StageMetadataGenerating)
	case domain.StageBytecodeSkipped:
		r.p.renderer.Step(2, totalSteps, stage.Title()+" (dev mode or --skip-hermes)")
		r.p.telemetry.Record(string(stage)).Skipped()
		return domain.StageMetadataGenerating, nil
	case domain.StageMetadataGenerating:
		r.p.renderer.Step(3, totalSteps, stage.Title())
		return r.record(ctx, stage, r.generateMetadata, domain.StageSummarizing)
	case domain.StageSummarizing:
		r.summarize()
		return domain.StageDone, nil
	default:
		return domain.StageFailed, errors.Join(domain.ErrInvalidTransition,
			zerr.With(zerr.New("no handler for stage"), "from", string(stage)))
	}
}

// record runs fn inside a telemetry vertex and maps its outcome to the next stage.
func (r *run) record(
	ctx context.Context,
	stage domain.Stage,
	fn func(context.Context) error,
	next domain.Stage,
) (domain.Stage, error) {
	vertex := r.p.telemetry.Record(string(stage))
	err := fn(ctx)
	vertex.Complete(err)
	if err != nil {
		return domain.StageFailed, err
	}
	return next, nil
}

func (r *run) prepareOutput(_ context.Context) error {
	dir := r.result.Artifacts.Dir
	exists, err := r.p.verifier.IsDir(dir)
	if err != nil {
		return errors.Join(domain.ErrOutputDirCreateFailed, err)
	}
	if exists {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrOutputDirCreateFailed, zerr.With(zerr.Wrap(err, "mkdir"), "path", dir))
	}
	r.p.logger.Info("Created directory: " + dir)
	return nil
}

func (r *run) bundle(ctx context.Context) error {
	return r.p.invoker.Bundle(ctx, r.cfg)
}

func (r *run) compile(ctx context.Context) error {
	outcome, err := r.p.invoker.CompileBytecode(ctx, r.cfg)
	r.result.Bytecode = outcome
	return err
}

func (r *run) generateMetadata(ctx context.Context) error {
	manifest, err := r.p.manifests.Load(r.cfg.ManifestPath())
	if err != nil {
		return err
	}

	md, err := r.p.generator.Generate(ctx, manifest, r.result.Artifacts.Metadata, metadata.Options{
		Dir:              r.cfg.ProjectRoot,
		FrameworkPackage: r.cfg.FrameworkPackage,
		HermesEnabled:    r.result.Bytecode.Compiled(),
		NewArchEnabled:   r.cfg.NewArchEnabled,
	})
	if err != nil {
		return err
	}
	r.result.Metadata = md
	return nil
}

// summarize prints whatever artifacts exist. It never fails the run.
func (r *run) summarize() {
	a := r.result.Artifacts
	rn := r.p.renderer

	rn.Banner("BUILD COMPLETE")

	if size, err := r.p.verifier.Size(a.Bundle); err == nil {
		rn.Field("Bundle", a.Bundle)
		rn.Field("Size", domain.FormatSize(size))
		if h, err := r.p.hasher.ComputeFileHash(a.Bundle); err == nil {
			rn.Field("Digest", domain.FormatDigest(h))
		}
		format := "plain text"
		if r.result.Bytecode.Compiled() {
			format = "Hermes bytecode"
		}
		rn.Field("Format", format)
	}

	if size, err := r.p.verifier.Size(a.SourceMap); err == nil {
		rn.Field("Source Map", a.SourceMap)
		rn.Field("Size", domain.FormatSize(size))
	}

	if ok, _ := r.p.verifier.Exists(a.Metadata); ok {
		rn.Field("Metadata", a.Metadata)
	}

	if assets, err := r.p.assets.ListAssets(a); err == nil && len(assets) > 0 {
		rn.Field("Assets", strconv.Itoa(len(assets))+" file(s)")
	} else if err != nil {
		r.p.logger.Warn("Could not list assets: " + err.Error())
	}

	if trace := r.p.telemetry.Trace(); len(trace) > 0 {
		rn.Heading("Stages")
		for _, s := range trace {
			rn.Item(s.Name + " (" + s.Duration.Round(time.Millisecond).String() + ")")
		}
	}

	rn.Success("\nBundle ready in " + filepath.Base(a.Dir) + "/ folder!")
}
