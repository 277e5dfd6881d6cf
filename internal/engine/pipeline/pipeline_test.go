package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rnbundle/internal/adapters/config"
	"go.trai.ch/rnbundle/internal/adapters/fs"
	"go.trai.ch/rnbundle/internal/adapters/linear"
	"go.trai.ch/rnbundle/internal/adapters/store"
	"go.trai.ch/rnbundle/internal/adapters/telemetry"
	"go.trai.ch/rnbundle/internal/adapters/telemetry/progrock"
	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/rnbundle/internal/core/ports/mocks"
	"go.trai.ch/rnbundle/internal/engine/bundler"
	"go.trai.ch/rnbundle/internal/engine/metadata"
	"go.trai.ch/rnbundle/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const plainBundle = "__d(function(){});"

type invocationNamed string

func (n invocationNamed) Matches(x any) bool {
	inv, ok := x.(domain.Invocation)
	return ok && inv.Name == string(n)
}

func (n invocationNamed) String() string {
	return "is invocation " + string(n)
}

type fixture struct {
	root     string
	cfg      domain.BuildConfiguration
	executor *mocks.MockExecutor
	out      *bytes.Buffer
	pipeline *pipeline.Pipeline
}

func newFixture(t *testing.T, mode domain.Mode, tracer ports.Telemetry) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"),
		[]byte(`{"name":"app","version":"2.1.0","dependencies":{"react-native":"0.74.1"}}`), 0o600))

	executor := mocks.NewMockExecutor(ctrl)
	vcs := mocks.NewMockVersionControl(ctrl)
	vcs.EXPECT().ShortCommit(gomock.Any(), root).Return("abc1234", nil).AnyTimes()
	vcs.EXPECT().Branch(gomock.Any(), root).Return("main", nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	if tracer == nil {
		tracer = telemetry.NewNoOp()
	}

	verifier := fs.NewVerifier()
	out := &bytes.Buffer{}
	p := pipeline.New(
		bundler.NewInvoker(executor, verifier, log),
		metadata.NewGenerator(vcs, store.NewStore(), log),
		config.NewManifestLoader(),
		verifier,
		fs.NewHasher(),
		fs.NewWalker(),
		tracer,
		linear.NewRenderer(out),
		log,
	)

	return &fixture{
		root: root,
		cfg: domain.BuildConfiguration{
			Mode:             mode,
			Platform:         domain.PlatformAndroid,
			EntryFile:        domain.DefaultEntryFile,
			ProjectRoot:      root,
			OutputDir:        domain.DefaultOutputDir,
			BundlerCommand:   domain.DefaultBundlerCommand,
			FrameworkPackage: domain.DefaultFrameworkPackage,
			NewArchEnabled:   true,
			HostOS:           "linux",
		},
		executor: executor,
		out:      out,
		pipeline: p,
	}
}

// installCompiler places a stand-in compiler binary where the framework ships it.
func (f *fixture) installCompiler(t *testing.T) {
	t.Helper()
	path := bundler.CompilerPath(f.root, f.cfg.HostOS)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // test fixture
}

// expectBundler makes the bundler write a bundle, a source map and one asset.
func (f *fixture) expectBundler(t *testing.T) *gomock.Call {
	t.Helper()
	return f.executor.EXPECT().
		Run(gomock.Any(), invocationNamed("bundler")).
		DoAndReturn(func(_ context.Context, _ domain.Invocation) (domain.ExitStatus, error) {
			a := f.cfg.Artifacts()
			require.NoError(t, os.WriteFile(a.Bundle, []byte(plainBundle), 0o600))
			require.NoError(t, os.WriteFile(a.SourceMap, []byte(`{"version":3}`), 0o600))
			asset := filepath.Join(a.AssetsDir, "drawable-mdpi", "logo.png")
			require.NoError(t, os.MkdirAll(filepath.Dir(asset), 0o750))
			require.NoError(t, os.WriteFile(asset, []byte("png"), 0o600))
			return 0, nil
		})
}

func (f *fixture) expectCompiler(t *testing.T, status domain.ExitStatus) *gomock.Call {
	t.Helper()
	return f.executor.EXPECT().
		Run(gomock.Any(), invocationNamed("hermesc")).
		DoAndReturn(func(_ context.Context, _ domain.Invocation) (domain.ExitStatus, error) {
			if status.Success() {
				require.NoError(t, os.WriteFile(f.cfg.Artifacts().Bundle, []byte("HBC"), 0o600))
			}
			return status, nil
		})
}

func readMetadata(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var md map[string]any
	require.NoError(t, json.Unmarshal(data, &md))
	return md
}

func TestRun_ProductionCompilesBytecode(t *testing.T) {
	f := newFixture(t, domain.ModeProduction, nil)
	f.installCompiler(t)
	gomock.InOrder(f.expectBundler(t), f.expectCompiler(t, 0))

	res, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)

	assert.Equal(t, []domain.Stage{
		domain.StageInit,
		domain.StageBundling,
		domain.StageBytecodeCompiling,
		domain.StageMetadataGenerating,
		domain.StageSummarizing,
		domain.StageDone,
	}, res.Trace)
	assert.Equal(t, domain.StageDone, res.Final())
	assert.Equal(t, bundler.BytecodeCompiled, res.Bytecode)

	bundle, err := os.ReadFile(res.Artifacts.Bundle)
	require.NoError(t, err)
	assert.Equal(t, "HBC", string(bundle))

	md := readMetadata(t, res.Artifacts.Metadata)
	assert.Equal(t, true, md["hermesEnabled"])
	assert.Equal(t, "2.1.0", md["version"])
	assert.Equal(t, "0.74.1", md["reactNativeVersion"])
	assert.Equal(t, "abc1234", md["commitSha"])

	output := f.out.String()
	assert.Contains(t, output, "[1/3]")
	assert.Contains(t, output, "[3/3]")
	assert.Contains(t, output, "BUILD COMPLETE")
	assert.Contains(t, output, "Hermes bytecode")
	assert.Contains(t, output, "1 file(s)")
}

func TestRun_DevelopmentNeverCompiles(t *testing.T) {
	f := newFixture(t, domain.ModeDevelopment, nil)
	f.installCompiler(t)
	f.expectBundler(t).Times(1)

	res, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)

	assert.Contains(t, res.Trace, domain.StageBytecodeSkipped)
	assert.NotContains(t, res.Trace, domain.StageBytecodeCompiling)
	assert.Equal(t, bundler.BytecodeDisabled, res.Bytecode)

	bundle, err := os.ReadFile(res.Artifacts.Bundle)
	require.NoError(t, err)
	assert.Equal(t, plainBundle, string(bundle))
	assert.Equal(t, false, readMetadata(t, res.Artifacts.Metadata)["hermesEnabled"])
	assert.Contains(t, f.out.String(), "plain text")
}

func TestRun_SkipBytecodeLeavesBundleUntouched(t *testing.T) {
	f := newFixture(t, domain.ModeProduction, nil)
	f.cfg.SkipBytecode = true
	f.installCompiler(t)
	f.expectBundler(t).Times(1)

	res, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)

	assert.Contains(t, res.Trace, domain.StageBytecodeSkipped)
	bundle, err := os.ReadFile(res.Artifacts.Bundle)
	require.NoError(t, err)
	assert.Equal(t, plainBundle, string(bundle))
}

func TestRun_MissingCompilerDegrades(t *testing.T) {
	f := newFixture(t, domain.ModeProduction, nil)
	f.expectBundler(t).Times(1)

	res, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)

	assert.Equal(t, domain.StageDone, res.Final())
	assert.Contains(t, res.Trace, domain.StageBytecodeCompiling)
	assert.Equal(t, bundler.BytecodeCompilerMissing, res.Bytecode)
	assert.Equal(t, false, readMetadata(t, res.Artifacts.Metadata)["hermesEnabled"])
}

func TestRun_CompilerFailureIsFatal(t *testing.T) {
	f := newFixture(t, domain.ModeProduction, nil)
	f.installCompiler(t)
	gomock.InOrder(f.expectBundler(t), f.expectCompiler(t, 3))

	res, err := f.pipeline.Run(context.Background(), f.cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBytecodeCompilerFailed))
	assert.Equal(t, domain.StageFailed, res.Final())
	assert.NoFileExists(t, res.Artifacts.Metadata)
}

func TestRun_BundlerFailureStopsPipeline(t *testing.T) {
	f := newFixture(t, domain.ModeProduction, nil)
	f.installCompiler(t)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ExitStatus(1), nil).Times(1)

	res, err := f.pipeline.Run(context.Background(), f.cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBundlerFailed))
	assert.Equal(t, []domain.Stage{domain.StageInit, domain.StageBundling, domain.StageFailed}, res.Trace)
	assert.NoFileExists(t, res.Artifacts.Metadata)
	assert.NotContains(t, f.out.String(), "BUILD COMPLETE")

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, string(domain.StageBundling), zErr.Metadata()["stage"])
}

func TestRun_ManifestMissingFailsMetadataStage(t *testing.T) {
	f := newFixture(t, domain.ModeDevelopment, nil)
	require.NoError(t, os.Remove(filepath.Join(f.root, "package.json")))
	f.expectBundler(t)

	res, err := f.pipeline.Run(context.Background(), f.cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestReadFailed))
	assert.Equal(t, domain.StageFailed, res.Final())
}

func TestRun_Idempotent(t *testing.T) {
	f := newFixture(t, domain.ModeDevelopment, nil)
	f.expectBundler(t).Times(2)

	first, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)
	firstMD := readMetadata(t, first.Artifacts.Metadata)

	second, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)
	secondMD := readMetadata(t, second.Artifacts.Metadata)

	assert.Equal(t, first.Trace, second.Trace)
	delete(firstMD, "buildDate")
	delete(secondMD, "buildDate")
	assert.Equal(t, firstMD, secondMD)
}

func TestRun_RecordsVertexPerStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	var recorded []string
	tracer.EXPECT().Record(gomock.Any()).
		DoAndReturn(func(name string) ports.Vertex {
			recorded = append(recorded, name)
			return vertex
		}).AnyTimes()
	tracer.EXPECT().Trace().Return(nil)
	vertex.EXPECT().Complete(nil).Times(3)
	vertex.EXPECT().Skipped().Times(1)

	f := newFixture(t, domain.ModeDevelopment, tracer)
	f.expectBundler(t)

	_, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		string(domain.StageInit),
		string(domain.StageBundling),
		string(domain.StageBytecodeSkipped),
		string(domain.StageMetadataGenerating),
	}, recorded)
}

func TestRun_SummaryListsRecordedStages(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f := newFixture(t, domain.ModeDevelopment, progrock.New())
	f.expectBundler(t)

	_, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)

	_, stages, found := strings.Cut(f.out.String(), "\nStages:\n")
	require.True(t, found, f.out.String())
	for _, stage := range []domain.Stage{
		domain.StageInit,
		domain.StageBundling,
		domain.StageBytecodeSkipped,
		domain.StageMetadataGenerating,
	} {
		assert.Contains(t, stages, "   - "+string(stage)+" (")
	}
	assert.Less(t, strings.Index(stages, string(domain.StageInit)), strings.Index(stages, string(domain.StageBundling)))
}

func TestRun_NoOpTelemetryHasNoStageSection(t *testing.T) {
	f := newFixture(t, domain.ModeDevelopment, nil)
	f.expectBundler(t)

	_, err := f.pipeline.Run(context.Background(), f.cfg)
	require.NoError(t, err)
	assert.NotContains(t, f.out.String(), "Stages:")
}
