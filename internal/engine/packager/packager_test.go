package packager_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rnbundle/internal/adapters/config"
	"go.trai.ch/rnbundle/internal/adapters/fs"
	"go.trai.ch/rnbundle/internal/adapters/linear"
	"go.trai.ch/rnbundle/internal/adapters/store"
	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports/mocks"
	"go.trai.ch/rnbundle/internal/engine/packager"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const metadataJSON = `{
  "version": "3.0.0",
  "name": "app",
  "minAndroidVersion": "7.0.0",
  "commitSha": "abc1234",
  "branch": "release",
  "buildDate": "2024-05-06T07:08:09.123Z",
  "hermesEnabled": true,
  "newArchEnabled": true,
  "reactNativeVersion": "0.74.1"
}`

func setup(t *testing.T, manifest string) (domain.BuildConfiguration, *packager.Assembler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(manifest), 0o600))

	out := &bytes.Buffer{}
	a := packager.NewAssembler(fs.NewVerifier(), config.NewManifestLoader(), store.NewStore(), linear.NewRenderer(out), log)

	return domain.BuildConfiguration{
		Platform:    domain.PlatformAndroid,
		ProjectRoot: root,
		OutputDir:   domain.DefaultOutputDir,
	}, a, out
}

func writeArtifacts(t *testing.T, cfg domain.BuildConfiguration, bundle, metadata bool) {
	t.Helper()
	a := cfg.Artifacts()
	require.NoError(t, os.MkdirAll(a.Dir, 0o750))
	if bundle {
		require.NoError(t, os.WriteFile(a.Bundle, bytes.Repeat([]byte("x"), 2048), 0o600))
	}
	if metadata {
		require.NoError(t, os.WriteFile(a.Metadata, []byte(metadataJSON), 0o600))
	}
}

func TestAssemble(t *testing.T) {
	cfg, a, out := setup(t, `{"name":"app","version":"3.0.0","author":"Mobile Team"}`)
	writeArtifacts(t, cfg, true, true)

	d, err := a.Assemble(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "rnapp-bundle", d.Name)
	assert.Equal(t, "3.0.0", d.Version)
	assert.Equal(t, []string{"index.android.bundle", "metadata.json"}, d.Files)

	data, err := os.ReadFile(cfg.Artifacts().Package)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "package_json", data)

	report, hints, found := strings.Cut(out.String(), "   To test locally")
	require.True(t, found)
	g.Assert(t, "report", []byte(report))
	assert.Contains(t, hints, "npm publish "+filepath.ToSlash(cfg.Artifacts().Dir))
}

func TestAssemble_ObjectAuthor(t *testing.T) {
	cfg, a, _ := setup(t, `{
  "name": "app",
  "version": "3.0.0",
  "author": {"name": "Jane", "email": "j@x.io"},
  "license": "MIT"
}`)
	writeArtifacts(t, cfg, true, true)

	_, err := a.Assemble(context.Background(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Artifacts().Package)
	require.NoError(t, err)
	goldie.New(t).Assert(t, "package_json_object_author", data)
}

func TestAssemble_CustomName(t *testing.T) {
	cfg, a, _ := setup(t, `{"name":"app","version":"1.0.0","license":"MIT"}`)
	cfg.PackageName = "@acme/checkout-bundle"
	writeArtifacts(t, cfg, true, true)

	d, err := a.Assemble(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "@acme/checkout-bundle", d.Name)
	assert.JSONEq(t, `"MIT"`, string(d.License))
}

func TestAssemble_Preconditions(t *testing.T) {
	tests := []struct {
		name     string
		outDir   bool
		bundle   bool
		metadata bool
		want     error
	}{
		{"empty output directory", false, false, false, domain.ErrOutputDirMissing},
		{"bundle missing", true, false, true, domain.ErrBundleMissing},
		{"metadata missing", true, true, false, domain.ErrMetadataMissing},
		{"bundle checked before metadata", true, false, false, domain.ErrBundleMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, a, _ := setup(t, `{"name":"app","version":"1.0.0"}`)
			if tt.outDir {
				writeArtifacts(t, cfg, tt.bundle, tt.metadata)
			}

			_, err := a.Assemble(context.Background(), cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assert.NoFileExists(t, cfg.Artifacts().Package)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, domain.RebuildHint, zErr.Metadata()["hint"])
		})
	}
}

func TestAssemble_CorruptMetadata(t *testing.T) {
	cfg, a, _ := setup(t, `{"name":"app","version":"1.0.0"}`)
	writeArtifacts(t, cfg, true, false)
	require.NoError(t, os.WriteFile(cfg.Artifacts().Metadata, []byte("{"), 0o600))

	_, err := a.Assemble(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMetadataReadFailed))
	assert.NoFileExists(t, cfg.Artifacts().Package)
}

func TestAssemble_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mocks.NewMockVerifier(ctrl)
	manifests := mocks.NewMockManifestLoader(ctrl)
	docs := mocks.NewMockDocumentStore(ctrl)
	renderer := mocks.NewMockRenderer(ctrl)
	log := mocks.NewMockLogger(ctrl)

	cfg := domain.BuildConfiguration{Platform: domain.PlatformAndroid, ProjectRoot: "/app", OutputDir: "dist"}
	renderer.EXPECT().Note(gomock.Any()).AnyTimes()
	verifier.EXPECT().IsDir(cfg.Artifacts().Dir).Return(true, nil)
	verifier.EXPECT().Exists(gomock.Any()).Return(true, nil).Times(2)
	manifests.EXPECT().Load(cfg.ManifestPath()).Return(domain.Manifest{Version: "1.0.0"}, nil)
	docs.EXPECT().Get(cfg.Artifacts().Metadata, gomock.Any()).Return(nil)
	docs.EXPECT().Put(cfg.Artifacts().Package, gomock.Any()).Return(errors.New("read-only file system"))

	_, err := packager.NewAssembler(verifier, manifests, docs, renderer, log).Assemble(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPackageWriteFailed))
}
