package domain_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rnbundle/internal/core/domain"
)

func TestStage_IsTerminal(t *testing.T) {
	tests := []struct {
		stage      domain.Stage
		isTerminal bool
	}{
		{domain.StageInit, false},
		{domain.StageBundling, false},
		{domain.StageBytecodeCompiling, false},
		{domain.StageBytecodeSkipped, false},
		{domain.StageMetadataGenerating, false},
		{domain.StageSummarizing, false},
		{domain.StageDone, true},
		{domain.StageFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.stage.IsTerminal())
		})
	}
}

func TestStage_CanTransition(t *testing.T) {
	assert.True(t, domain.StageBundling.CanTransition(domain.StageBytecodeSkipped))
	assert.True(t, domain.StageBytecodeCompiling.CanTransition(domain.StageMetadataGenerating))
	assert.True(t, domain.StageSummarizing.CanTransition(domain.StageDone))

	// Skipping bytecode is never fatal and summarizing is best effort.
	assert.False(t, domain.StageBytecodeSkipped.CanTransition(domain.StageFailed))
	assert.False(t, domain.StageSummarizing.CanTransition(domain.StageFailed))

	assert.False(t, domain.StageInit.CanTransition(domain.StageMetadataGenerating))
	assert.False(t, domain.StageDone.CanTransition(domain.StageInit))
	assert.False(t, domain.StageFailed.CanTransition(domain.StageBundling))
}

func TestArtifactSet_Layout(t *testing.T) {
	a := domain.NewArtifactSet("dist", domain.PlatformAndroid)

	assert.Equal(t, filepath.Join("dist", "index.android.bundle"), a.Bundle)
	assert.Equal(t, filepath.Join("dist", "index.android.bundle.map"), a.SourceMap)
	assert.Equal(t, filepath.Join("dist", "metadata.json"), a.Metadata)
	assert.Equal(t, filepath.Join("dist", "package.json"), a.Package)

	assert.True(t, a.IsOwnedFile("index.android.bundle"))
	assert.True(t, a.IsOwnedFile("metadata.json"))
	assert.False(t, a.IsOwnedFile("drawable-mdpi/logo.png"))
	assert.False(t, a.IsOwnedFile("raw/index.android.bundle"))
}

func TestBuildConfiguration_ShouldCompileBytecode(t *testing.T) {
	tests := []struct {
		name string
		mode domain.Mode
		skip bool
		want bool
	}{
		{"production", domain.ModeProduction, false, true},
		{"production skipped", domain.ModeProduction, true, false},
		{"development", domain.ModeDevelopment, false, false},
		{"development skipped", domain.ModeDevelopment, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.BuildConfiguration{Mode: tt.mode, SkipBytecode: tt.skip}
			assert.Equal(t, tt.want, cfg.ShouldCompileBytecode())
		})
	}
}

func TestBuildConfiguration_OutputPath(t *testing.T) {
	cfg := domain.BuildConfiguration{ProjectRoot: "app", OutputDir: "dist"}
	assert.Equal(t, filepath.Join("app", "dist"), cfg.OutputPath())

	abs := filepath.Join(t.TempDir(), "out")
	cfg.OutputDir = abs
	assert.Equal(t, abs, cfg.OutputPath())
}

func TestManifest_Defaults(t *testing.T) {
	var m domain.Manifest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"version":"1.2.0","name":"app","dependencies":{"react-native":"0.74.0"}}`), &m))

	assert.Equal(t, "1.0.0", m.MinAndroidVersion())
	assert.Equal(t, "0.74.0", m.DependencyVersion("react-native"))
	assert.Empty(t, m.DependencyVersion("react"))

	m.AndroidCompat = &domain.AndroidCompat{MinVersion: "2.3.0"}
	assert.Equal(t, "2.3.0", m.MinAndroidVersion())
}

func TestNewPackageDescriptor(t *testing.T) {
	m := domain.Manifest{Name: "app", Version: "1.2.0"}

	d := domain.NewPackageDescriptor(m, "", domain.PlatformAndroid)

	assert.Equal(t, "rnapp-bundle", d.Name)
	assert.Equal(t, "1.2.0", d.Version)
	assert.Equal(t, "index.android.bundle", d.Main)
	assert.Equal(t, []string{"index.android.bundle", "metadata.json"}, d.Files)
	assert.Equal(t, []string{"react-native", "android", "brownfield", "bundle"}, d.Keywords)
	assert.JSONEq(t, `""`, string(d.Author))
	assert.JSONEq(t, `"UNLICENSED"`, string(d.License))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "rnapp-bundle",
		"version": "1.2.0",
		"description": "React Native bundle for Android brownfield integration",
		"main": "index.android.bundle",
		"files": ["index.android.bundle", "metadata.json"],
		"keywords": ["react-native", "android", "brownfield", "bundle"],
		"author": "",
		"license": "UNLICENSED"
	}`, string(data))
}

func TestNewPackageDescriptor_AuthorAndLicenseVerbatim(t *testing.T) {
	var m domain.Manifest
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "app",
		"version": "1.2.0",
		"author": {"name": "Jane", "email": "j@x.io"},
		"license": {"type": "MIT", "url": "https://opensource.org/licenses/MIT"}
	}`), &m))

	d := domain.NewPackageDescriptor(m, "", domain.PlatformAndroid)

	assert.JSONEq(t, `{"name":"Jane","email":"j@x.io"}`, string(d.Author))
	assert.JSONEq(t, `{"type":"MIT","url":"https://opensource.org/licenses/MIT"}`, string(d.License))
}

func TestNewPackageDescriptor_FalsyFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		license string
	}{
		{"absent", ``, ``},
		{"null", `null`, `null`},
		{"empty strings", `""`, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := domain.Manifest{Version: "1.0.0"}
			if tt.author != "" {
				m.Author = json.RawMessage(tt.author)
				m.License = json.RawMessage(tt.license)
			}

			d := domain.NewPackageDescriptor(m, "", domain.PlatformAndroid)
			assert.JSONEq(t, `""`, string(d.Author))
			assert.JSONEq(t, `"UNLICENSED"`, string(d.License))
		})
	}
}

func TestBuildMetadata_KeyOrder(t *testing.T) {
	data, err := json.Marshal(domain.BuildMetadata{})
	require.NoError(t, err)

	assert.Equal(t,
		`{"version":"","name":"","minAndroidVersion":"","commitSha":"","branch":"","buildDate":"",`+
			`"hermesEnabled":false,"newArchEnabled":false,"reactNativeVersion":""}`,
		string(data))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0.00 KB", domain.FormatSize(0))
	assert.Equal(t, "1.00 KB", domain.FormatSize(1024))
	assert.Equal(t, "1.50 KB", domain.FormatSize(1536))
}

func TestFormatDigest(t *testing.T) {
	assert.Equal(t, "0000000000000000", domain.FormatDigest(0))
	assert.Equal(t, "00000000000000ff", domain.FormatDigest(255))
	assert.Equal(t, "ffffffffffffffff", domain.FormatDigest(^uint64(0)))
}
