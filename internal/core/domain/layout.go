package domain

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// ManifestFileName is the npm manifest, both for the project and for the assembled package.
	ManifestFileName = "package.json"
	// MetadataFileName is the provenance descriptor written next to the bundle.
	MetadataFileName = "metadata.json"
)

// BundleFileName returns the bundle name for a platform, e.g. "index.android.bundle".
func BundleFileName(platform string) string {
	return "index." + platform + ".bundle"
}

// SourceMapFileName returns the source map name for a platform.
func SourceMapFileName(platform string) string {
	return BundleFileName(platform) + ".map"
}

// ArtifactSet describes every file the pipeline owns inside the output directory.
type ArtifactSet struct {
	Dir       string
	Bundle    string
	SourceMap string
	Metadata  string
	Package   string
	// AssetsDir is where the bundler copies images and raw resources.
	AssetsDir string
}

// NewArtifactSet lays out the artifacts for a platform under dir.
func NewArtifactSet(dir, platform string) ArtifactSet {
	return ArtifactSet{
		Dir:       dir,
		Bundle:    filepath.Join(dir, BundleFileName(platform)),
		SourceMap: filepath.Join(dir, SourceMapFileName(platform)),
		Metadata:  filepath.Join(dir, MetadataFileName),
		Package:   filepath.Join(dir, ManifestFileName),
		AssetsDir: dir,
	}
}

// IsOwnedFile reports whether rel (relative to Dir) is one of the fixed pipeline artifacts
// rather than a bundler-emitted asset.
func (a ArtifactSet) IsOwnedFile(rel string) bool {
	rel = filepath.ToSlash(rel)
	if strings.Contains(rel, "/") {
		return false
	}
	for _, p := range []string{a.Bundle, a.SourceMap, a.Metadata, a.Package} {
		if filepath.Base(p) == rel {
			return true
		}
	}
	return false
}

// FormatSize renders a byte count in kilobytes with two decimals, e.g. "12.34 KB".
func FormatSize(bytes int64) string {
	return strconv.FormatFloat(float64(bytes)/1024, 'f', 2, 64) + " KB"
}

// FormatDigest renders a 64-bit content digest as fixed-width hex.
func FormatDigest(h uint64) string {
	s := strconv.FormatUint(h, 16)
	return strings.Repeat("0", 16-len(s)) + s
}
