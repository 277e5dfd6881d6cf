package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetLister = (*Walker)(nil)

// Walker lists the asset files the bundler copied into the output directory.
type Walker struct {
	pattern string
}

// NewWalker creates a new Walker matching every file below the asset directory.
func NewWalker() *Walker {
	return &Walker{pattern: "**/*"}
}

// ListAssets returns the sorted asset paths relative to a.AssetsDir. Hidden files and the
// pipeline's own artifacts are skipped. A missing asset directory yields no assets.
func (w *Walker) ListAssets(a domain.ArtifactSet) ([]string, error) {
	if _, err := os.Stat(a.AssetsDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat asset directory"), "path", a.AssetsDir)
	}

	matches, err := doublestar.Glob(os.DirFS(a.AssetsDir), w.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list assets"), "path", a.AssetsDir)
	}

	assets := make([]string, 0, len(matches))
	for _, m := range matches {
		if isHidden(m) || a.IsOwnedFile(m) {
			continue
		}
		assets = append(assets, filepath.FromSlash(m))
	}
	sort.Strings(assets)
	return assets, nil
}

func isHidden(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
