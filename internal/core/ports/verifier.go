package ports

import "go.trai.ch/rnbundle/internal/core/domain"

// Verifier inspects artifacts on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// Exists reports whether path exists. Errors other than "not found" are returned.
	Exists(path string) (bool, error)
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
	// Size returns the size in bytes of the file at path.
	Size(path string) (int64, error)
	// Executable reports whether path is an existing regular file.
	Executable(path string) bool
}

// AssetLister enumerates files the bundler copied into the output directory.
type AssetLister interface {
	// ListAssets returns paths relative to a.AssetsDir, excluding the pipeline's own artifacts.
	ListAssets(a domain.ArtifactSet) ([]string, error)
}
