package ports

import "context"

// VersionControl answers read-only provenance queries about a working tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VersionControl interface {
	// ShortCommit returns the abbreviated hash of HEAD.
	ShortCommit(ctx context.Context, dir string) (string, error)
	// Branch returns the name of the checked out branch.
	Branch(ctx context.Context, dir string) (string, error)
}
