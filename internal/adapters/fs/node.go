package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rnbundle/internal/core/ports"
)

const (
	// WalkerNodeID identifies the asset lister node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// VerifierNodeID identifies the artifact verifier node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	// HasherNodeID identifies the content hasher node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.AssetLister]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AssetLister, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
