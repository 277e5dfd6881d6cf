package metadata

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rnbundle/internal/adapters/git"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/store"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/core/ports"
)

// NodeID is the unique identifier for the metadata generator Graft node.
const NodeID graft.ID = "engine.metadata"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			git.NodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			vcs, err := graft.Dep[ports.VersionControl](ctx)
			if err != nil {
				return nil, err
			}

			docs, err := graft.Dep[ports.DocumentStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewGenerator(vcs, docs, log), nil
		},
	})
}
