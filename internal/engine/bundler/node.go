package bundler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rnbundle/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/core/ports"
)

// NodeID is the unique identifier for the bundler Graft node.
const NodeID graft.ID = "engine.bundler"

func init() {
	graft.Register(graft.Node[*Invoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.VerifierNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Invoker, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewInvoker(executor, verifier, log), nil
		},
	})
}
