package packager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rnbundle/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/linear" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/store"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/core/ports"
)

// NodeID is the unique identifier for the package assembler Graft node.
const NodeID graft.ID = "engine.packager"

func init() {
	graft.Register(graft.Node[*Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.VerifierNodeID,
			config.ManifestNodeID,
			store.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Assembler, error) {
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			docs, err := graft.Dep[ports.DocumentStore](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewAssembler(verifier, manifests, docs, renderer, log), nil
		},
	})
}
