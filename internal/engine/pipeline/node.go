package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rnbundle/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/linear"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/rnbundle/internal/engine/bundler"
	"go.trai.ch/rnbundle/internal/engine/metadata"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			bundler.NodeID,
			metadata.NodeID,
			config.ManifestNodeID,
			fs.VerifierNodeID,
			fs.HasherNodeID,
			fs.WalkerNodeID,
			progrock.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			invoker, err := graft.Dep[*bundler.Invoker](ctx)
			if err != nil {
				return nil, err
			}

			generator, err := graft.Dep[*metadata.Generator](ctx)
			if err != nil {
				return nil, err
			}

			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			assets, err := graft.Dep[ports.AssetLister](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Telemetry](ctx)
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

			return New(invoker, generator, manifests, verifier, hasher, assets, tracer, renderer, log), nil
		},
	})
}
