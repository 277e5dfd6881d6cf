package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rnbundle/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rnbundle/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rnbundle/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/rnbundle/internal/engine/metadata"
	"go.trai.ch/rnbundle/internal/engine/packager"
	"go.trai.ch/rnbundle/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.ManifestNodeID,
			pipeline.NodeID,
			metadata.NodeID,
			packager.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[*metadata.Generator](ctx)
	if err != nil {
		return nil, err
	}

	assembler, err := graft.Dep[*packager.Assembler](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, manifests, pipe, generator, assembler, tracer, log), nil
}
