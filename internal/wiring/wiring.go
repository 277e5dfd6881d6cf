// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rnbundle/internal/adapters/config"
	_ "go.trai.ch/rnbundle/internal/adapters/fs"
	_ "go.trai.ch/rnbundle/internal/adapters/git"
	_ "go.trai.ch/rnbundle/internal/adapters/linear"
	_ "go.trai.ch/rnbundle/internal/adapters/logger"
	_ "go.trai.ch/rnbundle/internal/adapters/shell"
	_ "go.trai.ch/rnbundle/internal/adapters/store"
	_ "go.trai.ch/rnbundle/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/rnbundle/internal/app"
	_ "go.trai.ch/rnbundle/internal/engine/bundler"
	_ "go.trai.ch/rnbundle/internal/engine/metadata"
	_ "go.trai.ch/rnbundle/internal/engine/packager"
	_ "go.trai.ch/rnbundle/internal/engine/pipeline"
)
