// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rnbundle/internal/core/domain"
)

// Executor runs external tools such as the bundler and the bytecode compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the tool, streams its output to the operator and waits for it to exit.
	//
	// A non-nil error means the process could not be started at all. A process that
	// started and exited non-zero returns its status with a nil error.
	Run(ctx context.Context, inv domain.Invocation) (domain.ExitStatus, error)
}
