// Package telemetry provides telemetry adapters that do not depend on a recording backend.
package telemetry

import (
	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(_ string) ports.Vertex {
	return NoOpVertex{}
}

// Trace always returns nil.
func (t *NoOp) Trace() []domain.StageTiming { return nil }

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a ports.Vertex that records nothing.
type NoOpVertex struct{}

// Complete does nothing.
func (NoOpVertex) Complete(_ error) {}

// Skipped does nothing.
func (NoOpVertex) Skipped() {}
