package ports

import "go.trai.ch/rnbundle/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records pipeline stages as units of work.
type Telemetry interface {
	// Record starts a new vertex for the named stage.
	Record(name string) Vertex
	// Trace returns the finished stages in the order they were started.
	Trace() []domain.StageTiming
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded stage.
type Vertex interface {
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Skipped marks the vertex as intentionally not run.
	Skipped()
}
