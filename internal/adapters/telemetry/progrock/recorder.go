// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry by recording every pipeline stage as a progrock vertex.
type Recorder struct {
	w       progrock.Writer
	rec     *progrock.Recorder
	run     string
	journal *Journal
}

// New creates a new Recorder writing to a Journal.
func New() ports.Telemetry {
	return NewRecorder(NewJournal(), "rnbundle")
}

// NewRecorder creates a new Recorder with the given writer. run namespaces vertex digests so
// that the same stage recorded by two runs on one writer stays distinct. Trace is only
// available when w is a *Journal.
func NewRecorder(w progrock.Writer, run string) *Recorder {
	journal, _ := w.(*Journal)
	return &Recorder{
		w:       w,
		rec:     progrock.NewRecorder(w),
		run:     run,
		journal: journal,
	}
}

// Record starts recording a new vertex for the named stage.
func (r *Recorder) Record(name string) ports.Vertex {
	d := digest.FromString(r.run + "/" + name)
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Trace returns the finished stages with their durations.
func (r *Recorder) Trace() []domain.StageTiming {
	if r.journal == nil {
		return nil
	}
	return r.journal.Stages()
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
