package progrock

import (
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/rnbundle/internal/core/domain"
)

var _ progrock.Writer = (*Journal)(nil)

// Journal is a progrock.Writer that folds status updates into one timing record per vertex.
// Vertex logs are dropped, so memory grows with the number of stages only.
type Journal struct {
	mu     sync.Mutex
	order  []string
	stages map[string]*stageRecord
}

type stageRecord struct {
	name      string
	started   time.Time
	completed time.Time
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{stages: make(map[string]*stageRecord)}
}

// WriteStatus applies the vertex changes carried by update.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		rec, ok := j.stages[v.Id]
		if !ok {
			rec = &stageRecord{}
			j.stages[v.Id] = rec
			j.order = append(j.order, v.Id)
		}
		rec.name = v.Name
		if v.Started != nil {
			rec.started = v.Started.AsTime()
		}
		if v.Completed != nil {
			rec.completed = v.Completed.AsTime()
		}
	}
	return nil
}

// Close does nothing; the journal stays readable after the session ends.
func (j *Journal) Close() error {
	return nil
}

// Stages returns the completed vertices in the order they were first seen.
func (j *Journal) Stages() []domain.StageTiming {
	j.mu.Lock()
	defer j.mu.Unlock()

	stages := make([]domain.StageTiming, 0, len(j.order))
	for _, id := range j.order {
		rec := j.stages[id]
		if rec.completed.IsZero() {
			continue
		}
		var d time.Duration
		if !rec.started.IsZero() && rec.completed.After(rec.started) {
			d = rec.completed.Sub(rec.started)
		}
		stages = append(stages, domain.StageTiming{Name: rec.name, Duration: d})
	}
	return stages
}
