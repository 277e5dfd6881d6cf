package domain

import "time"

// StageTiming is the recorded wall-clock time of one pipeline stage.
type StageTiming struct {
	Name     string
	Duration time.Duration
}
