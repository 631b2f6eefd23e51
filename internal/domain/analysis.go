package domain

import "time"

// FocusAnalysis is one completed analysis run: the model's narrative
// summary plus the score and recommendations mined from it. Records are
// immutable once created; the history store owns them after insertion.
type FocusAnalysis struct {
	ID              string
	Summary         string
	FocusScore      float64 // 0-100
	Recommendations []string
	Timestamp       time.Time
	UserID          string // empty when the record predates user stamping
}
