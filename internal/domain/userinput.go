package domain

import (
	"strings"
	"time"
)

// UserInput is a self-reported activity entry.
type UserInput struct {
	Activity      string
	DurationHours float64
	StressLevel   int // 1-10
	FocusLevel    int // 1-10
	Timestamp     time.Time
}

// Validate checks the entry for plausibility. Check order is fixed:
// activity, duration, stress, focus. A duration between 12 and 16 hours is
// listed with the errors for visibility but does not block the pipeline;
// anything over 16 hours does.
func (u UserInput) Validate() ValidationResult {
	var b resultBuilder

	if strings.TrimSpace(u.Activity) == "" {
		b.block("activity description cannot be empty")
	}

	switch {
	case u.DurationHours <= 0:
		b.block("activity duration must be positive")
	case u.DurationHours > 24:
		b.block("activity duration cannot exceed 24 hours")
	case u.DurationHours > 16:
		b.block("activity duration over 16 hours is implausible")
	case u.DurationHours > 12:
		b.listed("activity duration over 12 hours is unusually long")
	}

	if u.StressLevel < 1 || u.StressLevel > 10 {
		b.block("stress level must be between 1 and 10")
	}
	if u.FocusLevel < 1 || u.FocusLevel > 10 {
		b.block("focus level must be between 1 and 10")
	}

	return b.result()
}
