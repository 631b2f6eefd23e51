package domain

import (
	"fmt"
	"time"
)

// HealthData is a snapshot of recent biometric readings supplied by a
// health source. Plausibility is a predicate checked by Validate, not a
// property enforced by the type.
type HealthData struct {
	HeartRateSamples []float64 // most recent readings, newest first
	SleepHours       float64   // 7-day nightly average
	StepCount        float64
	ActiveMinutes    float64
	Timestamp        time.Time
}

// AverageHeartRate returns the mean of the recorded samples, or 0 when no
// samples were captured.
func (h HealthData) AverageHeartRate() float64 {
	if len(h.HeartRateSamples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range h.HeartRateSamples {
		sum += s
	}
	return sum / float64(len(h.HeartRateSamples))
}

// Validate checks the readings against physiologically plausible bounds.
// Every applicable rule runs; nothing short-circuits. Heart rate rules are
// skipped entirely when no samples are present.
func (h HealthData) Validate() ValidationResult {
	var b resultBuilder

	if len(h.HeartRateSamples) > 0 {
		avg := h.AverageHeartRate()
		switch {
		case avg > 200:
			b.block(fmt.Sprintf("average heart rate is dangerously high (%.0f bpm)", avg))
		case avg >= 120:
			b.warn(fmt.Sprintf("average heart rate is elevated (%.0f bpm)", avg))
		}
		switch {
		case avg < 30:
			b.block(fmt.Sprintf("average heart rate is dangerously low (%.0f bpm)", avg))
		case avg <= 40:
			b.warn(fmt.Sprintf("average heart rate is unusually low (%.0f bpm)", avg))
		}
	}

	switch {
	case h.SleepHours > 24:
		b.block("sleep duration cannot exceed 24 hours")
	case h.SleepHours > 12:
		b.warn(fmt.Sprintf("sleep duration of %.1f hours is unusually long", h.SleepHours))
	}
	switch {
	case h.SleepHours < 0:
		b.block("sleep duration must be non-negative")
	case h.SleepHours <= 4:
		b.warn(fmt.Sprintf("very low sleep (%.1f hours)", h.SleepHours))
	}

	switch {
	case h.ActiveMinutes > 1440:
		b.block("active time cannot exceed 24 hours")
	case h.ActiveMinutes > 720:
		b.warn(fmt.Sprintf("active time of %.0f minutes is unusually high", h.ActiveMinutes))
	}

	if h.StepCount < 0 {
		b.block("step count must be non-negative")
	} else if h.StepCount > 100000 {
		b.warn(fmt.Sprintf("step count of %.0f is unusually high", h.StepCount))
	}

	return b.result()
}
