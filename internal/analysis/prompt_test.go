package analysis

import (
	"strings"
	"testing"

	"github.com/jzembower/balance/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_ContainsAllFields(t *testing.T) {
	user := domain.User{ID: "u1", Name: "Test User"}
	health := domain.HealthData{
		HeartRateSamples: []float64{68, 70, 69, 71, 67},
		SleepHours:       8.2,
		StepCount:        8500,
		ActiveMinutes:    45,
	}
	input := domain.UserInput{
		Activity:      "Studying",
		DurationHours: 1.0,
		StressLevel:   3,
		FocusLevel:    7,
	}

	prompt := BuildPrompt(user, health, input)

	assert.Contains(t, prompt, "Test User")
	assert.Contains(t, prompt, "Average Heart Rate: 69 bpm")
	assert.Contains(t, prompt, "Recent Heart Rates: 68, 70, 69, 71, 67 bpm")
	assert.Contains(t, prompt, "Average Sleep: 8.2 hours/night")
	assert.Contains(t, prompt, "Today's Steps: 8500")
	assert.Contains(t, prompt, "Active Minutes: 45")
	assert.Contains(t, prompt, "Activity: Studying")
	assert.Contains(t, prompt, "Duration: 1.0 hours")
	assert.Contains(t, prompt, "Stress Level: 3/10")
	assert.Contains(t, prompt, "Focus Level: 7/10")
	assert.Contains(t, prompt, "focus score from 0-100")
	assert.Contains(t, prompt, "3-5 specific, actionable recommendations")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	user := domain.User{ID: "u1", Name: "Test User"}
	health := domain.HealthData{HeartRateSamples: []float64{70}, SleepHours: 7}
	input := domain.UserInput{Activity: "Reading", DurationHours: 2, StressLevel: 4, FocusLevel: 6}

	assert.Equal(t, BuildPrompt(user, health, input), BuildPrompt(user, health, input))
}

func TestBuildPrompt_LimitsRecentReadingsToFive(t *testing.T) {
	user := domain.User{Name: "Test User"}
	health := domain.HealthData{
		HeartRateSamples: []float64{60, 61, 62, 63, 64, 65, 66, 67},
	}
	input := domain.UserInput{Activity: "Writing", DurationHours: 1, StressLevel: 5, FocusLevel: 5}

	prompt := BuildPrompt(user, health, input)

	assert.Contains(t, prompt, "Recent Heart Rates: 60, 61, 62, 63, 64 bpm")
	assert.NotContains(t, prompt, "65, 66")
}

func TestBuildPrompt_EmptyNameFallsBack(t *testing.T) {
	prompt := BuildPrompt(domain.User{}, domain.HealthData{}, domain.UserInput{Activity: "x", DurationHours: 1, StressLevel: 5, FocusLevel: 5})
	assert.True(t, strings.Contains(prompt, "for User to identify"))
}
