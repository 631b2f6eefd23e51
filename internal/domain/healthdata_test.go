package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func plausibleHealth() HealthData {
	return HealthData{
		HeartRateSamples: []float64{68, 70, 69, 71, 67},
		SleepHours:       8.2,
		StepCount:        8500,
		ActiveMinutes:    45,
	}
}

func TestHealthData_AverageHeartRate(t *testing.T) {
	assert.InDelta(t, 69.0, plausibleHealth().AverageHeartRate(), 0.001)
	assert.Equal(t, 0.0, HealthData{}.AverageHeartRate())
}

func TestHealthData_Validate_Plausible(t *testing.T) {
	result := plausibleHealth().Validate()

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestHealthData_Validate_PlausibleRanges(t *testing.T) {
	// Anything with average HR in (40,120), sleep in [4,12], active
	// minutes <= 720 and steps in [0,100000] must pass with no blockers.
	cases := []HealthData{
		{HeartRateSamples: []float64{41}, SleepHours: 4, StepCount: 0, ActiveMinutes: 0},
		{HeartRateSamples: []float64{119}, SleepHours: 12, StepCount: 100000, ActiveMinutes: 720},
		{HeartRateSamples: []float64{80, 90}, SleepHours: 7.5, StepCount: 12000, ActiveMinutes: 300},
	}
	for _, hd := range cases {
		assert.True(t, hd.Validate().Valid, "%+v", hd)
	}
}

func TestHealthData_Validate_HeartRate(t *testing.T) {
	tests := []struct {
		name         string
		samples      []float64
		wantValid    bool
		wantWarnings int
	}{
		{"dangerously high", []float64{210, 220}, false, 0},
		{"elevated", []float64{130}, true, 1},
		{"elevated at lower bound", []float64{120}, true, 1},
		{"dangerously low", []float64{25}, false, 0},
		{"unusually low", []float64{35}, true, 1},
		{"unusually low at upper bound", []float64{40}, true, 1},
		{"no samples skips checks", nil, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hd := plausibleHealth()
			hd.HeartRateSamples = tt.samples
			result := hd.Validate()
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

func TestHealthData_Validate_Sleep(t *testing.T) {
	hd := plausibleHealth()

	hd.SleepHours = 25
	assert.False(t, hd.Validate().Valid)

	hd.SleepHours = -1
	assert.False(t, hd.Validate().Valid)

	hd.SleepHours = 13
	result := hd.Validate()
	assert.True(t, result.Valid)
	assert.Len(t, result.Warnings, 1)

	hd.SleepHours = 3
	result = hd.Validate()
	assert.True(t, result.Valid)
	assert.Len(t, result.Warnings, 1)
}

func TestHealthData_Validate_Activity(t *testing.T) {
	hd := plausibleHealth()

	hd.ActiveMinutes = 1500
	assert.False(t, hd.Validate().Valid)

	hd.ActiveMinutes = 800
	result := hd.Validate()
	assert.True(t, result.Valid)
	assert.Len(t, result.Warnings, 1)

	hd = plausibleHealth()
	hd.StepCount = -1
	assert.False(t, hd.Validate().Valid)

	hd.StepCount = 150000
	result = hd.Validate()
	assert.True(t, result.Valid)
	assert.Len(t, result.Warnings, 1)
}

func TestHealthData_Validate_AllRulesRun(t *testing.T) {
	hd := HealthData{
		HeartRateSamples: []float64{250},
		SleepHours:       30,
		StepCount:        -5,
		ActiveMinutes:    2000,
	}
	result := hd.Validate()

	assert.False(t, result.Valid)
	// One blocker per violated rule; nothing short-circuits.
	assert.Len(t, result.Errors, 4)
}
