package analysis

import (
	"fmt"
	"strings"

	"github.com/jzembower/balance/internal/domain"
)

// BuildPrompt renders the user prompt sent alongside the fixed system
// instructions. Deterministic for a given input; formatting precision
// (whole-number heart rates and steps, one decimal for hours) is relied
// on by the prompt's readers, human and model alike.
func BuildPrompt(user domain.User, health domain.HealthData, input domain.UserInput) string {
	recent := health.HeartRateSamples
	if len(recent) > 5 {
		recent = recent[:5]
	}
	readings := make([]string, len(recent))
	for i, r := range recent {
		readings[i] = fmt.Sprintf("%.0f", r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following data for %s to identify focus cues and patterns:\n\n", user.DisplayName())
	b.WriteString("Health Data:\n")
	fmt.Fprintf(&b, "- Average Heart Rate: %.0f bpm\n", health.AverageHeartRate())
	fmt.Fprintf(&b, "- Recent Heart Rates: %s bpm\n", strings.Join(readings, ", "))
	fmt.Fprintf(&b, "- Average Sleep: %.1f hours/night (past 7 days)\n", health.SleepHours)
	fmt.Fprintf(&b, "- Today's Steps: %d\n", int(health.StepCount))
	fmt.Fprintf(&b, "- Active Minutes: %d\n\n", int(health.ActiveMinutes))
	b.WriteString("User Input:\n")
	fmt.Fprintf(&b, "- Activity: %s\n", input.Activity)
	fmt.Fprintf(&b, "- Duration: %.1f hours\n", input.DurationHours)
	fmt.Fprintf(&b, "- Self-Reported Stress Level: %d/10\n", input.StressLevel)
	fmt.Fprintf(&b, "- Self-Reported Focus Level: %d/10\n\n", input.FocusLevel)
	b.WriteString(`Please provide:
1. A focus score from 0-100 based on all factors
2. Analysis of focus patterns based on vital signs and activity
3. Stress indicators from the data
4. 3-5 specific, actionable recommendations for optimal focus
5. Any concerning patterns or anomalies that need attention

Format your response clearly with sections.`)

	return b.String()
}
