package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFocusScore_Patterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"labeled focus score", "Focus Score: 85", 85},
		{"labeled focus score lowercase", "your focus score is not given, focus score: 72", 72},
		{"bare score label", "Overall Score: 64\nDetails follow.", 64},
		{"slash hundred", "I'd rate this day 78/100 overall.", 78},
		{"percentage", "Focus quality around 66% today.", 66},
		{"no numbers", "no numbers here", 50},
		{"empty", "", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFocusScore(tt.text))
		})
	}
}

func TestParseFocusScore_PriorityOrder(t *testing.T) {
	// "focus score" outranks a bare "score", which outranks N/100.
	text := "Rating: 30/100. Score: 40. Focus Score: 90."
	assert.Equal(t, 90.0, ParseFocusScore(text))

	text = "Rating: 30/100. Score: 40."
	assert.Equal(t, 40.0, ParseFocusScore(text))
}

func TestParseFocusScore_Clamp(t *testing.T) {
	assert.Equal(t, 100.0, ParseFocusScore("Focus Score: 250"))
	assert.Equal(t, 100.0, clampScore(9999))
	assert.Equal(t, 0.0, clampScore(-3))
	assert.Equal(t, 42.0, clampScore(42))
}

func TestParseRecommendations_Markers(t *testing.T) {
	text := `Here is my analysis.

Recommendations:
1. Take a short walk every ninety minutes
2. Keep your bedroom cool and dark at night
- Drink water before your first coffee
* Schedule deep work before noon
• Step away from screens after dinner
Not a list line, ignored.`

	recs := ParseRecommendations(text)

	assert.Equal(t, []string{
		"Take a short walk every ninety minutes",
		"Keep your bedroom cool and dark at night",
		"Drink water before your first coffee",
		"Schedule deep work before noon",
		"Step away from screens after dinner",
	}, recs)
}

func TestParseRecommendations_NeverMoreThanFive(t *testing.T) {
	text := `1. First recommendation with enough text
2. Second recommendation with enough text
3. Third recommendation with enough text
4. Fourth recommendation with enough text
5. Fifth recommendation with enough text
6. Sixth recommendation with enough text
7. Seventh recommendation with enough text`

	recs := ParseRecommendations(text)

	assert.Len(t, recs, 5)
	assert.Equal(t, "First recommendation with enough text", recs[0])
	assert.Equal(t, "Fifth recommendation with enough text", recs[4])
}

func TestParseRecommendations_ShortLinesFiltered(t *testing.T) {
	text := `1. Short
2. Also tiny
3. This one carries actual advice worth keeping`

	recs := ParseRecommendations(text)

	assert.Equal(t, []string{"This one carries actual advice worth keeping"}, recs)
}

func TestParseRecommendations_Fallback(t *testing.T) {
	recs := ParseRecommendations("A wall of prose with no list structure at all.")

	assert.NotEmpty(t, recs)
	assert.Equal(t, fallbackRecommendations, recs)
	assert.LessOrEqual(t, len(recs), 5)
}
