package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Score patterns are tried in priority order; the first pattern that
// matches anywhere in the text wins. Model output is free text, so this
// is best-effort mining, not parsing of a contract.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)focus\s+score:?\s*(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)\bscore:?\s*(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*100`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`),
}

// defaultFocusScore is reported when no pattern matches at all.
const defaultFocusScore = 50

const maxRecommendations = 5

// minRecommendationLen filters out section headings and stray markers
// that qualify as list items but carry no advice.
const minRecommendationLen = 10

// recommendationMarker matches a leading "1." style ordinal or a
// bullet/dash/asterisk list marker.
var recommendationMarker = regexp.MustCompile(`^(?:\d+\.|[•\-*])\s*`)

// fallbackRecommendations is substituted when the response yields no
// usable list lines, so callers always have something to show.
var fallbackRecommendations = []string{
	"Continue monitoring your health metrics",
	"Maintain a consistent sleep schedule",
	"Take regular breaks during focused work",
}

// ParseFocusScore extracts a 0-100 focus score from model output,
// clamping out-of-range values and defaulting to 50 when nothing matches.
func ParseFocusScore(text string) float64 {
	for _, p := range scorePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return clampScore(v)
	}
	return defaultFocusScore
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ParseRecommendations extracts up to 5 recommendation lines from model
// output, preserving their original order. Lines qualify when they start
// with a numbered or bulleted list marker and carry enough text after the
// marker is stripped.
func ParseRecommendations(text string) []string {
	var recs []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		loc := recommendationMarker.FindStringIndex(trimmed)
		if loc == nil {
			continue
		}
		cleaned := strings.TrimSpace(trimmed[loc[1]:])
		if len(cleaned) <= minRecommendationLen {
			continue
		}
		recs = append(recs, cleaned)
		if len(recs) == maxRecommendations {
			break
		}
	}
	if len(recs) == 0 {
		return append([]string(nil), fallbackRecommendations...)
	}
	return recs
}
