package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// runInputForm collects the self-report fields interactively. The form
// only enforces that values parse; plausibility bounds stay with the
// domain validators so scripted and interactive input behave alike.
func runInputForm(activity *string, duration *float64, stress, focus *int) error {
	durationStr := strconv.FormatFloat(*duration, 'f', -1, 64)
	stressStr := strconv.Itoa(*stress)
	focusStr := strconv.Itoa(*focus)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Placeholder("Studying").
				Value(activity).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Duration (hours)").
				Placeholder("1.5").
				Value(&durationStr).
				Validate(validateFloat),
			huh.NewInput().
				Title("Stress level (1-10)").
				Placeholder("5").
				Value(&stressStr).
				Validate(validateInt),
			huh.NewInput().
				Title("Focus level (1-10)").
				Placeholder("5").
				Value(&focusStr).
				Validate(validateInt),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	*duration, _ = strconv.ParseFloat(strings.TrimSpace(durationStr), 64)
	*stress, _ = strconv.Atoi(strings.TrimSpace(stressStr))
	*focus, _ = strconv.Atoi(strings.TrimSpace(focusStr))
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}
