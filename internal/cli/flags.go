package cli

import "github.com/spf13/pflag"

// registerInputFlags attaches the self-report flags used by analyze.
// Split out so scripted and interactive invocations share one definition.
func registerInputFlags(fs *pflag.FlagSet, activity *string, duration *float64, stress, focus *int) {
	fs.StringVarP(activity, "activity", "a", "", "What you were doing (e.g. \"Studying\")")
	fs.Float64VarP(duration, "duration", "d", 1.0, "How long, in hours")
	fs.IntVar(stress, "stress", 5, "Self-reported stress level (1-10)")
	fs.IntVar(focus, "focus", 5, "Self-reported focus level (1-10)")
}
