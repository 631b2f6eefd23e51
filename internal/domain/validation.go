package domain

// ValidationResult categorizes the findings of a validation pass over a
// single entity. Errors block the analysis pipeline; Warnings are advisory
// and shown to the user without halting anything.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// resultBuilder collects messages while tracking how many of them are
// blocking. A message can appear under Errors without being blocking
// (the long-duration case), so Valid derives from the blocking count
// alone, not from len(Errors).
type resultBuilder struct {
	errors   []string
	warnings []string
	blocking int
}

func (b *resultBuilder) block(msg string) {
	b.errors = append(b.errors, msg)
	b.blocking++
}

func (b *resultBuilder) listed(msg string) {
	b.errors = append(b.errors, msg)
}

func (b *resultBuilder) warn(msg string) {
	b.warnings = append(b.warnings, msg)
}

func (b *resultBuilder) result() ValidationResult {
	return ValidationResult{
		Valid:    b.blocking == 0,
		Errors:   b.errors,
		Warnings: b.warnings,
	}
}
