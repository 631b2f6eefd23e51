package analysis

import (
	"errors"
	"strings"
)

// ErrNoUser indicates no user context could be resolved to stamp the
// analysis record.
var ErrNoUser = errors.New("no user context available")

// ValidationError reports the blocking messages that stopped a pipeline
// run before any network call was made.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
