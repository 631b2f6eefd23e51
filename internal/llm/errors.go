package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey indicates no API key is configured. Detected before
	// any network I/O happens.
	ErrMissingAPIKey = errors.New("llm api key not configured")

	// ErrInvalidURL indicates the configured endpoint URL is unusable.
	ErrInvalidURL = errors.New("invalid llm endpoint url")

	// ErrNetwork indicates a transport-level failure (DNS, connection,
	// timeout). The underlying cause is attached via wrapping.
	ErrNetwork = errors.New("llm request failed")

	// ErrNoData indicates a successful status with an empty body or no
	// choices to read a reply from.
	ErrNoData = errors.New("llm response contained no data")

	// ErrDecode indicates the response body was not valid JSON in the
	// expected chat-completions shape.
	ErrDecode = errors.New("llm response could not be decoded")
)

// APIError is a non-2xx response from the provider. Message carries the
// provider's own error text when one could be extracted.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm api error (status %d): %s", e.StatusCode, e.Message)
}
