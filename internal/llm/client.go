package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// systemPrompt frames every completion request. The sections it asks the
// model for are what the response parser downstream mines for a score and
// recommendations.
const systemPrompt = "You are a health and focus analysis assistant. " +
	"Analyze health data and provide insights about focus patterns, stress indicators, " +
	"and recommendations. Format your response with clear sections and provide a " +
	"focus score from 0-100."

// Client provides access to a chat-completions style LLM endpoint.
type Client interface {
	// Complete sends the prompt and returns the model's reply text.
	// Exactly one of reply or error is produced per call.
	Complete(ctx context.Context, prompt string) (string, error)
}

// httpClient implements Client against any OpenAI-compatible HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client for the configured provider.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

// chatMessage is one entry of the messages array in the request body.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the JSON body POSTed to the provider.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse is the subset of the provider response the client reads.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// apiErrorBody is the best-effort shape of a provider error payload.
type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *httpClient) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return "", ErrMissingAPIKey
	}

	start := time.Now()
	text, err := c.doRequest(ctx, prompt)
	latency := time.Since(start).Milliseconds()

	c.observer.OnCallComplete(CallEvent{
		Provider:  c.cfg.Provider,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})

	return text, err
}

func (c *httpClient) doRequest(ctx context.Context, prompt string) (string, error) {
	u, err := url.Parse(c.cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, c.cfg.APIURL)
	}

	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	timeout := time.Duration(c.cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Provider == ProviderOpenRouter {
		// OpenRouter asks callers to identify themselves.
		req.Header.Set("HTTP-Referer", "BalanceApp")
		req.Header.Set("X-Title", "BalanceApp/1.0")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractAPIErrorMessage(respBody, resp.StatusCode),
		}
	}

	if len(respBody) == 0 {
		return "", ErrNoData
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrNoData
	}

	return parsed.Choices[0].Message.Content, nil
}

// extractAPIErrorMessage pulls the provider's error message out of an
// {error:{message}} payload when present, else returns a generic status
// string. Credentials never appear in the result.
func extractAPIErrorMessage(body []byte, statusCode int) string {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return fmt.Sprintf("status %d", statusCode)
}

func errorCode(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return "MISSING_KEY"
	case errors.Is(err, ErrInvalidURL):
		return "INVALID_URL"
	case errors.Is(err, ErrNetwork):
		return "NETWORK"
	case errors.Is(err, ErrNoData):
		return "NO_DATA"
	case errors.Is(err, ErrDecode):
		return "DECODE"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("API_%d", apiErr.StatusCode)
	default:
		return "UNKNOWN"
	}
}
