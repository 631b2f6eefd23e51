package llm

import (
	"os"
	"strconv"
)

// Provider identifies the LLM vendor endpoint the client talks to.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderOpenRouter Provider = "openrouter"
	ProviderAbacus     Provider = "abacus"
)

// Valid reports whether p names a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter, ProviderAbacus:
		return true
	}
	return false
}

// DefaultURL returns the provider's chat endpoint.
func (p Provider) DefaultURL() string {
	switch p {
	case ProviderOpenAI:
		return "https://api.openai.com/v1/chat/completions"
	case ProviderAnthropic:
		return "https://api.anthropic.com/v1/messages"
	case ProviderAbacus:
		return "https://api.abacus.ai/v1/chat/completions"
	default:
		return "https://openrouter.ai/api/v1/chat/completions"
	}
}

// DefaultModel returns the model used when none is configured.
func (p Provider) DefaultModel() string {
	switch p {
	case ProviderOpenAI, ProviderAbacus:
		return "gpt-4o-mini"
	case ProviderAnthropic:
		return "claude-3-haiku-20240307"
	default:
		return "amazon/nova-lite-v1"
	}
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	APIKey    string
	APIURL    string
	Model     string
	Provider  Provider
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config pointed at the default provider. The API
// key is intentionally empty; the client refuses to call out without one.
func DefaultConfig() Config {
	p := ProviderOpenRouter
	return Config{
		Provider:  p,
		APIURL:    p.DefaultURL(),
		Model:     p.DefaultModel(),
		TimeoutMs: 30000,
	}
}

// LoadConfig reads LLM configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BALANCE_PROVIDER"); v != "" {
		if p := Provider(v); p.Valid() {
			cfg.Provider = p
			cfg.APIURL = p.DefaultURL()
			cfg.Model = p.DefaultModel()
		}
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("BALANCE_LLM_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("BALANCE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BALANCE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BALANCE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
