package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "https://openrouter.ai/api/v1/chat/completions", cfg.APIURL)
	assert.Equal(t, "amazon/nova-lite-v1", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Empty(t, cfg.APIKey)
}

func TestProvider_Defaults(t *testing.T) {
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", ProviderOpenAI.DefaultURL())
	assert.Equal(t, "gpt-4o-mini", ProviderOpenAI.DefaultModel())
	assert.Equal(t, "https://api.anthropic.com/v1/messages", ProviderAnthropic.DefaultURL())
	assert.Equal(t, "claude-3-haiku-20240307", ProviderAnthropic.DefaultModel())
	assert.Equal(t, "gpt-4o-mini", ProviderAbacus.DefaultModel())
}

func TestProvider_Valid(t *testing.T) {
	assert.True(t, ProviderOpenAI.Valid())
	assert.True(t, ProviderAbacus.Valid())
	assert.False(t, Provider("gemini").Valid())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BALANCE_PROVIDER", "anthropic")
	t.Setenv("LLM_API_KEY", "secret")
	t.Setenv("BALANCE_LLM_MODEL", "claude-3-5-haiku-latest")
	t.Setenv("BALANCE_LLM_TIMEOUT_MS", "5000")
	t.Setenv("BALANCE_LLM_LOG_CALLS", "true")

	cfg := LoadConfig()

	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, ProviderAnthropic.DefaultURL(), cfg.APIURL)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_UnknownProviderKeepsDefault(t *testing.T) {
	t.Setenv("BALANCE_PROVIDER", "nonsense")

	cfg := LoadConfig()

	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
}
