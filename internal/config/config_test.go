package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("PROFILE_USER", "")
	t.Setenv("PROFILE_OUT", "")
	t.Setenv("SURREAL_URL", "")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("LLM_MODEL", "")

	cfg := Load()

	assert.Equal(t, "m4ster-slave", cfg.Username)
	assert.Equal(t, "README.md", cfg.OutputPath)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLMBaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
	assert.False(t, cfg.StoreConfigured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("PROFILE_USER", "octocat")
	t.Setenv("PROFILE_OUT", "OUT.md")
	t.Setenv("SURREAL_URL", "ws://localhost:8000/rpc")

	cfg := Load()

	assert.Equal(t, "tok", cfg.GitHubToken)
	assert.Equal(t, "octocat", cfg.Username)
	assert.Equal(t, "OUT.md", cfg.OutputPath)
	// The SDK appends /rpc itself, so the suffix is stripped on load.
	assert.Equal(t, "ws://localhost:8000", cfg.SurrealURL)
	assert.True(t, cfg.StoreConfigured())
}
