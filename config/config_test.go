package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider.Name)
	assert.Equal(t, 0.7, cfg.Provider.Temperature)
	assert.Equal(t, int64(4096), cfg.Provider.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 10, cfg.Conversation.MaxIterations)
	assert.Equal(t, 50, cfg.Conversation.MaxTurns)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talenta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
provider:
  name: anthropic
  model: claude-sonnet-4-20250514
storage:
  backend: libsql
  path: /tmp/talenta.db
conversation:
  max_iterations: 5
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider.Name)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Provider.Model)
	assert.Equal(t, "libsql", cfg.Storage.Backend)
	assert.Equal(t, 5, cfg.Conversation.MaxIterations)
	// Untouched keys keep their defaults.
	assert.Equal(t, 50, cfg.Conversation.MaxTurns)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TALENTA_PROVIDER_NAME", "anthropic")
	t.Setenv("TALENTA_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Provider:     Provider{Name: "openai"},
			Conversation: Conversation{MaxIterations: 10, MaxTurns: 50},
			Storage:      Storage{Backend: "memory"},
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.Provider.Name = "cohere"
	assert.ErrorContains(t, c.Validate(), "unknown provider")

	c = valid()
	c.Storage.Backend = "redis"
	assert.ErrorContains(t, c.Validate(), "unknown storage backend")

	c = valid()
	c.Storage.Backend = "libsql"
	c.Storage.Path = ""
	assert.ErrorContains(t, c.Validate(), "storage.path")

	c = valid()
	c.Conversation.MaxIterations = 0
	assert.ErrorContains(t, c.Validate(), "max_iterations")

	c = valid()
	c.Conversation.MaxTurns = 1
	assert.ErrorContains(t, c.Validate(), "max_turns")
}
