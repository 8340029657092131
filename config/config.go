// Package config loads application configuration from an optional YAML file
// and TALENTA_-prefixed environment variables, with sensible defaults for
// local use.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Provider     Provider     `mapstructure:"provider"`
	Conversation Conversation `mapstructure:"conversation"`
	Storage      Storage      `mapstructure:"storage"`
	Log          Log          `mapstructure:"log"`
}

// Provider configures the language model gateway.
type Provider struct {
	// Name selects the gateway backend: "openai" or "anthropic".
	Name        string        `mapstructure:"name"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int64         `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Conversation bounds the orchestration loop.
type Conversation struct {
	MaxIterations int `mapstructure:"max_iterations"`
	MaxTurns      int `mapstructure:"max_turns"`
}

// Storage selects the persistence backend.
type Storage struct {
	// Backend is "memory" or "libsql".
	Backend string `mapstructure:"backend"`
	// Path is the database file, used by the libsql backend.
	Path string `mapstructure:"path"`
}

// Log configures structured logging.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given file (optional; empty means search
// the working directory), environment variables and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("talenta")
		v.SetConfigType("yaml")
	}

	v.SetDefault("provider.name", "openai")
	v.SetDefault("provider.model", "")
	v.SetDefault("provider.temperature", 0.7)
	v.SetDefault("provider.max_tokens", 4096)
	v.SetDefault("provider.timeout", 30*time.Second)
	v.SetDefault("conversation.max_iterations", 10)
	v.SetDefault("conversation.max_turns", 50)
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.path", "talenta.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("TALENTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider.Name)
	}
	switch c.Storage.Backend {
	case "memory":
	case "libsql":
		if c.Storage.Path == "" {
			return fmt.Errorf("config: storage.path is required for the libsql backend")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Conversation.MaxIterations < 1 {
		return fmt.Errorf("config: conversation.max_iterations must be at least 1")
	}
	if c.Conversation.MaxTurns < 2 {
		return fmt.Errorf("config: conversation.max_turns must be at least 2")
	}
	return nil
}
