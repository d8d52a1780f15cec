package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingCredentials means no language-model credentials were found. This
// is fatal at startup; the service must not come up and fail mid-conversation
// instead.
var ErrMissingCredentials = errors.New("config: missing language model credentials")

// Config is the application configuration, loaded from YAML with environment
// overrides for secrets.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Port    int    `yaml:"port"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`

	Database struct {
		Driver string `yaml:"driver"` // sqlite3 or postgres
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	Provider struct {
		Name        string  `yaml:"name"` // openai or github_models
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float64 `yaml:"temperature"`
	} `yaml:"provider"`

	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`

	OpenAIKey string `yaml:"openai_key"`
	LogLevel  string `yaml:"log_level"`
}

// Load reads configuration from path, applies defaults and environment
// overrides, and validates credentials.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 9090
	cfg.Metrics.Path = "/metrics"
	cfg.Database.Driver = "sqlite3"
	cfg.Database.DSN = "pizzaiolo.db"
	cfg.Provider.Name = "openai"
	cfg.Provider.Model = "gpt-4o-mini"
	cfg.Provider.MaxTokens = 300
	cfg.Provider.Temperature = 0.7
	cfg.LogLevel = "info"
	return cfg
}

func applyEnv(cfg *Config) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAIKey = key
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
}

// Validate checks that the selected provider has usable credentials.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case "openai":
		if c.OpenAIKey == "" {
			return ErrMissingCredentials
		}
	case "github_models":
		if os.Getenv("GITHUB_TOKEN") == "" {
			return ErrMissingCredentials
		}
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider.Name)
	}
	return nil
}
