package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
openai_key: test-key
server:
  port: 9999
provider:
  model: gpt-4o
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.Provider.Model)
	// Untouched values keep their defaults.
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, 300, cfg.Provider.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Provider.Temperature, 0.001)
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	path := writeConfig(t, "log_level: debug\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoadEnvOverridesKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	path := writeConfig(t, "openai_key: file-key\n")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "env-key", cfg.OpenAIKey)
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := defaults()
	cfg.OpenAIKey = "k"
	cfg.Provider.Name = "carrier-pigeon"

	assert.Error(t, cfg.Validate())
}
