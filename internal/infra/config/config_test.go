package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"lexorigin/internal/infra/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaURL)
	assert.Equal(t, "gpt-oss:20b-cloud", cfg.OllamaModel)
	assert.Equal(t, 2048, cfg.LLMMaxTokens)
	assert.True(t, cfg.LLMEnabled)
	assert.False(t, cfg.ForceRefresh)
	assert.Equal(t, "data", cfg.DataDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("OLLAMA_MODEL", "llama3")
	t.Setenv("LLM_ENABLED", "false")
	t.Setenv("LLM_MAX_TOKENS", "512")
	t.Setenv("LEXORIGIN_FORCE_REFRESH", "true")

	cfg := config.Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "llama3", cfg.OllamaModel)
	assert.False(t, cfg.LLMEnabled)
	assert.Equal(t, 512, cfg.LLMMaxTokens)
	assert.True(t, cfg.ForceRefresh)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("LLM_MAX_TOKENS", "lots")

	cfg := config.Load()

	assert.Equal(t, 2048, cfg.LLMMaxTokens)
}

func TestLoad_DBPasswordFromFile(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "db_password")
	require.NoError(t, os.WriteFile(secretPath, []byte("s3cret\n"), 0o600))

	t.Setenv("DB_PASSWORD_FILE", secretPath)

	cfg := config.Load()
	assert.Equal(t, "s3cret", cfg.DBPassword)
}

func TestLoad_DBPasswordEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	secretPath := filepath.Join(dir, "db_password")
	require.NoError(t, os.WriteFile(secretPath, []byte("from-file"), 0o600))

	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("DB_PASSWORD_FILE", secretPath)

	cfg := config.Load()
	assert.Equal(t, "from-env", cfg.DBPassword)
}
