package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PRESENCE_API_URL", "PRESENCE_TIMEOUT_MS", "PRESENCE_DIAL_TIMEOUT_MS",
		"PRESENCE_LOG_CALLS", "PRESENCE_LOG_FILE", "PRESENCE_DB",
		"PRESENCE_EXPORT_FORMAT", "PRESENCE_REMEMBER",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 10000, cfg.API.TimeoutMs)
	assert.False(t, cfg.LogCalls)
	assert.True(t, cfg.Remember)
	assert.Equal(t, FormatText, cfg.ExportFormat)
	assert.Equal(t, "presence.log", filepath.Base(cfg.LogFile))
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFilesUseDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
api:
  base_url: https://presence.example.com
  timeout_ms: 2500
log_calls: true
export_format: xlsx
remember_selections: false
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "https://presence.example.com", cfg.API.BaseURL)
	assert.Equal(t, 2500, cfg.API.TimeoutMs)
	assert.Equal(t, DefaultConfig().API.DialTimeoutMs, cfg.API.DialTimeoutMs)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, FormatXLSX, cfg.ExportFormat)
	assert.False(t, cfg.Remember)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "api:\n  base_url: http://file:5000\n")
	t.Setenv("PRESENCE_API_URL", "http://env:6000")
	t.Setenv("PRESENCE_TIMEOUT_MS", "1500")
	t.Setenv("PRESENCE_DB", "/tmp/p.db")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "http://env:6000", cfg.API.BaseURL)
	assert.Equal(t, 1500, cfg.API.TimeoutMs)
	assert.Equal(t, "/tmp/p.db", cfg.DBPath)
}

func TestLoad_DotEnvFillsUnsetVariables(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("PRESENCE_LOG_FILE"))
	t.Cleanup(func() { os.Unsetenv("PRESENCE_LOG_FILE") })
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "PRESENCE_LOG_FILE=/var/log/presence.log\n")

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/presence.log", cfg.LogFile)
}

func TestLoad_IgnoresBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("PRESENCE_TIMEOUT_MS", "soon")
	t.Setenv("PRESENCE_REMEMBER", "maybe")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.API.TimeoutMs)
	assert.True(t, cfg.Remember)
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.yaml", "api: [unclosed\n")

	_, err := Load(path, "")
	assert.ErrorContains(t, err, "parsing config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no scheme", func(c *Config) { c.API.BaseURL = "localhost:5000" }},
		{"ftp scheme", func(c *Config) { c.API.BaseURL = "ftp://host" }},
		{"zero timeout", func(c *Config) { c.API.TimeoutMs = 0 }},
		{"unknown format", func(c *Config) { c.ExportFormat = "pdf" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestClientConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://api:1"
	cfg.API.TimeoutMs = 42

	client := cfg.ClientConfig()
	assert.Equal(t, "http://api:1", client.BaseURL)
	assert.Equal(t, 42, client.TimeoutMs)
	assert.Equal(t, "presence-cli", client.UserAgent)
}
