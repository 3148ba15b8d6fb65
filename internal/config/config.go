// Package config loads presence settings from defaults, an optional YAML
// file, an optional .env file and PRESENCE_* environment variables, in
// that order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/presence/internal/api"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a setting that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Export formats accepted by the report command.
const (
	FormatText = "text"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatXLSX = "xlsx"
)

// Config holds every setting of the presence client.
type Config struct {
	API          APIConfig `yaml:"api"`
	LogCalls     bool      `yaml:"log_calls,omitempty"`
	LogFile      string    `yaml:"log_file,omitempty"`
	DBPath       string    `yaml:"db_path,omitempty"`
	ExportFormat string    `yaml:"export_format,omitempty"`
	// Remember stores the last selection of each panel and restores it on
	// the next dashboard launch.
	Remember bool `yaml:"remember_selections"`
}

// APIConfig holds presence API connection settings.
type APIConfig struct {
	BaseURL       string `yaml:"base_url,omitempty"`
	TimeoutMs     int    `yaml:"timeout_ms,omitempty"`
	DialTimeoutMs int    `yaml:"dial_timeout_ms,omitempty"`
}

// Dir returns ~/.presence, or .presence when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".presence"
	}
	return filepath.Join(home, ".presence")
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns a Config pointing at a local presence API.
func DefaultConfig() Config {
	client := api.DefaultClientConfig()
	dir := Dir()
	return Config{
		API: APIConfig{
			BaseURL:       client.BaseURL,
			TimeoutMs:     client.TimeoutMs,
			DialTimeoutMs: client.DialTimeoutMs,
		},
		LogCalls:     false,
		LogFile:      filepath.Join(dir, "presence.log"),
		DBPath:       filepath.Join(dir, "presence.db"),
		ExportFormat: FormatText,
		Remember:     true,
	}
}

// Load builds the configuration. A missing YAML file or .env file is not an
// error; an unreadable or malformed one is. Values from the environment
// win over the file.
func Load(path, envFile string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PRESENCE_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("PRESENCE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.TimeoutMs = n
		}
	}
	if v := os.Getenv("PRESENCE_DIAL_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.DialTimeoutMs = n
		}
	}
	if v := os.Getenv("PRESENCE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PRESENCE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("PRESENCE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PRESENCE_EXPORT_FORMAT"); v != "" {
		cfg.ExportFormat = v
	}
	if v := os.Getenv("PRESENCE_REMEMBER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Remember = b
		}
	}
}

// Validate checks the settings the client cannot run without.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api base url %q", ErrInvalid, c.API.BaseURL)
	}
	if c.API.TimeoutMs <= 0 {
		return fmt.Errorf("%w: timeout_ms must be positive", ErrInvalid)
	}
	if !ValidFormat(c.ExportFormat) {
		return fmt.Errorf("%w: export format %q", ErrInvalid, c.ExportFormat)
	}
	return nil
}

// ValidFormat reports whether f is a known export format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatSVG, FormatPNG, FormatXLSX:
		return true
	}
	return false
}

// ClientConfig returns the API client settings.
func (c Config) ClientConfig() api.ClientConfig {
	client := api.DefaultClientConfig()
	client.BaseURL = c.API.BaseURL
	client.TimeoutMs = c.API.TimeoutMs
	if c.API.DialTimeoutMs > 0 {
		client.DialTimeoutMs = c.API.DialTimeoutMs
	}
	return client
}
