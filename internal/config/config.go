// Package config loads client settings from ~/.frota/config.yaml, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/frota/internal/api"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvAPIURL   = "FROTA_API_URL"
	EnvLogLevel = "FROTA_LOG_LEVEL"
	EnvDataDir  = "FROTA_DATA_DIR"
)

const dirName = ".frota"

// Config holds client settings.
type Config struct {
	APIURL   string        `yaml:"api_url" validate:"required,url,startswith=http"`
	Timeout  time.Duration `yaml:"timeout" validate:"gte=0"`
	LogLevel string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	DataDir  string        `yaml:"data_dir" validate:"required"`
}

// Default returns the settings used when nothing else is configured.
func Default(home string) Config {
	return Config{
		APIURL:   api.DefaultBaseURL,
		Timeout:  10 * time.Second,
		LogLevel: "info",
		DataDir:  filepath.Join(home, dirName),
	}
}

// DefaultPath returns ~/.frota/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName, "config.yaml"), nil
}

// PrefsPath is the preference store file inside the data directory.
func (c Config) PrefsPath() string {
	return filepath.Join(c.DataDir, "prefs.json")
}

// LogPath is the log file written while the terminal UI owns the screen.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "frota.log")
}

// ApplyEnv overrides settings from environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		c.DataDir = v
	}
}
