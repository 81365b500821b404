package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frotaerrors "github.com/alexisbeaulieu97/frota/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default("/home/user")
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "http://localhost:3001", cfg.APIURL)
	assert.Equal(t, filepath.Join("/home/user", ".frota", "prefs.json"), cfg.PrefsPath())
	assert.Equal(t, filepath.Join("/home/user", ".frota", "frota.log"), cfg.LogPath())
}

func TestLoadMissingFileKeepsBase(t *testing.T) {
	t.Parallel()

	base := Default(t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestLoadOverridesFromYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api_url: "http://fleet.example:8080"
timeout: 3s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	base := Default("/home/user")
	cfg, err := Load(path, base)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "http://fleet.example:8080", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, base.DataDir, cfg.DataDir)
}

func TestLoadReportsParseLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: ok\ntimeout: [1, 2]\n"), 0o644))

	_, err := Load(path, Default("/home/user"))
	var parseErr *frotaerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvAPIURL:   "https://api.frota.dev",
		EnvLogLevel: "warn",
		EnvDataDir:  "",
	}
	cfg := Default("/home/user")
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "https://api.frota.dev", cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filepath.Join("/home/user", ".frota"), cfg.DataDir, "empty values are ignored")
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{name: "missing url", edit: func(c *Config) { c.APIURL = "" }, field: "api_url"},
		{name: "non-http url", edit: func(c *Config) { c.APIURL = "ftp://x.y" }, field: "api_url"},
		{name: "unknown level", edit: func(c *Config) { c.LogLevel = "trace" }, field: "log_level"},
		{name: "negative timeout", edit: func(c *Config) { c.Timeout = -time.Second }, field: "timeout"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default("/home/user")
			tt.edit(&cfg)

			var vErr *frotaerrors.ValidationError
			require.ErrorAs(t, Validate(cfg), &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}
