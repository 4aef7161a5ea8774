package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"ZIP_CODE", "API_BASE_URL", "OUTPUT_FILE", "CHART_FILE", "REQUEST_TIMEOUT", "TIMEZONE", "LOG_LEVEL"}

// isolate runs the test from an empty directory with the config variables unset.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		ZipCode:        "33829",
		BaseURL:        "https://api.corrently.io",
		OutputFile:     "energy_prices.xlsx",
		RequestTimeout: 30 * time.Second,
		Timezone:       "Local",
		LogLevel:       "INFO",
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("ZIP_CODE", "10115")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "10115", cfg.ZipCode)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("ZIP_CODE=80331\nOUTPUT_FILE=out.xlsx\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "80331", cfg.ZipCode)
	assert.Equal(t, "out.xlsx", cfg.OutputFile)
}

func TestLoad_InvalidDuration(t *testing.T) {
	isolate(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{ZipCode: "33829", BaseURL: "http://localhost", OutputFile: "x.xlsx", Timezone: "UTC"}
	}
	tests := map[string]struct {
		mutate  func(c *Config)
		wantErr string
	}{
		"valid":            {mutate: func(*Config) {}},
		"missing zip":      {mutate: func(c *Config) { c.ZipCode = "" }, wantErr: "zip code is required"},
		"missing base url": {mutate: func(c *Config) { c.BaseURL = "" }, wantErr: "api base url is required"},
		"missing output":   {mutate: func(c *Config) { c.OutputFile = "" }, wantErr: "output file is required"},
		"bad timezone":     {mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: "invalid timezone"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ChartPath(t *testing.T) {
	assert.Equal(t, "strompreise-33829.png", (&Config{ZipCode: "33829"}).ChartPath())
	assert.Equal(t, "custom.svg", (&Config{ZipCode: "33829", ChartFile: "custom.svg"}).ChartPath())
	assert.Equal(t, "Lokal-Preis in 33829", (&Config{ZipCode: "33829"}).SeriesLabel())
}
