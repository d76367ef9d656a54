package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, -1, cfg.Output.Precision)
	assert.Equal(t, "en-US", cfg.Output.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, Validate(cfg))
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("output.format", "json")
	viper.Set("output.precision", 4)
	viper.Set("log-level", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "en-US", cfg.Output.Locale, "unset keys keep their defaults")
}

func TestLoadFromConfigFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), ".phq.yml")
	contents := "log_level: debug\noutput:\n  format: json\n  precision: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "log_level comes from the file")
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 5, cfg.Output.Precision)
	assert.Equal(t, "en-US", cfg.Output.Locale, "unset keys keep their defaults")
}

func TestLoadInvalid(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("output.format", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(*Config) {},
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: "output.format",
		},
		{
			name:    "precision beyond float64",
			mutate:  func(c *Config) { c.Output.Precision = 18 },
			wantErr: "output.precision",
		},
		{
			name:   "precision at limit",
			mutate: func(c *Config) { c.Output.Precision = 17 },
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
