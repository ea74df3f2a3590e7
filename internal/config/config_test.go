package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 60*time.Second, cfg.StalenessWindow())
	assert.Equal(t, 24*time.Hour, cfg.LossPeriod())
	assert.Equal(t, time.Hour, cfg.AbandonTimeout())
	assert.Equal(t, "0.001", cfg.Vault.MaxLossFraction)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
listen_addr = ":9090"
admin_token = "c7b9a5a4-9a0e-4f5f-8d3b-1a2b3c4d5e6f"

[vault]
staleness_window_seconds = 120
max_loss_fraction = "0.01"
loss_period_seconds = 3600
abandon_timeout_seconds = 600
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "c7b9a5a4-9a0e-4f5f-8d3b-1a2b3c4d5e6f", cfg.AdminToken)
	assert.Equal(t, 2*time.Minute, cfg.StalenessWindow())
	assert.Equal(t, "0.01", cfg.Vault.MaxLossFraction)
	assert.Equal(t, 10*time.Minute, cfg.AbandonTimeout())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}},
		{
			name:    "zero staleness window",
			mutate:  func(c *Config) { c.Vault.StalenessWindowSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "negative loss period",
			mutate:  func(c *Config) { c.Vault.LossPeriodSeconds = -1 },
			wantErr: true,
		},
		{
			name:    "zero abandon timeout",
			mutate:  func(c *Config) { c.Vault.AbandonTimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "malformed admin token",
			mutate:  func(c *Config) { c.AdminToken = "not-a-uuid" },
			wantErr: true,
		},
		{
			name:   "uuid admin token",
			mutate: func(c *Config) { c.AdminToken = "c7b9a5a4-9a0e-4f5f-8d3b-1a2b3c4d5e6f" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConnString_EnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	t.Setenv("DB_CONN_STR", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")

	assert.Contains(t, cfg.ConnString(), "host=db.internal")

	t.Setenv("DB_CONN_STR", "postgres://explicit")
	assert.Equal(t, "postgres://explicit", cfg.ConnString())
}
