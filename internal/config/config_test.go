package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `backend: sqlite
database: /tmp/vault.db
timeout: 3s
mask_token: "[…]"
page_size: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/vault.db", cfg.Database)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "[…]", cfg.MaskToken)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 5, cfg.RepriseCount, "unset keys keep their defaults")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unclosed"), 0o600))

	_, err := Load(path)

	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"unknown backend", func(c *Config) { c.Backend = "ftp" }, "unknown backend"},
		{"http without url", func(c *Config) { c.BaseURL = "" }, "base_url"},
		{"sqlite without database", func(c *Config) { c.Backend = BackendSQLite; c.Database = "" }, "database"},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, "page_size"},
		{"zero reprise count", func(c *Config) { c.RepriseCount = 0 }, "reprise_count"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
