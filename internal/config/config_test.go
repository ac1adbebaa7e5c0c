package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[app]
demo = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, ModeSingle, cfg.App.Mode)
	assert.True(t, cfg.App.IsSingleMode())
	assert.Equal(t, "luccifadez", cfg.App.SingleBarberSlug)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_Marketplace(t *testing.T) {
	path := writeConfig(t, `
[app]
mode = "marketplace"
demo = true

[server]
http_port = 9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.IsMarketplaceMode())
	assert.Equal(t, 9000, cfg.Server.HTTPPort)
}

func TestLoad_InvalidMode(t *testing.T) {
	path := writeConfig(t, `
[app]
mode = "multi"
demo = true
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestLoad_RequiresDatabaseOutsideDemo(t *testing.T) {
	path := writeConfig(t, `
[app]
mode = "single"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_MODE", "marketplace")
	t.Setenv("DB_PASSWORD", "from-env")

	path := writeConfig(t, `
[app]
mode = "single"
demo = true

[database]
password = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeMarketplace, cfg.App.Mode)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "booking",
		Password: "secret",
		DBName:   "booking",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=booking password=secret dbname=booking sslmode=disable",
		d.DSN(),
	)
}
