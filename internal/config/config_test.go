package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"football/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "football", cfg.Database.DatabaseName)
	require.Equal(t, "http://api.football-data.org/v1/", cfg.FootballData.BaseURL)
	require.Equal(t, 10, cfg.FootballData.RequestsPerMinute)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.Equal(t, 6*time.Hour, cfg.Sync.Interval)
	require.Equal(t, 720*time.Hour, cfg.Sync.Retention)
	require.Empty(t, cfg.Redis.Addr)
	require.Empty(t, cfg.JWT.PublicKey)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
environment: production
logLevel: debug
footballData:
  token: secret
  requestsPerMinute: 50
sync:
  competitions: [PL, BL1, "464"]
  interval: 1h
redis:
  addr: redis://localhost:6379/1
`))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "secret", cfg.FootballData.Token)
	require.Equal(t, 50, cfg.FootballData.RequestsPerMinute)
	require.Equal(t, []string{"PL", "BL1", "464"}, cfg.Sync.Competitions)
	require.Equal(t, time.Hour, cfg.Sync.Interval)
	require.Equal(t, "redis://localhost:6379/1", cfg.Redis.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("FOOTBALL_DATA_TOKEN", "from-env")
	t.Setenv("SYNC_COMPETITIONS", "PD,SA")

	cfg, err := config.Load(writeConfig(t, "footballData:\n  token: from-file\n"))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.FootballData.Token)
	require.Equal(t, []string{"PD", "SA"}, cfg.Sync.Competitions)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "development", cfg.Environment)
}
