package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "open-hire.db", cfg.DatabasePath)
	require.Equal(t, 240*time.Hour, cfg.TokenDuration)
	require.NotEmpty(t, cfg.CORSOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("OPENHIRE_ADDR", ":9999")
	t.Setenv("OPENHIRE_DATABASE_PATH", "/tmp/env.db")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/env.db", cfg.DatabasePath)
}

func TestLoad_YamlOverridesEnv(t *testing.T) {
	t.Setenv("OPENHIRE_ADDR", ":9999")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "addr: \":7777\"\njwt_secret: file-secret\ntoken_duration: 1h\ncors_origins:\n  - https://open-hire.example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":7777", cfg.Addr)
	require.Equal(t, "file-secret", cfg.JWTSecret)
	require.Equal(t, time.Hour, cfg.TokenDuration)
	require.Equal(t, []string{"https://open-hire.example.com"}, cfg.CORSOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
