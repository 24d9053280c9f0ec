package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	def := DefaultSettings()
	assert.Equal(t, def.Server, cfg.Server)
	assert.Equal(t, "retirement-audit", cfg.Auth.Issuer)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoadSettings_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := "[server]\n" +
		"addr = \":9090\"\n\n" +
		"[auth]\n" +
		"jwt_secret = \"from-file\"\n" +
		"token_ttl_hours = 2\n\n" +
		"[log]\n" +
		"level = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("RETIREMENT_AUDIT_AUTH_JWT_SECRET", "from-env")
	t.Setenv("RETIREMENT_AUDIT_IDENTITY_DB_PATH", "/tmp/users.db")

	cfg, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Server.ReadTimeoutSecs, "unset keys keep defaults")
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret, "env overrides the file")
	assert.Equal(t, 2, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "/tmp/users.db", cfg.Identity.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadSettings_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\naddr = "), 0o600))

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	cfg := DefaultSettings()
	cfg.Auth.JWTSecret = "s3cret"
	cfg.Log.Development = true

	require.NoError(t, SaveSettings(cfg, path))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSettings_Validate(t *testing.T) {
	cfg := DefaultSettings()
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingJWTSecret))

	cfg.Auth.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.Auth.TokenTTLHours = 0
	assert.Error(t, cfg.Validate())

	cfg.Auth.TokenTTLHours = 1
	cfg.Server.Addr = ""
	assert.Error(t, cfg.Validate())
}
