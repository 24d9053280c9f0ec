package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// ErrMissingJWTSecret is returned when a component that issues sessions has no signing secret
var ErrMissingJWTSecret = errors.New("jwt secret is not configured")

// Settings holds process configuration for the CLI and API server.
// Values come from defaults, then the TOML settings file, then RETIREMENT_AUDIT_* env vars.
type Settings struct {
	Server   ServerSettings   `toml:"server" envPrefix:"SERVER_"`
	Auth     AuthSettings     `toml:"auth" envPrefix:"AUTH_"`
	Identity IdentitySettings `toml:"identity" envPrefix:"IDENTITY_"`
	Log      LogSettings      `toml:"log" envPrefix:"LOG_"`
}

// ServerSettings configures the HTTP API
type ServerSettings struct {
	Addr            string `toml:"addr" env:"ADDR"`
	ReadTimeoutSecs int    `toml:"read_timeout_secs" env:"READ_TIMEOUT_SECS"`
	MaxBodyBytes    int    `toml:"max_body_bytes" env:"MAX_BODY_BYTES"`
}

// AuthSettings configures session tokens
type AuthSettings struct {
	JWTSecret     string `toml:"jwt_secret,omitempty" env:"JWT_SECRET"`
	Issuer        string `toml:"issuer" env:"ISSUER"`
	TokenTTLHours int    `toml:"token_ttl_hours" env:"TOKEN_TTL_HOURS"`
}

// IdentitySettings configures the user directory
type IdentitySettings struct {
	DBPath string `toml:"db_path" env:"DB_PATH"`
}

// LogSettings configures process logging
type LogSettings struct {
	Level       string `toml:"level" env:"LEVEL"`
	Development bool   `toml:"development" env:"DEVELOPMENT"`
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Addr:            ":8080",
			ReadTimeoutSecs: 10,
			MaxBodyBytes:    1 << 20,
		},
		Auth: AuthSettings{
			Issuer:        "retirement-audit",
			TokenTTLHours: 24,
		},
		Identity: IdentitySettings{
			DBPath: filepath.Join(SettingsDir(), "users.db"),
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// SettingsDir returns the XDG-compliant config directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "retirement-audit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "retirement-audit")
}

// SettingsPath returns the default settings file path.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "settings.toml")
}

// LoadSettings reads the settings file at path (the default path when empty), returning
// defaults if it doesn't exist, and applies environment overrides.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	if path == "" {
		path = SettingsPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing settings: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "RETIREMENT_AUDIT_"}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SaveSettings writes the settings to path.
func SaveSettings(cfg Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// TokenTTL returns the session lifetime.
func (a AuthSettings) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// Validate checks the settings a server needs to issue sessions.
func (s Settings) Validate() error {
	if s.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: set auth.jwt_secret or RETIREMENT_AUDIT_AUTH_JWT_SECRET", ErrMissingJWTSecret)
	}
	if s.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("auth.token_ttl_hours must be positive")
	}
	if s.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
