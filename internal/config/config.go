// Package config loads coinadmin settings from viper.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/spf13/viper"
)

// Credential sources.
const (
	CredentialSourceConfig = "config"
	CredentialSourceEnv    = "env"
)

// Config is the resolved application configuration.
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Logging LoggingConfig
	UI      UIConfig
	Prefs   PrefsConfig
	Status  StatusConfig
}

// ServerConfig locates the exchange backend.
type ServerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds the basic auth credentials sent to the backend.
type AuthConfig struct {
	// Source is "config" to use Username/Password, or "env" to read
	// COINADMIN_AUTH_USERNAME and COINADMIN_AUTH_PASSWORD on every request.
	Source   string
	Username string
	Password string
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	// Theme overrides the stored preference for this run when set.
	Theme string
}

// PrefsConfig locates the preference database.
type PrefsConfig struct {
	Path string
}

// StatusConfig controls the status indicator.
type StatusConfig struct {
	// PollInterval re-probes machine status; zero probes once.
	PollInterval time.Duration
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.timeout", 10*time.Second)
	v.SetDefault("auth.source", CredentialSourceConfig)
	v.SetDefault("status.poll_interval", 30*time.Second)
	v.SetDefault("prefs.path", "~/.local/share/coinadmin/prefs.db")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			BaseURL: strings.TrimRight(v.GetString("server.base_url"), "/"),
			Timeout: v.GetDuration("server.timeout"),
		},
		Auth: AuthConfig{
			Source:   v.GetString("auth.source"),
			Username: v.GetString("auth.username"),
			Password: v.GetString("auth.password"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		UI: UIConfig{
			Theme: v.GetString("ui.theme"),
		},
		Prefs: PrefsConfig{
			Path: ExpandPath(v.GetString("prefs.path")),
		},
		Status: StatusConfig{
			PollInterval: v.GetDuration("status.poll_interval"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing or malformed values.
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("%w: server.base_url", common.ErrMissingConfig)
	}
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server.base_url %q must be an http(s) URL", common.ErrInvalidConfig, c.Server.BaseURL)
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("%w: server.timeout must not be negative", common.ErrInvalidConfig)
	}
	switch c.Auth.Source {
	case CredentialSourceConfig, CredentialSourceEnv:
	default:
		return fmt.Errorf("%w: auth.source %q must be %q or %q", common.ErrInvalidConfig, c.Auth.Source, CredentialSourceConfig, CredentialSourceEnv)
	}
	if c.Status.PollInterval < 0 {
		return fmt.Errorf("%w: status.poll_interval must not be negative", common.ErrInvalidConfig)
	}
	if c.Prefs.Path == "" {
		return fmt.Errorf("%w: prefs.path", common.ErrMissingConfig)
	}
	switch c.UI.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("%w: ui.theme %q", common.ErrUnknownTheme, c.UI.Theme)
	}
	return nil
}
