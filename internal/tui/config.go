package tui

import (
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/service"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
)

// Config holds TUI configuration.
type Config struct {
	API          service.ExchangeAPI
	Themes       *themes.Manager
	Location     *time.Location
	Width        int
	Height       int
	PollInterval time.Duration
	StartRoute   viewmodel.Route
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Width:        80,
		Height:       24,
		PollInterval: 30 * time.Second,
		StartRoute:   viewmodel.RouteDashboard,
		Location:     time.Local,
	}
}

// WithAPI sets the exchange backend.
func WithAPI(api service.ExchangeAPI) Option {
	return func(c *Config) {
		c.API = api
	}
}

// WithThemeManager sets the light/dark mode manager. Its mode must already
// be initialized.
func WithThemeManager(m *themes.Manager) Option {
	return func(c *Config) {
		c.Themes = m
	}
}

// WithStartRoute sets the page shown first.
func WithStartRoute(route viewmodel.Route) Option {
	return func(c *Config) {
		c.StartRoute = route
	}
}

// WithPollInterval sets how often the status indicator re-probes. Zero
// probes only once.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		c.PollInterval = d
	}
}

// WithLocation sets the time zone history filter dates are entered in.
func WithLocation(loc *time.Location) Option {
	return func(c *Config) {
		c.Location = loc
	}
}
