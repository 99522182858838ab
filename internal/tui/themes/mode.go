package themes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/service"
	"github.com/charmbracelet/lipgloss"
)

// Mode is the light/dark preference.
type Mode string

// Presentation modes.
const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// PreferenceKey is the preference under which the mode is persisted.
const PreferenceKey = "theme"

// ParseMode validates a stored or user-supplied mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLight, ModeDark:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownTheme, s)
	}
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Theme returns the palette for the mode.
func (m Mode) Theme() Theme {
	return GetTheme(string(m))
}

// SystemPreference reports the mode preferred by the environment.
type SystemPreference func() Mode

// TerminalPreference derives the mode from the terminal background color.
func TerminalPreference() Mode {
	if lipgloss.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

// Manager owns the process-wide presentation mode.
type Manager struct {
	store  service.PreferenceStore
	system SystemPreference
	apply  func(Mode)
	mode   Mode
	mu     sync.Mutex
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithSystemPreference replaces terminal background detection.
func WithSystemPreference(fn SystemPreference) ManagerOption {
	return func(m *Manager) {
		m.system = fn
	}
}

// WithApplyFunc replaces the function that switches the renderer's mode.
func WithApplyFunc(fn func(Mode)) ManagerOption {
	return func(m *Manager) {
		m.apply = fn
	}
}

// NewManager creates a manager persisting to store.
func NewManager(store service.PreferenceStore, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		system: TerminalPreference,
		apply: func(mode Mode) {
			lipgloss.SetHasDarkBackground(mode == ModeDark)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init applies the stored mode, or the system preference when none is
// stored. A corrupt stored value is treated as unset.
func (m *Manager) Init(ctx context.Context) (Mode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := m.store.Get(ctx, PreferenceKey)
	switch {
	case err == nil:
		mode, parseErr := ParseMode(stored)
		if parseErr == nil {
			m.setLocked(mode)
			return mode, nil
		}
		slog.Warn("Ignoring stored theme", "value", stored)
	case !errors.Is(err, common.ErrNotFound):
		return "", fmt.Errorf("failed to load theme preference: %w", err)
	}

	mode := m.system()
	m.setLocked(mode)
	return mode, nil
}

// Mode returns the active mode.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Theme returns the palette of the active mode.
func (m *Manager) Theme() Theme {
	return m.Mode().Theme()
}

// Toggle flips the mode, persists it and applies it.
func (m *Manager) Toggle(ctx context.Context) (Mode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.mode.Opposite()
	if m.mode == "" {
		next = m.system().Opposite()
	}
	if err := m.persistLocked(ctx, next); err != nil {
		return m.mode, err
	}
	m.setLocked(next)
	return next, nil
}

// Set persists and applies mode.
func (m *Manager) Set(ctx context.Context, mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.persistLocked(ctx, mode); err != nil {
		return err
	}
	m.setLocked(mode)
	return nil
}

// Override applies mode for this process without persisting it.
func (m *Manager) Override(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setLocked(mode)
}

func (m *Manager) persistLocked(ctx context.Context, mode Mode) error {
	if err := m.store.Set(ctx, PreferenceKey, string(mode)); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}

func (m *Manager) setLocked(mode Mode) {
	m.mode = mode
	m.apply(mode)
}
