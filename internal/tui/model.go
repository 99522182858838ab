package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/coin-exchange-admin/internal/tui/pages"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the shell: it routes between pages and draws the shared frame.
type Model struct {
	ctx       context.Context
	themes    *themes.Manager
	pages     map[viewmodel.Route]pages.Page
	indicator *pages.Indicator
	theme     themes.Theme
	lastError string
	keymap    KeyMap
	help      help.Model
	spinner   spinner.Model
	width     int
	height    int
	route     viewmodel.Route
	quitting  bool
}

// newModel creates the shell. ctx bounds every request the pages issue.
func newModel(ctx context.Context, cfg Config) Model {
	theme := themes.Dark
	if cfg.Themes != nil {
		theme = cfg.Themes.Theme()
	}

	all := []pages.Page{
		pages.NewDashboard(cfg.API, theme),
		pages.NewExchange(cfg.API, theme),
		pages.NewInventory(cfg.API, theme),
		pages.NewHistory(cfg.API, theme, cfg.Location),
		pages.NewBills(cfg.API, theme),
		pages.NewStatus(cfg.API, theme),
	}
	byRoute := make(map[viewmodel.Route]pages.Page, len(all))
	for _, p := range all {
		p.SetSize(cfg.Width, cfg.Height)
		byRoute[p.Route()] = p
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.StatusPending

	return Model{
		ctx:       ctx,
		themes:    cfg.Themes,
		pages:     byRoute,
		indicator: pages.NewIndicator(cfg.API, theme, cfg.PollInterval),
		theme:     theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		spinner:   s,
		width:     cfg.Width,
		height:    cfg.Height,
		route:     cfg.StartRoute,
	}
}

// Init starts the status indicator and mounts the first page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.indicator.Start(m.ctx),
		m.active().Mount(m.ctx),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, p := range m.pages {
			p.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case themeToggledMsg:
		if msg.err != nil {
			slog.Warn("Failed to toggle theme", "error", msg.err)
			m.lastError = "Could not save theme preference."
			return m, nil
		}
		m.applyTheme(msg.mode.Theme())
		return m, nil
	}

	// Results are broadcast; each page only accepts its own.
	cmds := []tea.Cmd{m.indicator.Update(msg)}
	for _, route := range viewmodel.Routes {
		cmds = append(cmds, m.pages[route].Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderFrame()
}

// Route returns the page on screen.
func (m Model) Route() viewmodel.Route {
	return m.route
}

func (m Model) active() pages.Page {
	return m.pages[m.route]
}

// handleKey applies global shortcuts unless the active page is taking text
// input, then hands the key to the active page.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m.quit()
	}
	if key.Matches(msg, m.keymap.Recheck) {
		return m.indicator.Refresh()
	}

	if !m.active().Capturing() {
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m.quit()
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return nil
		case key.Matches(msg, m.keymap.NextPage):
			return m.navigate(m.route.Next())
		case key.Matches(msg, m.keymap.PrevPage):
			return m.navigate(m.route.Prev())
		case key.Matches(msg, m.keymap.Jump):
			return m.navigate(viewmodel.Routes[int(msg.String()[0]-'1')])
		case key.Matches(msg, m.keymap.ToggleTheme):
			return m.toggleTheme()
		}
	}

	return m.active().Update(msg)
}

// navigate leaves the current page and mounts route.
func (m *Model) navigate(route viewmodel.Route) tea.Cmd {
	if route == m.route {
		return nil
	}
	slog.Debug("Navigating", "from", m.route.Path(), "to", route.Path())
	m.active().Unmount()
	m.route = route
	m.lastError = ""
	return m.active().Mount(m.ctx)
}

func (m *Model) toggleTheme() tea.Cmd {
	if m.themes == nil {
		return nil
	}
	manager := m.themes
	ctx := m.ctx
	return func() tea.Msg {
		mode, err := manager.Toggle(ctx)
		return themeToggledMsg{mode: mode, err: err}
	}
}

func (m *Model) applyTheme(theme themes.Theme) {
	m.theme = theme
	m.lastError = ""
	m.spinner.Style = theme.StatusPending
	m.indicator.SetTheme(theme)
	for _, p := range m.pages {
		p.SetTheme(theme)
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.shutdown()
	return tea.Quit
}

// shutdown cancels everything in flight.
func (m *Model) shutdown() {
	m.active().Unmount()
	m.indicator.Stop()
}
