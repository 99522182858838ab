package pages

import (
	"context"
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/service"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
)

const kindProbe = "probe"

type pollMsg struct {
	generation uint64
	tick       uint64
}

// Indicator is the machine availability badge in the shell header. It
// probes once when started and again every interval when interval is
// positive.
type Indicator struct {
	api      service.ExchangeAPI
	life     *Lifecycle
	theme    themes.Theme
	interval time.Duration
	status   model.MachineStatus
	tick     uint64
}

// NewIndicator creates a status indicator.
func NewIndicator(api service.ExchangeAPI, theme themes.Theme, interval time.Duration) *Indicator {
	return &Indicator{
		api:      api,
		life:     NewLifecycle("indicator"),
		theme:    theme,
		interval: interval,
	}
}

// Start begins probing under ctx.
func (i *Indicator) Start(ctx context.Context) tea.Cmd {
	i.life.Mount(ctx)
	return i.probe()
}

// Stop cancels any probe in flight and stops polling.
func (i *Indicator) Stop() {
	i.life.Unmount()
}

func (i *Indicator) probe() tea.Cmd {
	return Fetch(i.life, kindProbe, func(ctx context.Context) (model.MachineStatus, error) {
		return i.api.Probe(ctx), nil
	})
}

// Status returns the last probe outcome.
func (i *Indicator) Status() model.MachineStatus {
	return i.status
}

// SetTheme updates the palette.
func (i *Indicator) SetTheme(theme themes.Theme) {
	i.theme = theme
}

// Refresh probes immediately. The pending poll tick and any probe in
// flight are dropped; polling resumes from the new probe's result.
func (i *Indicator) Refresh() tea.Cmd {
	if !i.life.Mounted() {
		return nil
	}
	i.tick++
	return i.probe()
}

// Update handles probe results and poll ticks.
func (i *Indicator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Result[model.MachineStatus]:
		if !i.life.Accept(msg.Ticket) {
			return nil
		}
		i.status = msg.Value
		if i.interval <= 0 {
			return nil
		}
		i.tick++
		next := pollMsg{generation: msg.Ticket.Generation, tick: i.tick}
		return tea.Tick(i.interval, func(time.Time) tea.Msg {
			return next
		})

	case pollMsg:
		if i.life.Mounted() && msg.generation == i.life.generation && msg.tick == i.tick {
			return i.probe()
		}
	}
	return nil
}

// View renders the badge.
func (i *Indicator) View() string {
	switch i.status {
	case model.StatusOperational:
		return i.theme.StatusSuccess.Render("✅ Machine operational")
	case model.StatusOutOfService:
		return i.theme.StatusError.Render("❌ Machine out of service")
	default:
		return i.theme.StatusPending.Render("Checking machine...")
	}
}
