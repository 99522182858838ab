package pages

import (
	"context"
	"fmt"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/service"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

// Status shows the machine status reported by the backend.
type Status struct {
	api  service.ExchangeAPI
	view viewmodel.StatusView
	base
}

// NewStatus creates the status page.
func NewStatus(api service.ExchangeAPI, theme themes.Theme) *Status {
	return &Status{api: api, base: newBase(viewmodel.RouteStatus, theme)}
}

// Route implements Page.
func (p *Status) Route() viewmodel.Route { return viewmodel.RouteStatus }

// State returns the current view state.
func (p *Status) State() viewmodel.StatusView { return p.view }

// Mount implements Page.
func (p *Status) Mount(ctx context.Context) tea.Cmd {
	p.life.Mount(ctx)
	return p.load()
}

func (p *Status) load() tea.Cmd {
	p.view.Loading = true
	return Fetch(p.life, kindStatus, p.api.AdminStatus)
}

// Update implements Page.
func (p *Status) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return p.load()
		}
	case Result[*model.StatusReport]:
		if p.life.Accept(msg.Ticket) {
			p.view.Apply(msg.Value, msg.Err)
		}
	}
	return nil
}

// Capturing implements Page.
func (p *Status) Capturing() bool { return false }

// Busy implements Page.
func (p *Status) Busy() bool { return p.view.Loading }

// KeyBindings implements Page.
func (p *Status) KeyBindings() []viewmodel.KeyBinding {
	return []viewmodel.KeyBinding{{Key: "r", Description: "check again"}}
}

// View implements Page.
func (p *Status) View() string {
	t := p.theme
	out := t.Title.Render("Machine Status") + "\n"
	out += p.errorLine(p.view.Error)

	r := p.view.Report
	switch {
	case r != nil && r.Operational():
		out += t.StatusSuccess.Render("✅ "+r.Message) + "\n"
	case r != nil:
		out += t.StatusError.Render("❌ "+r.Message) + "\n"
	case p.view.Loading:
		out += t.StatusPending.Render("Checking...") + "\n"
	}
	if r != nil {
		out += t.Faint.Render(fmt.Sprintf("HTTP %d", r.HTTPStatus)) + "\n"
	}
	return out
}
