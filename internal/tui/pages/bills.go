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

// Bills lists the bills the machine has accepted.
type Bills struct {
	api  service.ExchangeAPI
	view viewmodel.BillsView
	base
}

// NewBills creates the bills page.
func NewBills(api service.ExchangeAPI, theme themes.Theme) *Bills {
	return &Bills{api: api, base: newBase(viewmodel.RouteBills, theme)}
}

// Route implements Page.
func (p *Bills) Route() viewmodel.Route { return viewmodel.RouteBills }

// State returns the current view state.
func (p *Bills) State() viewmodel.BillsView { return p.view }

// Mount implements Page.
func (p *Bills) Mount(ctx context.Context) tea.Cmd {
	p.life.Mount(ctx)
	return p.load()
}

func (p *Bills) load() tea.Cmd {
	p.view.Loading = true
	return Fetch(p.life, kindBills, p.api.Bills)
}

// Update implements Page.
func (p *Bills) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return p.load()
		}
	case Result[*model.BillsReport]:
		if p.life.Accept(msg.Ticket) {
			p.view.Apply(msg.Value, msg.Err)
		}
	}
	return nil
}

// Capturing implements Page.
func (p *Bills) Capturing() bool { return false }

// Busy implements Page.
func (p *Bills) Busy() bool { return p.view.Loading }

// KeyBindings implements Page.
func (p *Bills) KeyBindings() []viewmodel.KeyBinding {
	return []viewmodel.KeyBinding{{Key: "r", Description: "refresh"}}
}

// View implements Page.
func (p *Bills) View() string {
	t := p.theme
	out := t.Title.Render("Bill Inventory") + "\n"
	out += p.errorLine(p.view.Error)

	if p.view.Report == nil {
		if p.view.Loading {
			out += t.StatusPending.Render("Loading...") + "\n"
		}
		return out
	}

	r := p.view.Report
	out += t.Faint.Render("Total bills received: ") + t.Bold.Render(fmt.Sprintf("%d", r.TotalBillsReceived)) + "\n"
	out += t.Faint.Render("Face value: ") + t.Bold.Render(model.BillLabel(r.BillInventory.TotalDollars())) + "\n\n"
	out += denominationTable(t, "Bill", r.BillInventory, model.BillLabel)
	return out
}
