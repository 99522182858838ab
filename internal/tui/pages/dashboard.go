package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/service"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	kindStatus   = "status"
	kindOverview = "overview"
	kindBills    = "bills"
)

// Dashboard shows machine status, coin inventory and bills side by side.
type Dashboard struct {
	api  service.ExchangeAPI
	view viewmodel.DashboardView
	base
}

// NewDashboard creates the dashboard page.
func NewDashboard(api service.ExchangeAPI, theme themes.Theme) *Dashboard {
	return &Dashboard{api: api, base: newBase(viewmodel.RouteDashboard, theme)}
}

// Route implements Page.
func (d *Dashboard) Route() viewmodel.Route { return viewmodel.RouteDashboard }

// State returns the current view state.
func (d *Dashboard) State() viewmodel.DashboardView { return d.view }

// Mount implements Page.
func (d *Dashboard) Mount(ctx context.Context) tea.Cmd {
	d.life.Mount(ctx)
	return d.refresh()
}

func (d *Dashboard) refresh() tea.Cmd {
	d.view.Loading = 3
	return tea.Batch(
		Fetch(d.life, kindStatus, d.api.AdminStatus),
		Fetch(d.life, kindOverview, d.api.Overview),
		Fetch(d.life, kindBills, d.api.Bills),
	)
}

// Update implements Page.
func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return d.refresh()
		}

	case Result[*model.StatusReport]:
		if d.life.Accept(msg.Ticket) {
			d.view.ApplyStatus(msg.Value, msg.Err)
			d.done()
		}

	case Result[*model.MachineOverview]:
		if d.life.Accept(msg.Ticket) {
			d.view.ApplyOverview(msg.Value, msg.Err)
			d.done()
		}

	case Result[*model.BillsReport]:
		if d.life.Accept(msg.Ticket) {
			d.view.ApplyBills(msg.Value, msg.Err)
			d.done()
		}
	}
	return nil
}

func (d *Dashboard) done() {
	if d.view.Loading > 0 {
		d.view.Loading--
	}
}

// Capturing implements Page.
func (d *Dashboard) Capturing() bool { return false }

// Busy implements Page.
func (d *Dashboard) Busy() bool { return d.view.Loading > 0 }

// KeyBindings implements Page.
func (d *Dashboard) KeyBindings() []viewmodel.KeyBinding {
	return []viewmodel.KeyBinding{{Key: "r", Description: "refresh"}}
}

// View implements Page.
func (d *Dashboard) View() string {
	v := d.view
	t := d.theme

	var status string
	switch {
	case v.StatusErr != "":
		status = t.StatusError.Render(v.StatusErr)
	case v.StatusText == "":
		status = t.StatusPending.Render("Loading...")
	default:
		status = statusStyle(t, v.StatusTone()).Render(v.StatusText)
	}

	var coins strings.Builder
	coins.WriteString(t.Bold.Render("Coin inventory") + "\n\n")
	coins.WriteString(d.errorLine(v.CoinsErr))
	coins.WriteString(denominationTable(t, "Coin", v.Inventory, model.CoinLabel))
	if v.TotalValue != "" {
		coins.WriteString("\n" + t.Faint.Render("Total value: ") + t.Bold.Render(v.TotalValue) + "\n")
	}

	var bills strings.Builder
	bills.WriteString(t.Bold.Render("Bills received") + "\n\n")
	bills.WriteString(d.errorLine(v.BillsErr))
	bills.WriteString(denominationTable(t, "Bill", v.Bills, model.BillLabel))
	bills.WriteString("\n" + t.Faint.Render("Total bills: ") + t.Bold.Render(fmt.Sprintf("%d", v.TotalBills)) + "\n")

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		t.RoundedBox.Render(coins.String()),
		"  ",
		t.RoundedBox.Render(bills.String()))

	return t.Title.Render("Dashboard") + "\n" +
		t.Faint.Render("Machine status: ") + status + "\n\n" +
		panels
}
