package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/service"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	kindHistory = "history"
	kindSummary = "summary"
)

// History filter field indexes.
const (
	historyStart = iota
	historyEnd
	historyMin
	historyMax
	historyStrategy
)

const strategyAny = "any"

// History lists past exchanges with optional filters.
type History struct {
	api  service.ExchangeAPI
	form *Form
	loc  *time.Location
	view viewmodel.HistoryView
	base
}

// NewHistory creates the history page. Filter dates are read in loc.
func NewHistory(api service.ExchangeAPI, theme themes.Theme, loc *time.Location) *History {
	if loc == nil {
		loc = time.Local
	}
	return &History{
		api: api,
		loc: loc,
		form: NewForm(
			Text("Start date", "YYYY-MM-DD[THH:MM]", ""),
			Text("End date", "YYYY-MM-DD[THH:MM]", ""),
			Text("Min amount", "", ""),
			Text("Max amount", "", ""),
			Choice("Strategy", strategyAny, string(model.StrategyMinimal), string(model.StrategyMaximal)),
		),
		view: viewmodel.NewHistoryView(),
		base: newBase(viewmodel.RouteHistory, theme),
	}
}

// Route implements Page.
func (p *History) Route() viewmodel.Route { return viewmodel.RouteHistory }

// State returns the current view state.
func (p *History) State() viewmodel.HistoryView { return p.view }

// Form exposes the filter form.
func (p *History) Form() *Form { return p.form }

// Mount implements Page. The filters of a previous visit are kept.
func (p *History) Mount(ctx context.Context) tea.Cmd {
	p.life.Mount(ctx)
	p.view.BeginFilter(p.view.Applied)
	return p.fetch(p.view.Applied)
}

func (p *History) fetch(filter model.HistoryFilter) tea.Cmd {
	cmds := []tea.Cmd{
		Fetch(p.life, kindHistory, func(ctx context.Context) ([]model.Transaction, error) {
			return p.api.FilterHistory(ctx, filter)
		}),
	}
	if p.view.ShowSummary {
		cmds = append(cmds, Fetch(p.life, kindSummary, p.api.HistorySummary))
	}
	return tea.Batch(cmds...)
}

func (p *History) applyFilters() tea.Cmd {
	strategy := p.form.Value(historyStrategy)
	if strategy == strategyAny {
		strategy = ""
	}
	p.view.Form = viewmodel.HistoryFilterForm{
		StartDate: p.form.Value(historyStart),
		EndDate:   p.form.Value(historyEnd),
		MinAmount: p.form.Value(historyMin),
		MaxAmount: p.form.Value(historyMax),
		Strategy:  strategy,
	}

	filter, err := p.view.Form.Filter(p.loc)
	if err != nil {
		p.view.Error = err.Error()
		return nil
	}
	p.view.BeginFilter(filter)
	return p.fetch(filter)
}

func (p *History) clearFilters() tea.Cmd {
	p.form.Reset()
	return p.fetch(p.view.ClearFilters())
}

// Update implements Page.
func (p *History) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)

	case Result[[]model.Transaction]:
		if p.life.Accept(msg.Ticket) {
			p.view.ApplyTransactions(msg.Value, msg.Err)
		}

	case Result[[]model.TransactionSummary]:
		if p.life.Accept(msg.Ticket) {
			p.view.ApplySummary(msg.Value, msg.Err)
		}
	}
	return nil
}

func (p *History) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		return p.applyFilters()
	}
	if handled, cmd := p.form.HandleKey(msg); handled {
		return cmd
	}
	if p.form.Capturing() {
		return nil
	}

	switch msg.String() {
	case "c":
		return p.clearFilters()
	case "s":
		p.view.ShowSummary = !p.view.ShowSummary
		if p.view.ShowSummary {
			return Fetch(p.life, kindSummary, p.api.HistorySummary)
		}
	case "r":
		p.view.BeginFilter(p.view.Applied)
		return p.fetch(p.view.Applied)
	}
	return nil
}

// Capturing implements Page.
func (p *History) Capturing() bool { return p.form.Capturing() }

// Busy implements Page.
func (p *History) Busy() bool { return p.view.Loading }

// KeyBindings implements Page.
func (p *History) KeyBindings() []viewmodel.KeyBinding {
	return []viewmodel.KeyBinding{
		{Key: "tab", Description: "edit filters"},
		{Key: "enter", Description: "apply"},
		{Key: "c", Description: "clear"},
		{Key: "s", Description: "summary"},
		{Key: "r", Description: "refresh"},
	}
}

// View implements Page.
func (p *History) View() string {
	t := p.theme
	v := p.view

	var b strings.Builder
	b.WriteString(t.Title.Render("Transaction History") + "\n")
	b.WriteString(p.form.View(t) + "\n")
	b.WriteString(p.errorLine(v.Error))

	if v.Loading && len(v.Transactions) == 0 {
		b.WriteString(t.StatusPending.Render("Loading...") + "\n")
	} else if len(v.Transactions) == 0 {
		b.WriteString(t.Faint.Render("No transactions found.") + "\n")
	} else {
		b.WriteString(p.transactionsTable())
		b.WriteString(t.Faint.Render(fmt.Sprintf("%d transactions, $%d exchanged", len(v.Transactions), v.TotalExchanged())) + "\n")
	}

	if v.ShowSummary {
		b.WriteString("\n" + t.Bold.Render("Summary") + "\n")
		b.WriteString(p.errorLine(v.SummaryError))
		b.WriteString(p.summaryTable())
	}
	return b.String()
}

func (p *History) transactionsTable() string {
	t := p.theme
	var b strings.Builder
	b.WriteString(t.TableHeader.Render(fmt.Sprintf("%-6s %-19s %7s  %-8s  %s", "ID", "Date", "Amount", "Strategy", "Change")) + "\n")
	for _, tx := range p.view.Transactions {
		date := "-"
		if !tx.TransactionDate.IsZero() {
			date = tx.TransactionDate.Format("2006-01-02 15:04:05")
		}
		b.WriteString(t.Normal.Render(fmt.Sprintf("%-6d %-19s %7s  %-8s  %s",
			tx.ID, date, model.BillLabel(tx.Amount), tx.Strategy(), model.Breakdown(tx.Change))) + "\n")
	}
	return b.String()
}

func (p *History) summaryTable() string {
	t := p.theme
	if len(p.view.Summary) == 0 {
		return t.Faint.Render("No data.") + "\n"
	}
	var b strings.Builder
	b.WriteString(t.TableHeader.Render(fmt.Sprintf("%7s  %-8s  %6s", "Amount", "Strategy", "Coins")) + "\n")
	for _, s := range p.view.Summary {
		b.WriteString(t.Normal.Render(fmt.Sprintf("%7s  %-8s  %6d", model.BillLabel(s.Amount), model.StrategyOf(s.Minimal), s.TotalCoins)) + "\n")
	}
	return b.String()
}
