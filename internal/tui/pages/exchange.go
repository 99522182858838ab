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
)

const kindExchange = "exchange"

// Exchange form field indexes.
const (
	exchangeAmount = iota
	exchangeStrategy
	exchangeMultipleBills
)

// Exchange submits a bill amount for change.
type Exchange struct {
	api  service.ExchangeAPI
	form *Form
	view viewmodel.ExchangeView
	base
}

// NewExchange creates the exchange page.
func NewExchange(api service.ExchangeAPI, theme themes.Theme) *Exchange {
	return &Exchange{
		api: api,
		form: NewForm(
			Text("Amount ($)", "bill value", viewmodel.DefaultExchangeAmount),
			Choice("Strategy", string(model.StrategyMinimal), string(model.StrategyMaximal)),
			Choice("Multiple bills", "no", "yes"),
		),
		view: viewmodel.NewExchangeView(),
		base: newBase(viewmodel.RouteExchange, theme),
	}
}

// Route implements Page.
func (p *Exchange) Route() viewmodel.Route { return viewmodel.RouteExchange }

// State returns the current view state.
func (p *Exchange) State() viewmodel.ExchangeView { return p.view }

// Form exposes the input form.
func (p *Exchange) Form() *Form { return p.form }

// Mount implements Page. The exchange page has nothing to load.
func (p *Exchange) Mount(ctx context.Context) tea.Cmd {
	p.life.Mount(ctx)
	p.view.Submitting = false
	return nil
}

func (p *Exchange) submit() tea.Cmd {
	p.view.Form = viewmodel.ExchangeForm{
		Amount:             p.form.Value(exchangeAmount),
		Strategy:           model.Strategy(p.form.Value(exchangeStrategy)),
		AllowMultipleBills: p.form.Value(exchangeMultipleBills) == "yes",
	}
	req, ok := p.view.Submit()
	if !ok {
		return nil
	}
	return Fetch(p.life, kindExchange, func(ctx context.Context) (*model.ExchangeResult, error) {
		return p.api.Exchange(ctx, req)
	})
}

// Update implements Page.
func (p *Exchange) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if p.view.Submitting {
				return nil
			}
			return p.submit()
		}
		_, cmd := p.form.HandleKey(msg)
		return cmd

	case Result[*model.ExchangeResult]:
		if p.life.Accept(msg.Ticket) {
			p.view.ApplyResult(msg.Value, msg.Err)
		}
	}
	return nil
}

// Capturing implements Page.
func (p *Exchange) Capturing() bool { return p.form.Capturing() }

// Busy implements Page.
func (p *Exchange) Busy() bool { return p.view.Submitting }

// KeyBindings implements Page.
func (p *Exchange) KeyBindings() []viewmodel.KeyBinding {
	return []viewmodel.KeyBinding{
		{Key: "tab", Description: "next field"},
		{Key: "←/→", Description: "change option"},
		{Key: "enter", Description: "exchange"},
		{Key: "esc", Description: "leave form"},
	}
}

// View implements Page.
func (p *Exchange) View() string {
	t := p.theme
	var b strings.Builder
	b.WriteString(t.Title.Render("Exchange") + "\n")
	b.WriteString(p.form.View(t) + "\n")

	if p.view.Submitting {
		b.WriteString(t.StatusPending.Render("Exchanging...") + "\n")
	}
	b.WriteString(p.errorLine(p.view.Error))

	if r := p.view.Result; r != nil {
		b.WriteString(p.successLine(r.Message))
		b.WriteString("\n" + t.Bold.Render("Change") + "\n")
		b.WriteString(denominationTable(t, "Coin", r.Change, model.CoinLabel))
		b.WriteString(t.Faint.Render(fmt.Sprintf("%d coins, %s", r.Change.CoinCount(), model.FormatCents(r.Change.TotalCents()))) + "\n")
	}
	return b.String()
}
