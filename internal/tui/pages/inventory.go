package pages

import (
	"context"
	"strings"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/Veraticus/coin-exchange-admin/internal/service"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	kindInventory = "inventory"
	kindUpdate    = "update"
)

// Inventory form field indexes.
const (
	inventoryCoin = iota
	inventoryQuantity
)

type updateOp int

const (
	opAdd updateOp = iota
	opRemove
	opReplenish
)

// replenishResult distinguishes a replenish completion from other string results.
type replenishResult struct {
	message string
}

// Inventory manages the coin inventory.
type Inventory struct {
	api     service.ExchangeAPI
	form    *Form
	view    viewmodel.InventoryView
	pending updateOp
	base
}

// NewInventory creates the inventory page.
func NewInventory(api service.ExchangeAPI, theme themes.Theme) *Inventory {
	return &Inventory{
		api: api,
		form: NewForm(
			Text("Coin value (¢)", "e.g. 25", viewmodel.DefaultCoinValue),
			Text("Quantity", "e.g. 10", viewmodel.DefaultQuantity),
		),
		view: viewmodel.NewInventoryView(),
		base: newBase(viewmodel.RouteInventory, theme),
	}
}

// Route implements Page.
func (p *Inventory) Route() viewmodel.Route { return viewmodel.RouteInventory }

// State returns the current view state.
func (p *Inventory) State() viewmodel.InventoryView { return p.view }

// Form exposes the input form.
func (p *Inventory) Form() *Form { return p.form }

// Mount implements Page.
func (p *Inventory) Mount(ctx context.Context) tea.Cmd {
	p.life.Mount(ctx)
	p.view.Updating = false
	return p.load()
}

func (p *Inventory) load() tea.Cmd {
	p.view.Loading = true
	return Fetch(p.life, kindInventory, p.api.Inventory)
}

func (p *Inventory) update(op updateOp) tea.Cmd {
	if p.view.Updating {
		return nil
	}
	p.view.Form = viewmodel.InventoryForm{
		CoinValue: p.form.Value(inventoryCoin),
		Quantity:  p.form.Value(inventoryQuantity),
	}
	update, ok := p.view.BeginUpdate()
	if !ok {
		return nil
	}
	p.pending = op
	p.supersedeLoad()

	call := p.api.AddCoins
	if op == opRemove {
		call = p.api.RemoveCoins
	}
	return Fetch(p.life, kindUpdate, func(ctx context.Context) (*model.InventoryUpdateResult, error) {
		return call(ctx, update)
	})
}

func (p *Inventory) replenish() tea.Cmd {
	if p.view.Updating {
		return nil
	}
	p.view.Updating = true
	p.view.Message = ""
	p.view.Error = ""
	p.pending = opReplenish
	p.supersedeLoad()
	return Fetch(p.life, kindUpdate, func(ctx context.Context) (replenishResult, error) {
		msg, err := p.api.Replenish(ctx)
		return replenishResult{message: msg}, err
	})
}

// supersedeLoad drops an in-flight load so it cannot overwrite the
// snapshot an update returns.
func (p *Inventory) supersedeLoad() {
	p.life.Supersede(kindInventory)
	p.view.Loading = false
}

// Update implements Page.
func (p *Inventory) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)

	case Result[*model.InventorySnapshot]:
		if p.life.Accept(msg.Ticket) {
			p.view.ApplyLoad(msg.Value, msg.Err)
		}

	case Result[*model.InventoryUpdateResult]:
		if p.life.Accept(msg.Ticket) {
			fallback := viewmodel.MsgAddFailed
			if p.pending == opRemove {
				fallback = viewmodel.MsgRemoveFailed
			}
			p.view.ApplyUpdate(msg.Value, msg.Err, fallback)
		}

	case Result[replenishResult]:
		if p.life.Accept(msg.Ticket) {
			p.view.ApplyReplenish(msg.Value.message, msg.Err)
			if msg.Err == nil {
				return p.load()
			}
		}
	}
	return nil
}

func (p *Inventory) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		return p.update(opAdd)
	}
	if handled, cmd := p.form.HandleKey(msg); handled {
		return cmd
	}
	if p.form.Capturing() {
		return nil
	}

	switch msg.String() {
	case "a":
		return p.update(opAdd)
	case "x":
		return p.update(opRemove)
	case "p":
		return p.replenish()
	case "r":
		return p.load()
	}
	return nil
}

// Capturing implements Page.
func (p *Inventory) Capturing() bool { return p.form.Capturing() }

// Busy implements Page.
func (p *Inventory) Busy() bool { return p.view.Loading || p.view.Updating }

// KeyBindings implements Page.
func (p *Inventory) KeyBindings() []viewmodel.KeyBinding {
	return []viewmodel.KeyBinding{
		{Key: "tab", Description: "edit"},
		{Key: "enter/a", Description: "add coins"},
		{Key: "x", Description: "remove coins"},
		{Key: "p", Description: "replenish"},
		{Key: "r", Description: "refresh"},
	}
}

// View implements Page.
func (p *Inventory) View() string {
	t := p.theme
	v := p.view

	var b strings.Builder
	b.WriteString(t.Title.Render("Coin Inventory") + "\n")
	b.WriteString(p.errorLine(v.Error))
	b.WriteString(p.successLine(v.Message))
	if v.Loading && len(v.Inventory) == 0 {
		b.WriteString(t.StatusPending.Render("Loading...") + "\n")
	} else {
		b.WriteString(denominationTable(t, "Coin", v.Inventory, model.CoinLabel))
		b.WriteString(t.Faint.Render("Total: ") + t.Bold.Render(model.FormatCents(v.Total)) + "\n")
	}

	b.WriteString("\n" + t.Bold.Render("Add or remove coins") + "\n")
	b.WriteString(p.form.View(t))
	if v.Updating {
		b.WriteString(t.StatusPending.Render("Updating...") + "\n")
	}
	return b.String()
}
