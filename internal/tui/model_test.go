package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	tuitest "github.com/Veraticus/coin-exchange-admin/internal/tui/testing"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/themes"
	"github.com/Veraticus/coin-exchange-admin/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAPI answers every call with a fixed healthy machine.
type stubAPI struct {
	calls map[string]int
	mu    sync.Mutex
}

func newStubAPI() *stubAPI {
	return &stubAPI{calls: map[string]int{}}
}

func (s *stubAPI) hit(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[name]++
}

func (s *stubAPI) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *stubAPI) Probe(context.Context) model.MachineStatus {
	s.hit("Probe")
	return model.StatusOperational
}

func (s *stubAPI) AdminStatus(context.Context) (*model.StatusReport, error) {
	s.hit("AdminStatus")
	return &model.StatusReport{Message: model.OperationalMessage, HTTPStatus: 200}, nil
}

func (s *stubAPI) Overview(context.Context) (*model.MachineOverview, error) {
	s.hit("Overview")
	return &model.MachineOverview{CoinInventory: model.CoinInventory{25: 4}, TotalValue: "$1.0"}, nil
}

func (s *stubAPI) Bills(context.Context) (*model.BillsReport, error) {
	s.hit("Bills")
	return &model.BillsReport{BillInventory: model.BillInventory{}}, nil
}

func (s *stubAPI) Inventory(context.Context) (*model.InventorySnapshot, error) {
	s.hit("Inventory")
	return &model.InventorySnapshot{Inventory: model.CoinInventory{25: 4}, Total: 100}, nil
}

func (s *stubAPI) AddCoins(_ context.Context, u model.InventoryUpdate) (*model.InventoryUpdateResult, error) {
	s.hit("AddCoins")
	return &model.InventoryUpdateResult{Inventory: model.CoinInventory{u.CoinValue: u.Quantity}}, nil
}

func (s *stubAPI) RemoveCoins(context.Context, model.InventoryUpdate) (*model.InventoryUpdateResult, error) {
	s.hit("RemoveCoins")
	return &model.InventoryUpdateResult{Inventory: model.CoinInventory{}}, nil
}

func (s *stubAPI) Replenish(context.Context) (string, error) {
	s.hit("Replenish")
	return "ok", nil
}

func (s *stubAPI) Exchange(context.Context, model.ExchangeRequest) (*model.ExchangeResult, error) {
	s.hit("Exchange")
	return &model.ExchangeResult{Change: model.CoinInventory{}}, nil
}

func (s *stubAPI) History(context.Context) ([]model.Transaction, error) {
	s.hit("History")
	return []model.Transaction{}, nil
}

func (s *stubAPI) FilterHistory(context.Context, model.HistoryFilter) ([]model.Transaction, error) {
	s.hit("FilterHistory")
	return []model.Transaction{}, nil
}

func (s *stubAPI) HistorySummary(context.Context) ([]model.TransactionSummary, error) {
	s.hit("HistorySummary")
	return []model.TransactionSummary{}, nil
}

type memoryPrefs struct {
	values map[string]string
	setErr error
}

func (p *memoryPrefs) Get(_ context.Context, key string) (string, error) {
	v, ok := p.values[key]
	if !ok {
		return "", common.ErrNotFound
	}
	return v, nil
}

func (p *memoryPrefs) Set(_ context.Context, key, value string) error {
	if p.setErr != nil {
		return p.setErr
	}
	p.values[key] = value
	return nil
}

func (p *memoryPrefs) Delete(_ context.Context, key string) error {
	delete(p.values, key)
	return nil
}

func newTestModel(t *testing.T, opts ...Option) (Model, *stubAPI, *memoryPrefs) {
	t.Helper()

	api := newStubAPI()
	prefs := &memoryPrefs{values: map[string]string{}}
	manager := themes.NewManager(prefs,
		themes.WithSystemPreference(func() themes.Mode { return themes.ModeDark }),
		themes.WithApplyFunc(func(themes.Mode) {}),
	)
	_, err := manager.Init(context.Background())
	require.NoError(t, err)

	cfg := defaultConfig()
	cfg.API = api
	cfg.Themes = manager
	cfg.PollInterval = 0
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(context.Background(), cfg), api, prefs
}

// press sends a key and runs the resulting commands, feeding their
// messages back into the model.
func press(t *testing.T, m Model, name string) Model {
	t.Helper()
	next, cmd := m.Update(tuitest.Key(name))
	m = next.(Model)
	return run(t, m, cmd)
}

func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range tuitest.Collect(cmd) {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_StartsOnConfiguredRoute(t *testing.T) {
	m, api, _ := newTestModel(t, WithStartRoute(viewmodel.RouteInventory))

	m = run(t, m, m.active().Mount(m.ctx))
	m = run(t, m, m.indicator.Start(m.ctx))

	assert.Equal(t, viewmodel.RouteInventory, m.Route())
	assert.Equal(t, 1, api.count("Inventory"))
	assert.Zero(t, api.count("Overview"))

	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "Machine operational")
	assert.Contains(t, view, "Coin Inventory")
	assert.True(t, tuitest.ContainsInOrder(view, "1 Dashboard", "2 Exchange", "3 Inventory", "4 History", "5 Bills", "6 Status"))
}

func TestModel_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want viewmodel.Route
	}{
		{name: "next", keys: []string{"]"}, want: viewmodel.RouteExchange},
		{name: "previous wraps", keys: []string{"["}, want: viewmodel.RouteStatus},
		{name: "jump", keys: []string{"4"}, want: viewmodel.RouteHistory},
		{name: "jump then next", keys: []string{"5", "]"}, want: viewmodel.RouteStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel(t)
			for _, k := range tt.keys {
				m = press(t, m, k)
			}
			assert.Equal(t, tt.want, m.Route())
		})
	}
}

func TestModel_LeavingPageDropsItsCompletions(t *testing.T) {
	m, _, _ := newTestModel(t)

	pending := tuitest.Collect(m.active().Mount(m.ctx))
	require.NotEmpty(t, pending)

	m = press(t, m, "6")
	for _, msg := range pending {
		next, _ := m.Update(msg)
		m = next.(Model)
	}

	dashboard, ok := m.pages[viewmodel.RouteDashboard].(interface {
		State() viewmodel.DashboardView
	})
	require.True(t, ok)
	assert.Empty(t, dashboard.State().StatusText)
	assert.Empty(t, dashboard.State().Inventory)
}

func TestModel_GlobalKeysIgnoredWhileTyping(t *testing.T) {
	m, _, _ := newTestModel(t, WithStartRoute(viewmodel.RouteExchange))

	next, _ := m.Update(tuitest.Key("tab"))
	m = next.(Model)
	require.True(t, m.active().Capturing())

	for _, k := range []string{"2", "]", "t", "q"} {
		next, cmd := m.Update(tuitest.Key(k))
		m = next.(Model)
		assert.False(t, m.quitting, "key %q", k)
		_ = cmd
	}
	assert.Equal(t, viewmodel.RouteExchange, m.Route())

	next, cmd := m.Update(tuitest.Key("ctrl+c"))
	m = next.(Model)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ThemeToggle(t *testing.T) {
	m, _, prefs := newTestModel(t)
	require.Equal(t, themes.Dark.Name, m.theme.Name)

	m = press(t, m, "t")
	assert.Equal(t, themes.Light.Name, m.theme.Name)
	assert.Equal(t, "light", prefs.values[themes.PreferenceKey])

	m = press(t, m, "t")
	assert.Equal(t, themes.Dark.Name, m.theme.Name)
	assert.Equal(t, "dark", prefs.values[themes.PreferenceKey])
}

func TestModel_ThemeToggleFailureKeepsTheme(t *testing.T) {
	m, _, prefs := newTestModel(t)
	prefs.setErr = assert.AnError

	m = press(t, m, "t")

	assert.Equal(t, themes.Dark.Name, m.theme.Name)
	assert.Contains(t, tuitest.Plain(m.View()), "Could not save theme preference.")
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(tuitest.Key("q"))
	m = next.(Model)

	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_RecheckProbesImmediately(t *testing.T) {
	m, api, _ := newTestModel(t)
	m = run(t, m, m.indicator.Start(m.ctx))
	require.Equal(t, 1, api.count("Probe"))

	m = press(t, m, "ctrl+r")

	assert.Equal(t, 2, api.count("Probe"))
	assert.Contains(t, tuitest.Plain(m.View()), "Machine operational")
}

func TestModel_RendersThroughResizeAndTyping(t *testing.T) {
	m, _, _ := newTestModel(t)
	r := tuitest.NewTestRenderer()

	var current tea.Model = m
	current, _ = r.Update(current, tuitest.WindowSize(120, 40))
	for _, msg := range tuitest.Type("]]") {
		current, _ = r.Update(current, msg)
	}

	shell := current.(Model)
	assert.Equal(t, 120, shell.width)
	assert.Equal(t, 40, shell.height)
	assert.Equal(t, viewmodel.RouteInventory, shell.Route())
	assert.Equal(t, 3, r.UpdateCount)
	assert.Len(t, r.Messages, 3)
	assert.Equal(t, r.Output, r.Render(current))
	assert.Contains(t, tuitest.Plain(r.Output), "Coin Exchange Admin")
}

func TestModel_HelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.NotContains(t, tuitest.Plain(m.View()), "force quit")

	m = press(t, m, "?")
	assert.Contains(t, tuitest.Plain(m.View()), "force quit")
}
