package pages

import (
	"context"
	"errors"
	"sync"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
	tuitest "github.com/Veraticus/coin-exchange-admin/internal/tui/testing"
)

var errUnreachable = errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")

// fakeAPI is a scripted service.ExchangeAPI.
type fakeAPI struct {
	probe      model.MachineStatus
	statusErr  error
	status     *model.StatusReport
	overview   *model.MachineOverview
	overErr    error
	bills      *model.BillsReport
	billsErr   error
	inventory  *model.InventorySnapshot
	invErr     error
	update     *model.InventoryUpdateResult
	updateErr  error
	replenish  string
	exchange   *model.ExchangeResult
	exchErr    error
	history    []model.Transaction
	historyErr error
	summary    []model.TransactionSummary
	calls      map[string]int
	filters    []model.HistoryFilter
	updates    []model.InventoryUpdate
	requests   []model.ExchangeRequest
	mu         sync.Mutex
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}}
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) Probe(_ context.Context) model.MachineStatus {
	f.record("Probe")
	return f.probe
}

func (f *fakeAPI) AdminStatus(_ context.Context) (*model.StatusReport, error) {
	f.record("AdminStatus")
	return f.status, f.statusErr
}

func (f *fakeAPI) Overview(_ context.Context) (*model.MachineOverview, error) {
	f.record("Overview")
	return f.overview, f.overErr
}

func (f *fakeAPI) Bills(_ context.Context) (*model.BillsReport, error) {
	f.record("Bills")
	return f.bills, f.billsErr
}

func (f *fakeAPI) Inventory(_ context.Context) (*model.InventorySnapshot, error) {
	f.record("Inventory")
	return f.inventory, f.invErr
}

func (f *fakeAPI) AddCoins(_ context.Context, u model.InventoryUpdate) (*model.InventoryUpdateResult, error) {
	f.record("AddCoins")
	f.mu.Lock()
	f.updates = append(f.updates, u)
	f.mu.Unlock()
	return f.update, f.updateErr
}

func (f *fakeAPI) RemoveCoins(_ context.Context, u model.InventoryUpdate) (*model.InventoryUpdateResult, error) {
	f.record("RemoveCoins")
	f.mu.Lock()
	f.updates = append(f.updates, u)
	f.mu.Unlock()
	return f.update, f.updateErr
}

func (f *fakeAPI) Replenish(_ context.Context) (string, error) {
	f.record("Replenish")
	return f.replenish, nil
}

func (f *fakeAPI) Exchange(_ context.Context, req model.ExchangeRequest) (*model.ExchangeResult, error) {
	f.record("Exchange")
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.exchange, f.exchErr
}

func (f *fakeAPI) History(_ context.Context) ([]model.Transaction, error) {
	f.record("History")
	return f.history, f.historyErr
}

func (f *fakeAPI) FilterHistory(_ context.Context, filter model.HistoryFilter) ([]model.Transaction, error) {
	f.record("FilterHistory")
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	f.mu.Unlock()
	return f.history, f.historyErr
}

func (f *fakeAPI) HistorySummary(_ context.Context) ([]model.TransactionSummary, error) {
	f.record("HistorySummary")
	return f.summary, nil
}

// Shorthands for the shared Bubble Tea test helpers.
var (
	collect = tuitest.Collect
	deliver = tuitest.Deliver
	key     = tuitest.Key
)
