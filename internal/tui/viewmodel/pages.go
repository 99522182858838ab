package viewmodel

import (
	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
)

// DashboardView aggregates the three independent dashboard fetches. Each
// field group is replaced by its own fetch only.
type DashboardView struct {
	Inventory  model.CoinInventory
	Bills      model.BillInventory
	StatusText string
	TotalValue string
	StatusErr  string
	CoinsErr   string
	BillsErr   string
	TotalBills int
	Loading    int
}

// ApplyStatus records the admin status fetch.
func (v *DashboardView) ApplyStatus(report *model.StatusReport, err error) {
	if err != nil {
		v.StatusText = ""
		v.StatusErr = MsgStatusFailed
		return
	}
	v.StatusText = report.Message
	v.StatusErr = ""
}

// ApplyOverview records the coin inventory fetch.
func (v *DashboardView) ApplyOverview(overview *model.MachineOverview, err error) {
	if err != nil {
		v.Inventory = model.CoinInventory{}
		v.TotalValue = ""
		v.CoinsErr = common.MessageOr(err, MsgOverviewFailed)
		return
	}
	v.Inventory = overview.CoinInventory
	v.TotalValue = overview.TotalValue
	v.CoinsErr = ""
}

// ApplyBills records the bill inventory fetch.
func (v *DashboardView) ApplyBills(report *model.BillsReport, err error) {
	if err != nil {
		v.Bills = model.BillInventory{}
		v.TotalBills = 0
		v.BillsErr = common.MessageOr(err, MsgBillsFailed)
		return
	}
	v.Bills = report.BillInventory
	v.TotalBills = report.TotalBillsReceived
	v.BillsErr = ""
}

// StatusTone classifies the dashboard status text for coloring.
func (v DashboardView) StatusTone() model.MachineStatus {
	switch {
	case v.StatusErr != "" || v.StatusText == "":
		return model.StatusUnknown
	case v.StatusText == model.OperationalMessage:
		return model.StatusOperational
	default:
		return model.StatusOutOfService
	}
}

// ExchangeView is the exchange page state.
type ExchangeView struct {
	Result     *model.ExchangeResult
	Form       ExchangeForm
	Error      string
	Submitting bool
}

// NewExchangeView returns the initial exchange state.
func NewExchangeView() ExchangeView {
	return ExchangeView{Form: NewExchangeForm()}
}

// Submit validates the form. On success it clears the previous outcome and
// returns the request to send; on failure it records the validation error
// and no request must be sent.
func (v *ExchangeView) Submit() (model.ExchangeRequest, bool) {
	v.Result = nil
	v.Error = ""

	req, err := v.Form.Request()
	if err != nil {
		v.Error = err.Error()
		return model.ExchangeRequest{}, false
	}
	v.Submitting = true
	return req, true
}

// ApplyResult records the exchange response.
func (v *ExchangeView) ApplyResult(result *model.ExchangeResult, err error) {
	v.Submitting = false
	if err != nil {
		v.Result = nil
		v.Error = common.MessageOr(err, MsgExchangeFailed)
		return
	}
	v.Result = result
	v.Error = ""
}

// InventoryView is the inventory page state.
type InventoryView struct {
	Inventory model.CoinInventory
	Message   string
	Error     string
	Form      InventoryForm
	Total     int
	Loading   bool
	Updating  bool
}

// NewInventoryView returns the initial inventory state.
func NewInventoryView() InventoryView {
	return InventoryView{Inventory: model.CoinInventory{}, Form: NewInventoryForm()}
}

// ApplyLoad records the inventory fetch. A failure resets the inventory.
func (v *InventoryView) ApplyLoad(snapshot *model.InventorySnapshot, err error) {
	v.Loading = false
	if err != nil {
		v.Inventory = model.CoinInventory{}
		v.Total = 0
		v.Message = ""
		v.Error = common.MessageOr(err, MsgInventoryFailed)
		return
	}
	v.Inventory = snapshot.Inventory
	v.Total = snapshot.Total
	v.Error = ""
}

// BeginUpdate validates the form before an add or remove.
func (v *InventoryView) BeginUpdate() (model.InventoryUpdate, bool) {
	v.Message = ""
	v.Error = ""
	update, err := v.Form.Update()
	if err != nil {
		v.Error = err.Error()
		return model.InventoryUpdate{}, false
	}
	v.Updating = true
	return update, true
}

// ApplyUpdate records an add or remove. On success the displayed inventory
// becomes the server's snapshot; on failure it is left as it was.
func (v *InventoryView) ApplyUpdate(result *model.InventoryUpdateResult, err error, fallback string) {
	v.Updating = false
	if err != nil {
		v.Message = ""
		v.Error = common.MessageOr(err, fallback)
		return
	}
	v.Inventory = result.Inventory
	v.Total = result.Inventory.TotalCents()
	v.Message = result.Message
	v.Error = ""
}

// ApplyReplenish records a replenish call.
func (v *InventoryView) ApplyReplenish(message string, err error) {
	v.Updating = false
	if err != nil {
		v.Message = ""
		v.Error = common.MessageOr(err, MsgReplenishFailed)
		return
	}
	v.Message = message
	v.Error = ""
}

// HistoryView is the history page state.
type HistoryView struct {
	Transactions []model.Transaction
	Summary      []model.TransactionSummary
	Error        string
	SummaryError string
	Form         HistoryFilterForm
	Applied      model.HistoryFilter
	Loading      bool
	ShowSummary  bool
}

// NewHistoryView returns the initial history state.
func NewHistoryView() HistoryView {
	return HistoryView{Transactions: []model.Transaction{}}
}

// BeginFilter records filter as the one being fetched.
func (v *HistoryView) BeginFilter(filter model.HistoryFilter) {
	v.Applied = filter
	v.Loading = true
	v.Error = ""
}

// ClearFilters resets the form and returns the empty filter to re-fetch with.
func (v *HistoryView) ClearFilters() model.HistoryFilter {
	v.Form = HistoryFilterForm{}
	v.BeginFilter(model.HistoryFilter{})
	return v.Applied
}

// ApplyTransactions records a history fetch. A failure empties the list.
func (v *HistoryView) ApplyTransactions(txs []model.Transaction, err error) {
	v.Loading = false
	if err != nil {
		v.Transactions = []model.Transaction{}
		v.Error = common.MessageOr(err, MsgHistoryFailed)
		return
	}
	v.Transactions = txs
	v.Error = ""
}

// ApplySummary records a summary fetch. Its failure is kept apart from
// the transaction list's.
func (v *HistoryView) ApplySummary(summary []model.TransactionSummary, err error) {
	if err != nil {
		v.Summary = nil
		v.SummaryError = common.MessageOr(err, MsgSummaryFailed)
		return
	}
	v.Summary = summary
	v.SummaryError = ""
}

// TotalExchanged returns the sum of the listed transaction amounts.
func (v HistoryView) TotalExchanged() int {
	total := 0
	for _, tx := range v.Transactions {
		total += tx.Amount
	}
	return total
}

// BillsView is the bills page state.
type BillsView struct {
	Report  *model.BillsReport
	Error   string
	Loading bool
}

// Apply records the bills fetch.
func (v *BillsView) Apply(report *model.BillsReport, err error) {
	v.Loading = false
	if err != nil {
		v.Report = nil
		v.Error = common.MessageOr(err, MsgBillsFailed)
		return
	}
	v.Report = report
	v.Error = ""
}

// StatusView is the status page state.
type StatusView struct {
	Report  *model.StatusReport
	Error   string
	Loading bool
}

// Apply records the admin status fetch.
func (v *StatusView) Apply(report *model.StatusReport, err error) {
	v.Loading = false
	if err != nil {
		v.Report = nil
		v.Error = MsgMachineUnhealthy
		return
	}
	v.Report = report
	v.Error = ""
}
