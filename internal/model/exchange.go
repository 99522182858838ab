package model

// Strategy selects how the backend computes change.
type Strategy string

// Change strategies.
const (
	StrategyMinimal Strategy = "minimal"
	StrategyMaximal Strategy = "maximal"
)

// ParseStrategy converts user input to a Strategy.
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case "minimal", "min":
		return StrategyMinimal, true
	case "maximal", "max":
		return StrategyMaximal, true
	default:
		return "", false
	}
}

// StrategyOf maps the backend's minimal flag to a Strategy.
func StrategyOf(minimal bool) Strategy {
	if minimal {
		return StrategyMinimal
	}
	return StrategyMaximal
}

// ExchangeRequest is the body of an exchange submission.
type ExchangeRequest struct {
	Amount             int  `json:"amount"`
	Minimal            bool `json:"minimal"`
	AllowMultipleBills bool `json:"allowMultipleBills"`
}

// ExchangeResult is the backend's answer to an exchange.
type ExchangeResult struct {
	Change  CoinInventory `json:"change"`
	Message string        `json:"message"`
}

// InventoryUpdate is the body of an inventory add or remove.
type InventoryUpdate struct {
	CoinValue int `json:"coinValue"`
	Quantity  int `json:"quantity"`
}

// InventorySnapshot is the coin inventory along with its value in cents.
type InventorySnapshot struct {
	Inventory CoinInventory `json:"inventory"`
	Total     int           `json:"total"`
}

// InventoryUpdateResult is returned after adding or removing coins.
type InventoryUpdateResult struct {
	Inventory CoinInventory `json:"inventory"`
	Message   string        `json:"message"`
}

// MachineOverview is the coin inventory with its formatted total value.
type MachineOverview struct {
	CoinInventory CoinInventory `json:"coinInventory"`
	TotalValue    string        `json:"totalValue"`
}

// BillsReport describes the bills accepted by the machine.
type BillsReport struct {
	BillInventory      BillInventory `json:"billInventory"`
	TotalBillsReceived int           `json:"totalBillsReceived"`
}
