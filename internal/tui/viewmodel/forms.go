package viewmodel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
)

// Form defaults.
const (
	DefaultExchangeAmount = "10"
	DefaultCoinValue      = "25"
	DefaultQuantity       = "1"
)

// ParsePositive parses a required whole number of at least 1.
func ParsePositive(field, s string, sentinel error) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", sentinel, field)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", sentinel, field)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must be at least 1", sentinel, field)
	}
	return n, nil
}

// ExchangeForm is the exchange page's input.
type ExchangeForm struct {
	Amount             string
	Strategy           model.Strategy
	AllowMultipleBills bool
}

// NewExchangeForm returns the form with its defaults.
func NewExchangeForm() ExchangeForm {
	return ExchangeForm{
		Amount:   DefaultExchangeAmount,
		Strategy: model.StrategyMinimal,
	}
}

// Request validates the form and builds the request.
func (f ExchangeForm) Request() (model.ExchangeRequest, error) {
	amount, err := ParsePositive("amount", f.Amount, common.ErrInvalidAmount)
	if err != nil {
		return model.ExchangeRequest{}, err
	}
	return model.ExchangeRequest{
		Amount:             amount,
		Minimal:            f.Strategy != model.StrategyMaximal,
		AllowMultipleBills: f.AllowMultipleBills,
	}, nil
}

// InventoryForm is the inventory page's input.
type InventoryForm struct {
	CoinValue string
	Quantity  string
}

// NewInventoryForm returns the form with its defaults.
func NewInventoryForm() InventoryForm {
	return InventoryForm{CoinValue: DefaultCoinValue, Quantity: DefaultQuantity}
}

// Update validates the form and builds the inventory update.
func (f InventoryForm) Update() (model.InventoryUpdate, error) {
	coin, err := ParsePositive("coin value", f.CoinValue, common.ErrInvalidAmount)
	if err != nil {
		return model.InventoryUpdate{}, err
	}
	qty, err := ParsePositive("quantity", f.Quantity, common.ErrInvalidQuantity)
	if err != nil {
		return model.InventoryUpdate{}, err
	}
	return model.InventoryUpdate{CoinValue: coin, Quantity: qty}, nil
}

// Accepted date layouts for history filters, interpreted in local time.
var filterDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseFilterDate parses a date entered in a history filter.
func ParseFilterDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range filterDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD or YYYY-MM-DDTHH:MM)", common.ErrInvalidDate, s)
}

// HistoryFilterForm holds the history filter inputs. Empty fields are not applied.
type HistoryFilterForm struct {
	StartDate string
	EndDate   string
	MinAmount string
	MaxAmount string
	// Strategy is "", "minimal" or "maximal".
	Strategy string
}

// IsEmpty reports whether every field is blank.
func (f HistoryFilterForm) IsEmpty() bool {
	return f == HistoryFilterForm{}
}

// Filter validates the form and builds the filter.
func (f HistoryFilterForm) Filter(loc *time.Location) (model.HistoryFilter, error) {
	var out model.HistoryFilter

	if s := strings.TrimSpace(f.StartDate); s != "" {
		t, err := ParseFilterDate(s, loc)
		if err != nil {
			return model.HistoryFilter{}, err
		}
		out.StartDate = &t
	}
	if s := strings.TrimSpace(f.EndDate); s != "" {
		t, err := ParseFilterDate(s, loc)
		if err != nil {
			return model.HistoryFilter{}, err
		}
		out.EndDate = &t
	}
	if out.StartDate != nil && out.EndDate != nil && out.EndDate.Before(*out.StartDate) {
		return model.HistoryFilter{}, fmt.Errorf("%w: end date is before start date", common.ErrInvalidDate)
	}

	if s := strings.TrimSpace(f.MinAmount); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return model.HistoryFilter{}, fmt.Errorf("%w: minimum amount must be a non-negative whole number", common.ErrInvalidAmount)
		}
		out.MinAmount = &n
	}
	if s := strings.TrimSpace(f.MaxAmount); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return model.HistoryFilter{}, fmt.Errorf("%w: maximum amount must be a non-negative whole number", common.ErrInvalidAmount)
		}
		out.MaxAmount = &n
	}
	if out.MinAmount != nil && out.MaxAmount != nil && *out.MaxAmount < *out.MinAmount {
		return model.HistoryFilter{}, fmt.Errorf("%w: maximum amount is below minimum amount", common.ErrInvalidAmount)
	}

	if f.Strategy != "" {
		s, ok := model.ParseStrategy(f.Strategy)
		if !ok {
			return model.HistoryFilter{}, fmt.Errorf("unknown strategy %q", f.Strategy)
		}
		minimal := s == model.StrategyMinimal
		out.Minimal = &minimal
	}

	return out, nil
}
