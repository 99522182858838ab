// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/coin-exchange-admin/internal/model"
)

// ExchangeAPI is the contract of the exchange backend as used by the pages.
type ExchangeAPI interface {
	// Machine
	Probe(ctx context.Context) model.MachineStatus
	AdminStatus(ctx context.Context) (*model.StatusReport, error)
	Overview(ctx context.Context) (*model.MachineOverview, error)
	Bills(ctx context.Context) (*model.BillsReport, error)

	// Coins
	Inventory(ctx context.Context) (*model.InventorySnapshot, error)
	AddCoins(ctx context.Context, update model.InventoryUpdate) (*model.InventoryUpdateResult, error)
	RemoveCoins(ctx context.Context, update model.InventoryUpdate) (*model.InventoryUpdateResult, error)
	Replenish(ctx context.Context) (string, error)
	Exchange(ctx context.Context, req model.ExchangeRequest) (*model.ExchangeResult, error)

	// History
	History(ctx context.Context) ([]model.Transaction, error)
	FilterHistory(ctx context.Context, filter model.HistoryFilter) ([]model.Transaction, error)
	HistorySummary(ctx context.Context) ([]model.TransactionSummary, error)
}

// PreferenceStore persists small key/value settings.
type PreferenceStore interface {
	// Get returns common.ErrNotFound when key is unset.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
