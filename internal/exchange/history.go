package exchange

import (
	"context"
	"fmt"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
)

// History returns every recorded transaction.
func (c *Client) History(ctx context.Context) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := c.get(ctx, "/history", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return checkTransactions(out)
}

// FilterHistory returns the transactions matching filter. An empty filter
// sends no query parameters.
func (c *Client) FilterHistory(ctx context.Context, filter model.HistoryFilter) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := c.get(ctx, "/history/filter", filter.Query(), &out); err != nil {
		return nil, fmt.Errorf("failed to filter history: %w", err)
	}
	return checkTransactions(out)
}

// HistorySummary returns the condensed history.
func (c *Client) HistorySummary(ctx context.Context) ([]model.TransactionSummary, error) {
	var out []model.TransactionSummary
	if err := c.get(ctx, "/history/summary", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get history summary: %w", err)
	}
	if out == nil {
		out = []model.TransactionSummary{}
	}
	return out, nil
}

func checkTransactions(txs []model.Transaction) ([]model.Transaction, error) {
	for _, tx := range txs {
		if err := model.ValidateDenominations(tx.Change); err != nil {
			return nil, fmt.Errorf("%w: transaction %d: %v", common.ErrInvalidPayload, tx.ID, err)
		}
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	return txs, nil
}
