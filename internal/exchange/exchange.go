package exchange

import (
	"context"
	"fmt"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
)

// Exchange asks the machine to change a bill amount into coins.
func (c *Client) Exchange(ctx context.Context, req model.ExchangeRequest) (*model.ExchangeResult, error) {
	if req.Amount < 1 {
		return nil, fmt.Errorf("%w: amount must be at least 1", common.ErrInvalidAmount)
	}

	var out model.ExchangeResult
	if err := c.post(ctx, "", req, &out); err != nil {
		return nil, fmt.Errorf("exchange failed: %w", err)
	}
	if err := validate("change", out.Change); err != nil {
		return nil, err
	}
	return &out, nil
}
