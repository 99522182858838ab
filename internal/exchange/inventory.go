package exchange

import (
	"context"
	"fmt"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
)

// Inventory returns the current coin inventory.
func (c *Client) Inventory(ctx context.Context) (*model.InventorySnapshot, error) {
	var out model.InventorySnapshot
	if err := c.get(ctx, "/inventory", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if err := validate("inventory", out.Inventory); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddCoins adds quantity coins of the given denomination and returns the
// backend's inventory after the update.
func (c *Client) AddCoins(ctx context.Context, update model.InventoryUpdate) (*model.InventoryUpdateResult, error) {
	return c.updateInventory(ctx, "/inventory/add", update)
}

// RemoveCoins removes quantity coins of the given denomination.
func (c *Client) RemoveCoins(ctx context.Context, update model.InventoryUpdate) (*model.InventoryUpdateResult, error) {
	return c.updateInventory(ctx, "/inventory/remove", update)
}

func (c *Client) updateInventory(ctx context.Context, path string, update model.InventoryUpdate) (*model.InventoryUpdateResult, error) {
	if update.CoinValue <= 0 {
		return nil, fmt.Errorf("%w: coin value must be positive", common.ErrInvalidAmount)
	}
	if update.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", common.ErrInvalidQuantity)
	}

	var out model.InventoryUpdateResult
	if err := c.post(ctx, path, update, &out); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	if err := validate("inventory", out.Inventory); err != nil {
		return nil, err
	}
	return &out, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

// Replenish resets the coin inventory to the backend's configured levels.
func (c *Client) Replenish(ctx context.Context) (string, error) {
	var out messageResponse
	if err := c.post(ctx, "/replenish", nil, &out); err != nil {
		return "", fmt.Errorf("failed to replenish inventory: %w", err)
	}
	return out.Message, nil
}
