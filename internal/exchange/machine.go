package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
)

// Probe checks machine availability. Any successful response means
// operational; every failure, whether network, authentication or a 4xx/5xx
// answer, means out of service. The cause is only logged.
func (c *Client) Probe(ctx context.Context) model.MachineStatus {
	req, err := c.newRequest(ctx, http.MethodGet, "/admin/status", nil, nil)
	if err != nil {
		c.logger.Debug("status probe failed", "error", err)
		return model.StatusOutOfService
	}

	status, _, err := c.do(req)
	if err != nil {
		c.logger.Debug("status probe failed", "error", err)
		return model.StatusOutOfService
	}
	if status < 200 || status >= 300 {
		c.logger.Debug("status probe failed", "status", status)
		return model.StatusOutOfService
	}
	return model.StatusOperational
}

// AdminStatus returns the backend's status text. Unlike other calls the
// body is decoded whatever the HTTP status, since the backend answers 503
// with a status message when the machine is out of coins.
func (c *Client) AdminStatus(ctx context.Context) (*model.StatusReport, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/admin/status", nil, nil)
	if err != nil {
		return nil, err
	}

	status, data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var report model.StatusReport
	if err := json.Unmarshal(data, &report); err != nil || report.Message == "" {
		if status < 200 || status >= 300 {
			return nil, newAPIError(status, data)
		}
		return nil, fmt.Errorf("%w: missing status field", common.ErrInvalidPayload)
	}
	report.HTTPStatus = status
	return &report, nil
}

// Overview returns the coin inventory and its formatted total value.
func (c *Client) Overview(ctx context.Context) (*model.MachineOverview, error) {
	var out model.MachineOverview
	if err := c.get(ctx, "/status", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get machine overview: %w", err)
	}
	if err := validate("coinInventory", out.CoinInventory); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bills returns the bill inventory.
func (c *Client) Bills(ctx context.Context) (*model.BillsReport, error) {
	var out model.BillsReport
	if err := c.get(ctx, "/bills", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get bills: %w", err)
	}
	if err := validate("billInventory", out.BillInventory); err != nil {
		return nil, err
	}
	if out.TotalBillsReceived < 0 {
		return nil, fmt.Errorf("%w: negative totalBillsReceived", common.ErrInvalidPayload)
	}
	return &out, nil
}
