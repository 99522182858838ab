package exchange

import "github.com/Veraticus/coin-exchange-admin/internal/service"

var _ service.ExchangeAPI = (*Client)(nil)
