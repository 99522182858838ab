// Package viewmodel holds the pure page states of the TUI. Every state
// change made in response to a backend call goes through an Apply method,
// which replaces the affected snapshot wholesale and keeps results and
// errors mutually exclusive.
package viewmodel

import (
	"fmt"
	"strings"
)

// Route identifies a page.
type Route int

// Pages, in navigation order.
const (
	RouteDashboard Route = iota
	RouteExchange
	RouteInventory
	RouteHistory
	RouteBills
	RouteStatus
)

// Routes lists every page in navigation order.
var Routes = []Route{RouteDashboard, RouteExchange, RouteInventory, RouteHistory, RouteBills, RouteStatus}

// Path returns the route's path.
func (r Route) Path() string {
	switch r {
	case RouteDashboard:
		return "/"
	case RouteExchange:
		return "/exchange"
	case RouteInventory:
		return "/inventory"
	case RouteHistory:
		return "/history"
	case RouteBills:
		return "/bills"
	case RouteStatus:
		return "/status"
	default:
		return ""
	}
}

// Title returns the navigation label of the route.
func (r Route) Title() string {
	switch r {
	case RouteDashboard:
		return "Dashboard"
	case RouteExchange:
		return "Exchange"
	case RouteInventory:
		return "Inventory"
	case RouteHistory:
		return "History"
	case RouteBills:
		return "Bills"
	case RouteStatus:
		return "Status"
	default:
		return fmt.Sprintf("Route(%d)", int(r))
	}
}

// String implements fmt.Stringer.
func (r Route) String() string {
	return r.Title()
}

// ParseRoute resolves a path or page name to a route.
func ParseRoute(s string) (Route, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Routes {
		if s == r.Path() || s == strings.ToLower(r.Title()) || "/"+s == r.Path() {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", s)
}

// Next returns the route after r, wrapping around.
func (r Route) Next() Route {
	return Routes[(int(r)+1)%len(Routes)]
}

// Prev returns the route before r, wrapping around.
func (r Route) Prev() Route {
	return Routes[(int(r)+len(Routes)-1)%len(Routes)]
}

// KeyBinding represents a keyboard shortcut shown in the footer.
type KeyBinding struct {
	Key         string
	Description string
}

// User-facing failure messages.
const (
	MsgStatusFailed     = "Error fetching machine status."
	MsgOverviewFailed   = "Error loading coin inventory."
	MsgBillsFailed      = "Error loading bill information."
	MsgInventoryFailed  = "Failed to load inventory."
	MsgAddFailed        = "Failed to add coins."
	MsgRemoveFailed     = "Failed to remove coins."
	MsgReplenishFailed  = "Failed to replenish inventory."
	MsgExchangeFailed   = "Failed to connect to the exchange server."
	MsgHistoryFailed    = "Failed to load transaction history."
	MsgSummaryFailed    = "Failed to load history summary."
	MsgMachineUnhealthy = "Error querying machine status."
)
