package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/config"
	tuitest "github.com/Veraticus/coin-exchange-admin/internal/tui/testing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend is a scripted exchange server recording the requests it receives.
type backend struct {
	routes   map[string]http.HandlerFunc
	requests []*http.Request
	bodies   []string
	mu       sync.Mutex
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()
	b := &backend{routes: map[string]http.HandlerFunc{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		_, _ = body.ReadFrom(r.Body)

		b.mu.Lock()
		b.requests = append(b.requests, r)
		b.bodies = append(b.bodies, body.String())
		h, ok := b.routes[r.Method+" "+r.URL.Path]
		b.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	viper.Reset()
	config.SetDefaults(viper.GetViper())
	viper.Set("server.base_url", srv.URL)
	viper.Set("prefs.path", filepath.Join(t.TempDir(), "prefs.db"))
	t.Cleanup(viper.Reset)

	return b, srv
}

func (b *backend) handle(method, path string, status int, body any) {
	b.routes[method+" "+path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func (b *backend) paths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.requests))
	for _, r := range b.requests {
		out = append(out, r.Method+" "+r.URL.Path)
	}
	return out
}

func (b *backend) lastQuery() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[len(b.requests)-1].URL.Query()
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return tuitest.StripANSI(out.String()), err
}

func TestExchangeCmd(t *testing.T) {
	b, _ := newBackend(t)
	b.handle(http.MethodPost, "/api/exchange", http.StatusOK, map[string]any{
		"message": "Exchange completed",
		"change":  map[string]int{"25": 4},
	})

	out, err := execute(t, exchangeCmd(), "", "--amount", "1", "--maximal")
	require.NoError(t, err)

	assert.Contains(t, out, "Exchange completed")
	assert.Contains(t, out, "4 coins, $1.00")
	assert.Equal(t, []string{"POST /api/exchange"}, b.paths())
	assert.JSONEq(t, `{"amount":1,"minimal":false,"allowMultipleBills":false}`, b.bodies[0])
}

func TestExchangeCmd_InvalidAmountSendsNothing(t *testing.T) {
	for _, amount := range []string{"abc", "0", ""} {
		t.Run(amount, func(t *testing.T) {
			b, _ := newBackend(t)

			_, err := execute(t, exchangeCmd(), "", "--amount", amount)

			var userErr *common.UserError
			require.ErrorAs(t, err, &userErr)
			assert.ErrorIs(t, err, common.ErrInvalidAmount)
			assert.Empty(t, b.paths())
		})
	}
}

func TestExchangeCmd_ServerErrorShownVerbatim(t *testing.T) {
	b, _ := newBackend(t)
	b.handle(http.MethodPost, "/api/exchange", http.StatusBadRequest, map[string]string{"error": "Insufficient coins for exchange"})

	_, err := execute(t, exchangeCmd(), "", "--amount", "50")

	require.Error(t, err)
	assert.Equal(t, "Insufficient coins for exchange", err.Error())
}

func TestExchangeCmd_RejectedCredentials(t *testing.T) {
	b, _ := newBackend(t)
	b.routes["POST /api/exchange"] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}

	_, err := execute(t, exchangeCmd(), "", "--amount", "5")

	require.Error(t, err)
	assert.Equal(t, msgUnauthorized, err.Error())
}

func TestStatusCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		status int
		want   []string
	}{
		{name: "operational", status: http.StatusOK, want: []string{"Machine operational", "HTTP 200"}},
		{name: "out of coins", status: http.StatusServiceUnavailable, want: []string{"Machine out of coins", "HTTP 503"}},
		{name: "probe operational", args: []string{"--probe"}, status: http.StatusOK, want: []string{"Machine operational"}},
		{name: "probe out of coins", args: []string{"--probe"}, status: http.StatusServiceUnavailable, want: []string{"Machine out of service"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newBackend(t)
			text := "Machine operational"
			if tt.status != http.StatusOK {
				text = "Machine out of coins"
			}
			b.handle(http.MethodGet, "/api/exchange/admin/status", tt.status, map[string]string{"status": text})

			out, err := execute(t, statusCmd(), "", tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestDashboardCmd_SectionsFailIndependently(t *testing.T) {
	b, _ := newBackend(t)
	b.handle(http.MethodGet, "/api/exchange/admin/status", http.StatusOK, map[string]string{"status": "Machine operational"})
	b.handle(http.MethodGet, "/api/exchange/status", http.StatusInternalServerError, map[string]string{})
	b.handle(http.MethodGet, "/api/exchange/bills", http.StatusOK, map[string]any{
		"totalBillsReceived": 3,
		"billInventory":      map[string]int{"1": 2, "5": 1},
	})

	out, err := execute(t, dashboardCmd(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "Machine operational")
	assert.Contains(t, out, "Error loading coin inventory.")
	assert.Contains(t, out, "Total bills: 3")
}

func TestInventoryAddCmd(t *testing.T) {
	b, _ := newBackend(t)
	b.handle(http.MethodPost, "/api/exchange/inventory/add", http.StatusOK, map[string]any{
		"message":   "Inventory updated successfully",
		"inventory": map[string]int{"25": 140, "10": 100},
	})

	out, err := execute(t, inventoryCmd(), "", "add", "--coin", "25", "--quantity", "40")
	require.NoError(t, err)

	assert.JSONEq(t, `{"coinValue":25,"quantity":40}`, b.bodies[0])
	assert.Contains(t, out, "Inventory updated successfully")
	assert.True(t, tuitest.ContainsInOrder(out, "10¢", "100", "25¢", "140"))
	assert.Contains(t, out, "Total: $45.00")
}

func TestInventoryReplenishCmd_Declined(t *testing.T) {
	b, _ := newBackend(t)

	out, err := execute(t, inventoryCmd(), "n\n", "replenish")
	require.NoError(t, err)

	assert.Contains(t, out, "Replenish canceled.")
	assert.Empty(t, b.paths())
}

func TestInventoryReplenishCmd_Confirmed(t *testing.T) {
	b, _ := newBackend(t)
	b.handle(http.MethodPost, "/api/exchange/replenish", http.StatusOK, map[string]string{"message": "Coin inventory replenished successfully."})
	b.handle(http.MethodGet, "/api/exchange/inventory", http.StatusOK, map[string]any{
		"inventory": map[string]int{"100": 100},
		"total":     10000,
	})

	out, err := execute(t, inventoryCmd(), "", "replenish", "--yes")
	require.NoError(t, err)

	assert.Equal(t, []string{"POST /api/exchange/replenish", "GET /api/exchange/inventory"}, b.paths())
	assert.Contains(t, out, "Coin inventory replenished successfully.")
	assert.Contains(t, out, "Total: $100.00")
}

func TestHistoryListCmd(t *testing.T) {
	timeLocation = time.UTC
	t.Cleanup(func() { timeLocation = time.Local })

	txs := []map[string]any{
		{"id": 7, "amount": 5, "minimal": true, "change": map[string]int{"25": 20}, "transactionDate": "2024-03-02T10:15:00"},
	}

	t.Run("unfiltered uses full history", func(t *testing.T) {
		b, _ := newBackend(t)
		b.handle(http.MethodGet, "/api/exchange/history", http.StatusOK, txs)

		out, err := execute(t, historyCmd(), "", "list")
		require.NoError(t, err)

		assert.Equal(t, []string{"GET /api/exchange/history"}, b.paths())
		assert.Contains(t, out, "20×25¢")
		assert.Contains(t, out, "1 transactions, $5 exchanged")
	})

	t.Run("filters become query parameters", func(t *testing.T) {
		b, _ := newBackend(t)
		b.handle(http.MethodGet, "/api/exchange/history/filter", http.StatusOK, []any{})

		out, err := execute(t, historyCmd(), "", "list", "--start", "2024-03-01", "--min", "5", "--strategy", "minimal")
		require.NoError(t, err)

		q := b.lastQuery()
		assert.Equal(t, "2024-03-01T00:00:00Z", q.Get("startDate"))
		assert.Equal(t, "5", q.Get("minAmount"))
		assert.Equal(t, "true", q.Get("minimal"))
		assert.False(t, q.Has("endDate"))
		assert.Contains(t, out, "No transactions found.")
	})

	t.Run("invalid filter sends nothing", func(t *testing.T) {
		b, _ := newBackend(t)

		_, err := execute(t, historyCmd(), "", "list", "--end", "yesterday")

		assert.ErrorIs(t, err, common.ErrInvalidDate)
		assert.Empty(t, b.paths())
	})
}

func TestHistoryExportCmd(t *testing.T) {
	b, _ := newBackend(t)
	b.handle(http.MethodGet, "/api/exchange/history", http.StatusOK, []map[string]any{
		{"id": 1, "amount": 5, "minimal": true, "change": map[string]int{"25": 20}},
		{"id": 2, "amount": 1, "minimal": false, "change": map[string]int{"1": 100}},
	})
	path := filepath.Join(t.TempDir(), "history.csv")

	out, err := execute(t, historyCmd(), "", "export", "--output", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Exported 2 transactions")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1,"))
}

func TestHistoryExportCmd_FailureLeavesNoFile(t *testing.T) {
	b, _ := newBackend(t)
	b.handle(http.MethodGet, "/api/exchange/history", http.StatusInternalServerError, map[string]string{"error": "database unavailable"})
	path := filepath.Join(t.TempDir(), "history.csv")

	_, err := execute(t, historyCmd(), "", "export", "--output", path)

	require.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.NoFileExists(t, path)
}

func TestThemeCmds(t *testing.T) {
	newBackend(t)

	out, err := execute(t, themeCmd(), "", "set", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to dark")

	out, err = execute(t, themeCmd(), "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "dark (stored preference)")

	out, err = execute(t, themeCmd(), "", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to light")

	_, err = execute(t, themeCmd(), "", "set", "purple")
	assert.ErrorIs(t, err, common.ErrUnknownTheme)
}

func TestCredentialProvider(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{Source: config.CredentialSourceConfig, Username: "admin", Password: "secret"}}
	creds, err := credentialProvider(cfg).Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", creds.Username)

	t.Setenv("COINADMIN_AUTH_USERNAME", "ops")
	t.Setenv("COINADMIN_AUTH_PASSWORD", "rotated")
	cfg.Auth.Source = config.CredentialSourceEnv
	creds, err = credentialProvider(cfg).Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ops", creds.Username)
	assert.Equal(t, "rotated", creds.Password)
}
