package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, opts...)
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "http", baseURL: "http://localhost:8080"},
		{name: "https with trailing slash", baseURL: "https://exchange.example.com/"},
		{name: "missing scheme", baseURL: "localhost:8080", wantErr: true},
		{name: "unsupported scheme", baseURL: "ws://localhost:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.False(t, strings.HasSuffix(client.BaseURL(), "/"))
		})
	}
}

func TestClient_BasicAuth(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		writeJSON(t, w, http.StatusOK, map[string]any{"inventory": map[string]int{"25": 4}, "total": 100})
	}, WithCredentials(StaticCredentials{Username: "operator", Password: "s3cret"}))

	_, err := client.Inventory(context.Background())
	require.NoError(t, err)

	assert.True(t, gotOK)
	assert.Equal(t, "operator", gotUser)
	assert.Equal(t, "s3cret", gotPass)
}

func TestClient_NoCredentialsSendsNoAuthHeader(t *testing.T) {
	var header string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, map[string]any{"inventory": map[string]int{}, "total": 0})
	})

	_, err := client.Inventory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, header)
}

func TestClient_CredentialProviderCalledPerRequest(t *testing.T) {
	calls := 0
	provider := CredentialProviderFunc(func(_ context.Context) (Credentials, error) {
		calls++
		return Credentials{Username: "u", Password: "p"}, nil
	})
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"billInventory": map[string]int{}, "totalBillsReceived": 0})
	}, WithCredentials(provider))

	for i := 0; i < 3; i++ {
		_, err := client.Bills(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}

func TestClient_CredentialProviderError(t *testing.T) {
	hit := false
	providerErr := errors.New("vault sealed")
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		hit = true
	}, WithCredentials(CredentialProviderFunc(func(_ context.Context) (Credentials, error) {
		return Credentials{}, providerErr
	})))

	_, err := client.Inventory(context.Background())
	assert.ErrorIs(t, err, providerErr)
	assert.False(t, hit)
}

func TestEnvCredentials(t *testing.T) {
	env := map[string]string{EnvUsername: "admin", EnvPassword: "pw"}
	provider := EnvCredentials{Lookup: func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}}

	creds, err := provider.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Credentials{Username: "admin", Password: "pw"}, creds)

	env[EnvPassword] = "rotated"
	creds, err = provider.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rotated", creds.Password)
}

func TestClient_APIErrors(t *testing.T) {
	tests := []struct {
		body        any
		name        string
		wantMessage string
		status      int
		wantUnauth  bool
	}{
		{
			name:        "business error with message",
			status:      http.StatusBadRequest,
			body:        map[string]string{"error": "Not enough coins to make change"},
			wantMessage: "Not enough coins to make change",
		},
		{
			name:       "unauthorized without body",
			status:     http.StatusUnauthorized,
			wantUnauth: true,
		},
		{
			name:   "server error with text body",
			status: http.StatusInternalServerError,
			body:   "kaboom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				if tt.body == nil {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(t, w, tt.status, tt.body)
			})

			_, err := client.Exchange(context.Background(), model.ExchangeRequest{Amount: 10, Minimal: true})
			require.Error(t, err)

			var apiErr *common.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantUnauth, IsUnauthorized(err))

			msg, ok := common.ServerMessage(err)
			assert.Equal(t, tt.wantMessage != "", ok)
			assert.Equal(t, tt.wantMessage, msg)
		})
	}
}

func TestClient_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>"},
		{name: "negative count", body: `{"inventory":{"25":-1},"total":0}`},
		{name: "zero denomination", body: `{"inventory":{"0":3},"total":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Inventory(context.Background())
			assert.ErrorIs(t, err, common.ErrInvalidPayload)
		})
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Bills(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}, WithTimeout(20*time.Millisecond))
	defer close(release)

	_, err := client.Bills(context.Background())
	assert.Error(t, err)
}
