// Package exchange is the HTTP client for the coin-exchange backend.
package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/coin-exchange-admin/internal/common"
	"github.com/Veraticus/coin-exchange-admin/internal/model"
)

const apiPrefix = "/api/exchange"

// maxErrorBody caps how much of an error response is kept for messages.
const maxErrorBody = 4096

// Client talks to the exchange backend.
type Client struct {
	httpClient  *http.Client
	credentials CredentialProvider
	logger      *slog.Logger
	baseURL     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithCredentials sets the credential provider.
func WithCredentials(p CredentialProvider) Option {
	return func(c *Client) {
		c.credentials = p
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		credentials: StaticCredentials{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	creds, err := c.credentials.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain credentials: %w", err)
	}
	if !creds.IsZero() {
		req.SetBasicAuth(creds.Username, creds.Password)
	}
	return req, nil
}

// do sends the request and returns the status code and raw body.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("exchange request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return resp.StatusCode, data, nil
}

// call performs a request and decodes a 2xx JSON body into out.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	status, data, err := c.do(req)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return newAPIError(status, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.call(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, nil, body, out)
}

type errorBody struct {
	Error string `json:"error"`
}

func newAPIError(status int, data []byte) error {
	apiErr := &common.APIError{StatusCode: status}

	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil {
		apiErr.ServerMessage = eb.Error
	}

	if len(data) > maxErrorBody {
		data = data[:maxErrorBody]
	}
	apiErr.Body = strings.TrimSpace(string(data))
	if apiErr.Body == "" {
		apiErr.Body = http.StatusText(status)
	}
	return apiErr
}

// IsUnauthorized reports whether err is a 401 or 403 from the backend.
func IsUnauthorized(err error) bool {
	var apiErr *common.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

func validate(what string, m map[int]int) error {
	if err := model.ValidateDenominations(m); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrInvalidPayload, what, err)
	}
	return nil
}
