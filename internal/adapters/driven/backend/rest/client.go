package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.WorkOrderStore = (*Client)(nil)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is kept in APIError.
const maxErrorBody = 512

// Client talks to the work order backend.
type Client struct {
	baseURL     *url.URL
	http        *http.Client
	rateLimiter *rateLimiter
}

// Option customises a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the base HTTP client. With OAuth configured, the token
// transport wraps this client's transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// NewClient creates a backend client from settings.
func NewClient(cfg domain.BackendSettings, opts ...Option) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, ErrNoBaseURL
	}
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.URL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing backend url: %w", err)
	}

	o := options{httpClient: &http.Client{Timeout: DefaultTimeout}}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if cfg.UsesOAuth() {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		// The token fetch itself goes through the base client.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, o.httpClient)
		httpClient = cc.Client(ctx)
		httpClient.Timeout = o.httpClient.Timeout
		logger.Debug("Backend client using OAuth2 client credentials (client %s)", cfg.ClientID)
	}

	return &Client{
		baseURL:     base,
		http:        httpClient,
		rateLimiter: newRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}, nil
}

type listResponse struct {
	WorkOrders []domain.WorkOrder `json:"work_orders"`
}

// Get retrieves a work order by task ID.
func (c *Client) Get(ctx context.Context, taskID string) (*domain.WorkOrder, error) {
	var wo domain.WorkOrder
	if err := c.do(ctx, http.MethodGet, c.orderPath(taskID), nil, &wo); err != nil {
		return nil, err
	}
	return &wo, nil
}

// List returns all work orders assigned to the technician.
func (c *Client) List(ctx context.Context) ([]domain.WorkOrder, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, "/work-orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.WorkOrders, nil
}

// Save replaces the backend copy of a work order.
func (c *Client) Save(ctx context.Context, order domain.WorkOrder) error {
	if order.TaskID == "" {
		return domain.ErrInvalidInput
	}
	return c.do(ctx, http.MethodPut, c.orderPath(order.TaskID), order, nil)
}

func (c *Client) orderPath(taskID string) string {
	return "/work-orders/" + url.PathEscape(taskID)
}

// do sends one JSON request. out may be nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	endpoint := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.checkResponse(resp); err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
			URL:        endpoint,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
