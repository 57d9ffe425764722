package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds one submission when no option overrides it.
const DefaultTimeout = 90 * time.Second

// maxResponseBody caps how much of a relay reply is read.
const maxResponseBody = 64 << 10

// Receipt is the relay's acknowledgement of a stored request.
type Receipt struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Notified bool   `json:"notified"`
}

// Client posts quote requests to the relay endpoint. One Send is one HTTP
// request: there is no retry and no queueing.
type Client struct {
	endpoint string
	token    string
	timeout  time.Duration
	http     *http.Client
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each Send. Zero disables the bound.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

// WithToken sends "Authorization: Bearer <token>" on every request.
func WithToken(token string) Option { return func(c *Client) { c.token = token } }

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithLogger attaches a logger; the default discards.
func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.logger = l } }

// NewClient returns a client for the relay at endpoint, e.g.
// "https://relay.example.com/send-quote".
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		timeout:  DefaultTimeout,
		http:     &http.Client{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint is the relay URL requests are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Send validates f and, only if it is valid, posts it to the relay.
// A validation failure is returned as *ValidationError with no request made;
// every other failure is a *SendError carrying its Category.
func (c *Client) Send(ctx context.Context, f Form) (*Receipt, error) {
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(f)
	if err != nil {
		return nil, &SendError{Category: CategoryGeneric, Err: fmt.Errorf("encoding quote request: %w", err)}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &SendError{Category: CategoryGeneric, Err: fmt.Errorf("building request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		sendErr := &SendError{Category: classifyTransport(ctx, err), Err: err}
		c.logger.Warn("quote relay request failed",
			zap.String("endpoint", c.endpoint),
			zap.String("category", string(sendErr.Category)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, sendErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		c.logger.Debug("reading quote relay reply", zap.Int("status", resp.StatusCode), zap.Error(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		sendErr := &SendError{
			Category: StatusCategory(resp.StatusCode),
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("relay returned %d: %s", resp.StatusCode, bytes.TrimSpace(raw)),
		}
		c.logger.Warn("quote relay rejected request",
			zap.String("endpoint", c.endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("category", string(sendErr.Category)))
		return nil, sendErr
	}

	// Success is decided by status alone; an unparsable body still counts.
	var receipt Receipt
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &receipt); err != nil {
			c.logger.Debug("quote relay reply is not JSON", zap.Error(err))
			receipt = Receipt{}
		}
	}

	c.logger.Info("quote request relayed",
		zap.String("id", receipt.ID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return &receipt, nil
}

// classifyTransport decides between timeout and connectivity for an error
// returned by http.Client.Do.
func classifyTransport(ctx context.Context, err error) Category {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return CategoryTimeout
	}
	return Classify(err)
}
