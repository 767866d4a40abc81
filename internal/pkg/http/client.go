package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/arcpay/internal/pkg/circuitbreaker"
	"github.com/piresc/arcpay/internal/pkg/logger"
	nrpkg "github.com/piresc/arcpay/internal/pkg/newrelic"
	"github.com/piresc/arcpay/internal/pkg/retry"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader carries the shared key on the command surface
	APIKeyHeader = "X-API-Key"
	// IdempotencyKeyHeader lets the payment rail deduplicate transfers
	IdempotencyKeyHeader = "Idempotency-Key"
)

// HTTPError is returned for responses with a status code of 400 or above
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// ClientConfig configures a Client
type ClientConfig struct {
	Name       string
	BaseURL    string
	BearerKey  string
	Timeout    time.Duration
	MaxRetries int
}

// Client is a JSON HTTP client with bearer authentication, retries and a circuit breaker.
// 4xx responses are neither retried nor counted against the breaker.
type Client struct {
	name    string
	baseURL string
	key     string
	client  *nethttp.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	logger  *logger.ZapLogger
}

// NewClient creates a client. breakers may be nil, in which case the client has its own breaker.
func NewClient(cfg ClientConfig, breakers *circuitbreaker.Manager, l *logger.ZapLogger) *Client {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	retryCfg.IsRetryable = func(err error) bool { return !retry.IsPermanent(err) }

	breakerCfg := circuitbreaker.DefaultConfig(cfg.Name)
	breakerCfg.IsFailure = func(err error) bool { return err != nil && !retry.IsPermanent(err) }

	var breaker *circuitbreaker.CircuitBreaker
	if breakers != nil {
		breaker = breakers.GetOrCreate(cfg.Name, breakerCfg)
	} else {
		breaker = circuitbreaker.New(breakerCfg, l)
	}

	return &Client{
		name:    cfg.Name,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		key:     cfg.BearerKey,
		client:  &nethttp.Client{Timeout: cfg.Timeout},
		retrier: retry.New(retryCfg, l),
		breaker: breaker,
		logger:  l,
	}
}

// GetJSON performs a GET and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.do(ctx, nethttp.MethodGet, endpoint, nil, nil, result)
}

// PostJSON performs a POST with a JSON body and decodes the JSON response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.do(ctx, nethttp.MethodPost, endpoint, body, nil, result)
}

// PostJSONIdempotent is PostJSON with an Idempotency-Key header, so retries never duplicate the effect
func (c *Client) PostJSONIdempotent(ctx context.Context, endpoint, key string, body, result interface{}) error {
	return c.do(ctx, nethttp.MethodPost, endpoint, body, map[string]string{IdempotencyKeyHeader: key}, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, headers map[string]string, result interface{}) error {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = b
	}

	url := c.baseURL + endpoint
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			return c.once(ctx, method, url, payload, headers, result)
		})
	})
	if err != nil {
		c.logger.Warn("HTTP request failed",
			logger.String("service", c.name),
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return fmt.Errorf("%s request failed: %w", c.name, err)
	}
	return nil
}

func (c *Client) once(ctx context.Context, method, url string, payload []byte, headers map[string]string, result interface{}) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
		if resp.StatusCode < 500 {
			return retry.Permanent(httpErr)
		}
		return httpErr
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
