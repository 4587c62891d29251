// Package transport sends JSON requests to the storefront and payment APIs.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"checkout-sdk/internal/util"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	ContentTypeJSON   = "application/json"
	ContentTypeJSONV1 = "application/vnd.bc.v1+json"

	// InternalAPIHeader marks requests to endpoints outside the public API
	InternalAPIHeader  = "X-API-INTERNAL"
	InternalAPIWarning = "This API endpoint is for internal use only and may change in the future"

	RequestIDHeader = "X-Request-ID"
)

// RequestOptions configures one request
type RequestOptions struct {
	// Route is the templated path used as the metrics label, e.g. /api/storefront/checkout/:id
	Route   string
	Params  url.Values
	Headers http.Header
	Body    any
	// Timeout aborts the request when positive
	Timeout time.Duration
}

// Response is a decoded response envelope
type Response[T any] struct {
	Body       T
	Headers    http.Header
	Status     int
	StatusText string
}

// Client sends requests relative to a base URL. Absolute URLs bypass it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new client with a traced transport
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: util.GetLogger(),
	}
}

// BaseURL returns the base URL requests are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

func Get[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (Response[T], error) {
	return Do[T](ctx, c, http.MethodGet, path, opts)
}

func Post[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (Response[T], error) {
	return Do[T](ctx, c, http.MethodPost, path, opts)
}

func Put[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (Response[T], error) {
	return Do[T](ctx, c, http.MethodPut, path, opts)
}

func Delete[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (Response[T], error) {
	return Do[T](ctx, c, http.MethodDelete, path, opts)
}

// Do sends one request and decodes a JSON response into T. It never retries.
// Non-2xx responses are returned as *RequestError.
func Do[T any](ctx context.Context, c *Client, method, path string, opts RequestOptions) (Response[T], error) {
	var resp Response[T]

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := c.newRequest(ctx, method, path, opts)
	if err != nil {
		return resp, err
	}

	route := opts.Route
	if route == "" {
		route = req.URL.Path
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		observe(method, route, "error", start)
		c.logger.Warn("Request failed",
			zap.String("method", method),
			zap.String("route", route),
			zap.Error(err))
		return resp, fmt.Errorf("failed to send %s %s: %w", method, route, err)
	}
	defer httpResp.Body.Close()

	observe(method, route, strconv.Itoa(httpResp.StatusCode), start)

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return resp, fmt.Errorf("failed to read response of %s %s: %w", method, route, err)
	}

	resp.Headers = httpResp.Header
	resp.Status = httpResp.StatusCode
	resp.StatusText = http.StatusText(httpResp.StatusCode)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		reqErr := newRequestError(httpResp, raw)
		c.logger.Debug("Request rejected",
			zap.String("method", method),
			zap.String("route", route),
			zap.Int("status", httpResp.StatusCode),
			zap.String("title", reqErr.Body.Title))
		return resp, reqErr
	}

	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &resp.Body); err != nil {
			return resp, fmt.Errorf("failed to decode response of %s %s: %w", method, route, err)
		}
	}

	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, opts RequestOptions) (*http.Request, error) {
	target, err := c.resolve(path, opts.Params)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", ContentTypeJSONV1)
	if opts.Body != nil {
		req.Header.Set("Content-Type", ContentTypeJSON)
	}
	req.Header.Set(RequestIDHeader, uuid.New().String())
	for key, values := range opts.Headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return req, nil
}

func (c *Client) resolve(path string, params url.Values) (string, error) {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = c.baseURL + path
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("failed to parse url %s: %w", target, err)
	}

	if len(params) > 0 {
		q := u.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func observe(method, route, status string, start time.Time) {
	util.OutboundRequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
	util.OutboundRequestsTotal.WithLabelValues(method, route, status).Inc()
}

// InternalHeaders returns the headers required by internal endpoints
func InternalHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", ContentTypeJSON)
	h.Set(InternalAPIHeader, InternalAPIWarning)
	return h
}
