// Package gateway is the single chokepoint for all calls to the grievance
// service. It owns request shaping, JSON decoding and the error taxonomy;
// no other package touches the network.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/client/internal/logging"
)

// Gateway talks HTTP/JSON to the grievance service.
//
// maxRetries and retryDelay are carried from configuration but never
// consulted: every call is a single attempt. See config.Config.
type Gateway struct {
	baseURL    string
	http       *http.Client
	log        logging.Logger
	maxRetries int
	retryDelay time.Duration
}

// Option adjusts a Gateway during construction.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

// WithRetryConfig records the configured retry budget. It is stored only;
// the gateway does not retry.
func WithRetryConfig(maxRetries int, retryDelay time.Duration) Option {
	return func(g *Gateway) {
		g.maxRetries = maxRetries
		g.retryDelay = retryDelay
	}
}

// New builds a Gateway for the given base address. The timeout bounds one
// whole request/response cycle.
func New(baseURL string, timeout time.Duration, log logging.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// do performs one request and decodes the JSON response into out (skipped
// when out is nil). The body, when non-nil, is serialized as JSON and a
// Content-Type header is added only in that case.
//
// Error taxonomy:
//   - non-2xx response: *StatusError with the best extractable message;
//   - transport failure: rewritten to ErrUnreachable;
//   - context cancellation and everything else: propagated unchanged.
func (g *Gateway) do(ctx context.Context, method, path string, body any, query url.Values, out any) error {
	requestURL := g.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	g.log.Debug(ctx, "api request", "id", requestID, "method", method, "url", requestURL)

	resp, err := g.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			g.log.Error(ctx, "api transport failure", "id", requestID, "error", err)
			return ErrUnreachable
		}
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{Status: resp.StatusCode, Detail: extractDetail(data, resp.StatusCode)}
		g.log.Warn(ctx, "api error response", "id", requestID, "status", resp.StatusCode, "detail", statusErr.Detail)
		return statusErr
	}

	g.log.Debug(ctx, "api response", "id", requestID, "status", resp.StatusCode)

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (g *Gateway) get(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, query, out)
}

func (g *Gateway) post(ctx context.Context, path string, body any, query url.Values, out any) error {
	return g.do(ctx, http.MethodPost, path, body, query, out)
}
