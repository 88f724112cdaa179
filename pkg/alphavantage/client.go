// Package alphavantage implements a typed client for the Alpha Vantage
// financial data API (https://www.alphavantage.co).
//
// Fundamental endpoints (company overview, financial statements, earnings,
// news sentiment, market movers) return validated records from pkg/models;
// time series, forex, and crypto endpoints return the decoded JSON payload
// as-is. The client performs no retries, caching, or rate limiting of its
// own — callers layer their own resilience on top.
//
// Free tier: 25 requests/day, 5 requests/minute.
// Docs: https://www.alphavantage.co/documentation/
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/seenimoa/alphavantage/internal/schema"
)

// DefaultBaseURL is the official Alpha Vantage query endpoint.
const DefaultBaseURL = "https://www.alphavantage.co/query"

// EnvAPIKey is the environment variable consulted when no explicit API key
// is given.
const EnvAPIKey = "ALPHA_VANTAGE_API_KEY"

// rateLimitMarker is the substring of a "Note" body that signals exhausted
// call frequency, as opposed to an informational note.
const rateLimitMarker = "API call frequency"

// Payload is a decoded JSON response for the schema-free endpoints.
type Payload map[string]any

// Client issues requests against the Alpha Vantage API. The credential and
// base URL are fixed at construction; a Client is safe for sequential reuse
// and holds no other mutable state.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithAPIKey sets the API key explicitly instead of reading EnvAPIKey.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithBaseURL overrides the query endpoint, e.g. for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger sets the logger. The API key is never written to it.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client. The API key comes from WithAPIKey or, failing that,
// the ALPHA_VANTAGE_API_KEY environment variable; without one New returns
// ErrMissingAPIKey.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.apiKey == "" {
		c.apiKey = os.Getenv(EnvAPIKey)
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	c.log.Info("alphavantage client initialized", slog.String("base_url", c.baseURL))
	return c, nil
}

// request performs one GET against the API with the given function tag and
// parameters, and classifies the response. The function tag and API key are
// injected here; params is logged before the key is added so the credential
// never reaches the log sink.
func (c *Client) request(ctx context.Context, function string, params url.Values) (Payload, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("function", function)
	c.log.Info("api request",
		slog.String("function", function),
		slog.String("params", params.Encode()))
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &APIError{StatusCode: http.StatusInternalServerError, Message: "request failed: " + err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: http.StatusInternalServerError, Message: "request failed: " + err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("api request failed",
			slog.String("function", function),
			slog.Int("status", resp.StatusCode))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var data Payload
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if raw, ok := data["Error Message"]; ok {
		msg := fmt.Sprint(raw)
		c.log.Error("api returned error", slog.String("message", msg))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if raw, ok := data["Note"]; ok {
		note := fmt.Sprint(raw)
		c.log.Warn("api returned note", slog.String("note", note))
		if strings.Contains(note, rateLimitMarker) {
			return nil, &RateLimitError{Note: note}
		}
		// Informational notes are non-fatal; the payload is still usable.
	}
	return data, nil
}

// requestRecord fetches a payload and maps it onto dst via the schema
// decoder.
func (c *Client) requestRecord(ctx context.Context, function string, params url.Values, dst any) error {
	data, err := c.request(ctx, function, params)
	if err != nil {
		return err
	}
	return schema.Decode(data, dst)
}
