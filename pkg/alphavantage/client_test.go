package alphavantage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient spins up a stub API server and a client pointed at it,
// recording each request's query parameters.
func newTestClient(t *testing.T, status int, body string) (*Client, *[]url.Values) {
	t.Helper()
	var seen []url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := New(
		WithAPIKey("testkey"),
		WithBaseURL(server.URL),
		WithLogger(quietLogger()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, &seen
}

func TestNewMissingAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	_, err := New(WithLogger(quietLogger()))
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("New() err = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewAPIKeyFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	client, err := New(WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.apiKey != "env-key" {
		t.Errorf("apiKey = %q", client.apiKey)
	}
}

func TestExplicitKeyBeatsEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	client, err := New(WithAPIKey("explicit"), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.apiKey != "explicit" {
		t.Errorf("apiKey = %q", client.apiKey)
	}
}

func TestRequestInjectsFunctionAndKey(t *testing.T) {
	client, seen := newTestClient(t, http.StatusOK, `{"Meta Data": {}}`)

	if _, err := client.TimeSeriesDaily(context.Background(), "IBM", nil); err != nil {
		t.Fatalf("TimeSeriesDaily: %v", err)
	}
	if len(*seen) != 1 {
		t.Fatalf("requests = %d", len(*seen))
	}
	query := (*seen)[0]
	if got := query.Get("function"); got != "TIME_SERIES_DAILY" {
		t.Errorf("function = %q", got)
	}
	if got := query.Get("apikey"); got != "testkey" {
		t.Errorf("apikey = %q", got)
	}
	if got := query.Get("symbol"); got != "IBM" {
		t.Errorf("symbol = %q", got)
	}
	if got := query.Get("outputsize"); got != "compact" {
		t.Errorf("outputsize = %q", got)
	}
	if got := query.Get("datatype"); got != "json" {
		t.Errorf("datatype = %q", got)
	}
}

func TestRequestErrorMessage(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK,
		`{"Error Message": "Invalid API call. Please retry or visit the documentation."}`)

	_, err := client.TimeSeriesDaily(context.Background(), "NOPE", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message, "Invalid API call") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestRequestRateLimitNote(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK,
		`{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute."}`)

	_, err := client.TimeSeriesDaily(context.Background(), "IBM", nil)
	var rlErr *RateLimitError
	if !errors.As(err, &rlErr) {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if !strings.Contains(rlErr.Note, "API call frequency") {
		t.Errorf("Note = %q", rlErr.Note)
	}
}

func TestRequestInformationalNote(t *testing.T) {
	// A Note without the frequency marker is a warning, not a failure.
	client, _ := newTestClient(t, http.StatusOK,
		`{"Note": "This endpoint is deprecated.", "Meta Data": {}}`)

	data, err := client.TimeSeriesDaily(context.Background(), "IBM", nil)
	if err != nil {
		t.Fatalf("TimeSeriesDaily: %v", err)
	}
	if _, ok := data["Note"]; !ok {
		t.Error("payload should retain the informational Note")
	}
}

func TestRequestNonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, http.StatusServiceUnavailable, "upstream down")

	_, err := client.TimeSeriesDaily(context.Background(), "IBM", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "upstream down" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestRequestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on

	client, err := New(
		WithAPIKey("testkey"),
		WithBaseURL(server.URL),
		WithLogger(quietLogger()),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.TimeSeriesDaily(context.Background(), "IBM", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if !strings.HasPrefix(apiErr.Message, "request failed") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestRequestMalformedJSON(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, "not json at all")

	_, err := client.TimeSeriesDaily(context.Background(), "IBM", nil)
	if err == nil {
		t.Fatal("expected decode error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("malformed body should not classify as APIError, got %v", err)
	}
}

func TestInvalidIntervalFailsBeforeRequest(t *testing.T) {
	client, seen := newTestClient(t, http.StatusOK, `{}`)

	calls := []func() error{
		func() error {
			_, err := client.TimeSeriesIntraday(context.Background(), "IBM", "2min", nil)
			return err
		},
		func() error {
			_, err := client.ForexIntraday(context.Background(), "EUR", "USD", "2min", nil)
			return err
		},
		func() error {
			_, err := client.CryptoIntraday(context.Background(), "BTC", "USD", "2min", nil)
			return err
		},
	}
	for i, call := range calls {
		err := call()
		var paramErr *InvalidParameterError
		if !errors.As(err, &paramErr) {
			t.Errorf("call %d: expected InvalidParameterError, got %v", i, err)
			continue
		}
		if paramErr.Param != "interval" || paramErr.Value != "2min" {
			t.Errorf("call %d: got %+v", i, paramErr)
		}
	}
	if len(*seen) != 0 {
		t.Errorf("invalid interval reached the network: %d requests", len(*seen))
	}
}

func TestIntradayDefaultsAndBooleans(t *testing.T) {
	client, seen := newTestClient(t, http.StatusOK, `{}`)

	adjusted := false
	_, err := client.TimeSeriesIntraday(context.Background(), "IBM", "", &IntradayOptions{
		Adjusted: &adjusted,
	})
	if err != nil {
		t.Fatalf("TimeSeriesIntraday: %v", err)
	}
	query := (*seen)[0]
	if got := query.Get("interval"); got != "5min" {
		t.Errorf("interval = %q, want default 5min", got)
	}
	if got := query.Get("adjusted"); got != "false" {
		t.Errorf("adjusted = %q", got)
	}
	if got := query.Get("extended_hours"); got != "true" {
		t.Errorf("extended_hours = %q", got)
	}
}

func TestIntradayMonthRoutesToExtended(t *testing.T) {
	client, seen := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.TimeSeriesIntraday(context.Background(), "IBM", Interval60Min, &IntradayOptions{
		Month: "2023-07",
	})
	if err != nil {
		t.Fatalf("TimeSeriesIntraday: %v", err)
	}
	query := (*seen)[0]
	if got := query.Get("function"); got != "TIME_SERIES_INTRADAY_EXTENDED" {
		t.Errorf("function = %q", got)
	}
	if got := query.Get("month"); got != "2023-07" {
		t.Errorf("month = %q", got)
	}
	if got := query.Get("interval"); got != "60min" {
		t.Errorf("interval = %q", got)
	}
}

func TestForexAndCryptoParams(t *testing.T) {
	client, seen := newTestClient(t, http.StatusOK, `{}`)

	if _, err := client.ForexDaily(context.Background(), "EUR", "USD", &SeriesOptions{OutputSize: OutputSizeFull}); err != nil {
		t.Fatalf("ForexDaily: %v", err)
	}
	if _, err := client.CryptoDaily(context.Background(), "BTC", "EUR", nil); err != nil {
		t.Fatalf("CryptoDaily: %v", err)
	}

	fx := (*seen)[0]
	if fx.Get("function") != "FX_DAILY" || fx.Get("from_symbol") != "EUR" || fx.Get("to_symbol") != "USD" {
		t.Errorf("forex query = %v", fx)
	}
	if fx.Get("outputsize") != "full" {
		t.Errorf("outputsize = %q", fx.Get("outputsize"))
	}
	crypto := (*seen)[1]
	if crypto.Get("function") != "DIGITAL_CURRENCY_DAILY" || crypto.Get("symbol") != "BTC" || crypto.Get("market") != "EUR" {
		t.Errorf("crypto query = %v", crypto)
	}
}

func TestCredentialNeverLogged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Meta Data": {}}`))
	}))
	t.Cleanup(server.Close)

	const secret = "super-secret-key"
	var logs bytes.Buffer
	client, err := New(
		WithAPIKey(secret),
		WithBaseURL(server.URL),
		WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.TimeSeriesDaily(context.Background(), "IBM", nil); err != nil {
		t.Fatalf("TimeSeriesDaily: %v", err)
	}
	if strings.Contains(logs.String(), secret) {
		t.Error("API key leaked into the log output")
	}
	if !strings.Contains(logs.String(), "api request") {
		t.Error("request was not logged at all")
	}
}
