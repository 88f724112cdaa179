package alphavantage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey is returned by New when no API key is available.
var ErrMissingAPIKey = errors.New("alphavantage: no API key provided; use WithAPIKey or set ALPHA_VANTAGE_API_KEY")

// APIError is an upstream failure: a non-success HTTP status, an explicit
// "Error Message" body, or a wrapped transport failure (status 500).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("alphavantage: api error %d: %s", e.StatusCode, e.Message)
}

// RateLimitError signals that the API reported exhausted call frequency via
// its "Note" sentinel.
type RateLimitError struct {
	Note string
}

func (e *RateLimitError) Error() string {
	return "alphavantage: rate limit exceeded: " + e.Note
}

// InvalidParameterError is returned when a caller-supplied argument violates
// a locally enforced constraint. No network call is made.
type InvalidParameterError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("alphavantage: invalid %s %q (allowed: %s)",
		e.Param, e.Value, strings.Join(e.Allowed, ", "))
}
