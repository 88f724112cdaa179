package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CompactTimeLayout is the 15-character timestamp format used by the news
// endpoint, e.g. "20240115T093000".
const CompactTimeLayout = "20060102T150405"

// ParsePercent parses a percentage string such as "-3.25%" into its signed
// numeric magnitude. The trailing percent sign is optional; anything that is
// not a valid number once the sign is stripped is an error.
func ParsePercent(s string) (float64, error) {
	trimmed := strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", s)
	}
	return f, nil
}

// ParseCompactTime parses a compact Alpha Vantage timestamp. Any input that
// does not match the fixed 15-character layout is an error.
func ParseCompactTime(s string) (time.Time, error) {
	if len(s) != len(CompactTimeLayout) {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: want %d characters", s, len(CompactTimeLayout))
	}
	t, err := time.Parse(CompactTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}

// toFloat coerces a decoded JSON value to float64. Alpha Vantage serializes
// most numbers as strings, so both representations are accepted.
func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as number", v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("expected number, got %T", raw)
}

// toInt coerces a decoded JSON value to int64. Fractional numbers are
// rejected rather than truncated.
func toInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("cannot use %v as integer", v)
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as integer", v)
		}
		return n, nil
	}
	return 0, fmt.Errorf("expected integer, got %T", raw)
}
