package alphavantage

import "net/url"

// Endpoint function tags. Each request carries exactly one of these as its
// "function" parameter.
const (
	funcTimeSeriesIntraday         = "TIME_SERIES_INTRADAY"
	funcTimeSeriesIntradayExtended = "TIME_SERIES_INTRADAY_EXTENDED"
	funcTimeSeriesDaily            = "TIME_SERIES_DAILY"
	funcTimeSeriesDailyAdjusted    = "TIME_SERIES_DAILY_ADJUSTED"
	funcTimeSeriesWeekly           = "TIME_SERIES_WEEKLY"
	funcTimeSeriesWeeklyAdjusted   = "TIME_SERIES_WEEKLY_ADJUSTED"
	funcTimeSeriesMonthly          = "TIME_SERIES_MONTHLY"
	funcTimeSeriesMonthlyAdjusted  = "TIME_SERIES_MONTHLY_ADJUSTED"
	funcOverview                   = "OVERVIEW"
	funcIncomeStatement            = "INCOME_STATEMENT"
	funcBalanceSheet               = "BALANCE_SHEET"
	funcCashFlow                   = "CASH_FLOW"
	funcEarnings                   = "EARNINGS"
	funcNewsSentiment              = "NEWS_SENTIMENT"
	funcTopGainersLosers           = "TOP_GAINERS_LOSERS"
	funcForexIntraday              = "FX_INTRADAY"
	funcForexDaily                 = "FX_DAILY"
	funcForexWeekly                = "FX_WEEKLY"
	funcForexMonthly               = "FX_MONTHLY"
	funcCryptoIntraday             = "CRYPTO_INTRADAY"
	funcCryptoDaily                = "DIGITAL_CURRENCY_DAILY"
	funcCryptoWeekly               = "DIGITAL_CURRENCY_WEEKLY"
	funcCryptoMonthly              = "DIGITAL_CURRENCY_MONTHLY"
)

// Interval is the sampling interval for intraday endpoints.
type Interval string

const (
	Interval1Min  Interval = "1min"
	Interval5Min  Interval = "5min"
	Interval15Min Interval = "15min"
	Interval30Min Interval = "30min"
	Interval60Min Interval = "60min"
)

var allowedIntervals = []string{"1min", "5min", "15min", "30min", "60min"}

// validate checks the interval against the upstream whitelist before any
// network call.
func (i Interval) validate() error {
	for _, allowed := range allowedIntervals {
		if string(i) == allowed {
			return nil
		}
	}
	return &InvalidParameterError{Param: "interval", Value: string(i), Allowed: allowedIntervals}
}

// OutputSize selects how much history a series endpoint returns.
type OutputSize string

const (
	OutputSizeCompact OutputSize = "compact" // latest 100 data points
	OutputSizeFull    OutputSize = "full"    // full-length history
)

func (s OutputSize) orDefault() string {
	if s == "" {
		return string(OutputSizeCompact)
	}
	return string(s)
}

// DataType selects the upstream response format. Only JSON is decoded by
// this client.
type DataType string

const (
	DataTypeJSON DataType = "json"
	DataTypeCSV  DataType = "csv"
)

func (d DataType) orDefault() string {
	if d == "" {
		return string(DataTypeJSON)
	}
	return string(d)
}

// SortOrder orders news sentiment results.
type SortOrder string

const (
	SortLatest    SortOrder = "LATEST"
	SortEarliest  SortOrder = "EARLIEST"
	SortRelevance SortOrder = "RELEVANCE"
)

// boolParam renders an optional boolean the way the API expects, falling
// back to def when unset.
func boolParam(b *bool, def bool) string {
	v := def
	if b != nil {
		v = *b
	}
	if v {
		return "true"
	}
	return "false"
}

func symbolParams(symbol string) url.Values {
	params := url.Values{}
	params.Set("symbol", symbol)
	return params
}
