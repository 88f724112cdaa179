package alphavantage

import (
	"context"
	"net/url"
)

// IntradayOptions tunes the intraday time series endpoints. The zero value
// matches the upstream defaults: adjusted, extended hours, compact output.
type IntradayOptions struct {
	Adjusted      *bool      // default true
	ExtendedHours *bool      // default true
	Month         string     // YYYY-MM; routes to the extended-history endpoint
	OutputSize    OutputSize // default compact
	DataType      DataType   // default json
}

// SeriesOptions tunes the daily time series endpoints.
type SeriesOptions struct {
	OutputSize OutputSize // default compact
	DataType   DataType   // default json
}

// TimeSeriesIntraday returns intraday OHLCV data for an equity. An interval
// outside the supported set fails with InvalidParameterError before any
// request is sent. When opts.Month is set the extended-history endpoint is
// queried instead.
func (c *Client) TimeSeriesIntraday(ctx context.Context, symbol string, interval Interval, opts *IntradayOptions) (Payload, error) {
	if interval == "" {
		interval = Interval5Min
	}
	if err := interval.validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &IntradayOptions{}
	}

	params := symbolParams(symbol)
	params.Set("interval", string(interval))
	params.Set("adjusted", boolParam(opts.Adjusted, true))
	params.Set("extended_hours", boolParam(opts.ExtendedHours, true))
	params.Set("outputsize", opts.OutputSize.orDefault())
	params.Set("datatype", opts.DataType.orDefault())

	function := funcTimeSeriesIntraday
	if opts.Month != "" {
		params.Set("month", opts.Month)
		function = funcTimeSeriesIntradayExtended
	}
	return c.request(ctx, function, params)
}

// TimeSeriesDaily returns daily OHLCV data for an equity.
func (c *Client) TimeSeriesDaily(ctx context.Context, symbol string, opts *SeriesOptions) (Payload, error) {
	return c.dailySeries(ctx, funcTimeSeriesDaily, symbol, opts)
}

// TimeSeriesDailyAdjusted returns daily data with split and dividend
// adjustments.
func (c *Client) TimeSeriesDailyAdjusted(ctx context.Context, symbol string, opts *SeriesOptions) (Payload, error) {
	return c.dailySeries(ctx, funcTimeSeriesDailyAdjusted, symbol, opts)
}

// TimeSeriesWeekly returns weekly OHLCV data for an equity.
func (c *Client) TimeSeriesWeekly(ctx context.Context, symbol string, datatype DataType) (Payload, error) {
	return c.longSeries(ctx, funcTimeSeriesWeekly, symbol, datatype)
}

// TimeSeriesWeeklyAdjusted returns weekly adjusted OHLCV data.
func (c *Client) TimeSeriesWeeklyAdjusted(ctx context.Context, symbol string, datatype DataType) (Payload, error) {
	return c.longSeries(ctx, funcTimeSeriesWeeklyAdjusted, symbol, datatype)
}

// TimeSeriesMonthly returns monthly OHLCV data for an equity.
func (c *Client) TimeSeriesMonthly(ctx context.Context, symbol string, datatype DataType) (Payload, error) {
	return c.longSeries(ctx, funcTimeSeriesMonthly, symbol, datatype)
}

// TimeSeriesMonthlyAdjusted returns monthly adjusted OHLCV data.
func (c *Client) TimeSeriesMonthlyAdjusted(ctx context.Context, symbol string, datatype DataType) (Payload, error) {
	return c.longSeries(ctx, funcTimeSeriesMonthlyAdjusted, symbol, datatype)
}

func (c *Client) dailySeries(ctx context.Context, function, symbol string, opts *SeriesOptions) (Payload, error) {
	if opts == nil {
		opts = &SeriesOptions{}
	}
	params := symbolParams(symbol)
	params.Set("outputsize", opts.OutputSize.orDefault())
	params.Set("datatype", opts.DataType.orDefault())
	return c.request(ctx, function, params)
}

func (c *Client) longSeries(ctx context.Context, function, symbol string, datatype DataType) (Payload, error) {
	params := symbolParams(symbol)
	params.Set("datatype", datatype.orDefault())
	return c.request(ctx, function, params)
}

// forex / crypto helpers share the same parameter shapes.

func fxParams(fromSymbol, toSymbol string) url.Values {
	params := url.Values{}
	params.Set("from_symbol", fromSymbol)
	params.Set("to_symbol", toSymbol)
	return params
}

// ForexIntraday returns intraday exchange rates for a currency pair.
func (c *Client) ForexIntraday(ctx context.Context, fromSymbol, toSymbol string, interval Interval, opts *SeriesOptions) (Payload, error) {
	if interval == "" {
		interval = Interval5Min
	}
	if err := interval.validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &SeriesOptions{}
	}
	params := fxParams(fromSymbol, toSymbol)
	params.Set("interval", string(interval))
	params.Set("outputsize", opts.OutputSize.orDefault())
	params.Set("datatype", opts.DataType.orDefault())
	return c.request(ctx, funcForexIntraday, params)
}

// ForexDaily returns daily exchange rates for a currency pair.
func (c *Client) ForexDaily(ctx context.Context, fromSymbol, toSymbol string, opts *SeriesOptions) (Payload, error) {
	if opts == nil {
		opts = &SeriesOptions{}
	}
	params := fxParams(fromSymbol, toSymbol)
	params.Set("outputsize", opts.OutputSize.orDefault())
	params.Set("datatype", opts.DataType.orDefault())
	return c.request(ctx, funcForexDaily, params)
}

// ForexWeekly returns weekly exchange rates for a currency pair.
func (c *Client) ForexWeekly(ctx context.Context, fromSymbol, toSymbol string, datatype DataType) (Payload, error) {
	params := fxParams(fromSymbol, toSymbol)
	params.Set("datatype", datatype.orDefault())
	return c.request(ctx, funcForexWeekly, params)
}

// ForexMonthly returns monthly exchange rates for a currency pair.
func (c *Client) ForexMonthly(ctx context.Context, fromSymbol, toSymbol string, datatype DataType) (Payload, error) {
	params := fxParams(fromSymbol, toSymbol)
	params.Set("datatype", datatype.orDefault())
	return c.request(ctx, funcForexMonthly, params)
}

func cryptoParams(symbol, market string) url.Values {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("market", market)
	return params
}

// CryptoIntraday returns intraday prices for a digital currency in the
// given market.
func (c *Client) CryptoIntraday(ctx context.Context, symbol, market string, interval Interval, opts *SeriesOptions) (Payload, error) {
	if interval == "" {
		interval = Interval5Min
	}
	if err := interval.validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &SeriesOptions{}
	}
	params := cryptoParams(symbol, market)
	params.Set("interval", string(interval))
	params.Set("outputsize", opts.OutputSize.orDefault())
	params.Set("datatype", opts.DataType.orDefault())
	return c.request(ctx, funcCryptoIntraday, params)
}

// CryptoDaily returns daily prices for a digital currency.
func (c *Client) CryptoDaily(ctx context.Context, symbol, market string, opts *SeriesOptions) (Payload, error) {
	if opts == nil {
		opts = &SeriesOptions{}
	}
	params := cryptoParams(symbol, market)
	params.Set("outputsize", opts.OutputSize.orDefault())
	params.Set("datatype", opts.DataType.orDefault())
	return c.request(ctx, funcCryptoDaily, params)
}

// CryptoWeekly returns weekly prices for a digital currency.
func (c *Client) CryptoWeekly(ctx context.Context, symbol, market string, datatype DataType) (Payload, error) {
	params := cryptoParams(symbol, market)
	params.Set("datatype", datatype.orDefault())
	return c.request(ctx, funcCryptoWeekly, params)
}

// CryptoMonthly returns monthly prices for a digital currency.
func (c *Client) CryptoMonthly(ctx context.Context, symbol, market string, datatype DataType) (Payload, error) {
	params := cryptoParams(symbol, market)
	params.Set("datatype", datatype.orDefault())
	return c.request(ctx, funcCryptoMonthly, params)
}
