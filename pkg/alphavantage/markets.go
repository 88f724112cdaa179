package alphavantage

import (
	"context"
	"net/url"
	"strconv"

	"github.com/seenimoa/alphavantage/pkg/models"
)

// NewsSentimentOptions filters the news sentiment feed. All fields are
// optional; unset fields are omitted from the request.
type NewsSentimentOptions struct {
	Tickers  string    // comma-separated tickers, e.g. "AAPL,MSFT"
	Topics   string    // comma-separated topics, e.g. "technology,ipo"
	TimeFrom string    // YYYYMMDDTHHMM
	TimeTo   string    // YYYYMMDDTHHMM
	Sort     SortOrder // default LATEST
	Limit    int       // 1-1000, default 50
}

// NewsSentiment returns market news with per-article and per-ticker
// sentiment scoring.
func (c *Client) NewsSentiment(ctx context.Context, opts *NewsSentimentOptions) (*models.NewsSentimentResponse, error) {
	if opts == nil {
		opts = &NewsSentimentOptions{}
	}

	params := url.Values{}
	sort := opts.Sort
	if sort == "" {
		sort = SortLatest
	}
	params.Set("sort", string(sort))
	limit := opts.Limit
	if limit == 0 {
		limit = 50
	}
	params.Set("limit", strconv.Itoa(limit))
	if opts.Tickers != "" {
		params.Set("tickers", opts.Tickers)
	}
	if opts.Topics != "" {
		params.Set("topics", opts.Topics)
	}
	if opts.TimeFrom != "" {
		params.Set("time_from", opts.TimeFrom)
	}
	if opts.TimeTo != "" {
		params.Set("time_to", opts.TimeTo)
	}

	var news models.NewsSentimentResponse
	if err := c.requestRecord(ctx, funcNewsSentiment, params, &news); err != nil {
		return nil, err
	}
	return &news, nil
}

// TopGainersLosers returns the day's top gainers, losers, and most actively
// traded US tickers.
func (c *Client) TopGainersLosers(ctx context.Context) (*models.TopGainersLosers, error) {
	var movers models.TopGainersLosers
	if err := c.requestRecord(ctx, funcTopGainersLosers, nil, &movers); err != nil {
		return nil, err
	}
	return &movers, nil
}
