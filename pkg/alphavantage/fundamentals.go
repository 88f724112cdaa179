package alphavantage

import (
	"context"

	"github.com/seenimoa/alphavantage/pkg/models"
)

// CompanyOverview returns company information, financial ratios, and other
// key metrics for an equity.
func (c *Client) CompanyOverview(ctx context.Context, symbol string) (*models.CompanyOverview, error) {
	var overview models.CompanyOverview
	if err := c.requestRecord(ctx, funcOverview, symbolParams(symbol), &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// IncomeStatement returns the annual and quarterly income statements for a
// company.
func (c *Client) IncomeStatement(ctx context.Context, symbol string) (*models.IncomeStatement, error) {
	var statement models.IncomeStatement
	if err := c.requestRecord(ctx, funcIncomeStatement, symbolParams(symbol), &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}

// BalanceSheet returns the annual and quarterly balance sheets for a
// company.
func (c *Client) BalanceSheet(ctx context.Context, symbol string) (*models.BalanceSheet, error) {
	var sheet models.BalanceSheet
	if err := c.requestRecord(ctx, funcBalanceSheet, symbolParams(symbol), &sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// CashFlow returns the annual and quarterly cash flow statements for a
// company.
func (c *Client) CashFlow(ctx context.Context, symbol string) (*models.CashFlow, error) {
	var flow models.CashFlow
	if err := c.requestRecord(ctx, funcCashFlow, symbolParams(symbol), &flow); err != nil {
		return nil, err
	}
	return &flow, nil
}

// Earnings returns the annual and quarterly earnings history for a company.
func (c *Client) Earnings(ctx context.Context, symbol string) (*models.Earnings, error) {
	var earnings models.Earnings
	if err := c.requestRecord(ctx, funcEarnings, symbolParams(symbol), &earnings); err != nil {
		return nil, err
	}
	return &earnings, nil
}
