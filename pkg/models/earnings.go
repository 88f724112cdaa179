package models

// Earnings is the EARNINGS response: annual and quarterly EPS history for
// one symbol.
type Earnings struct {
	Symbol            string         `av:"symbol,required"`
	AnnualEarnings    []EarningsItem `av:"annualEarnings,required"`
	QuarterlyEarnings []EarningsItem `av:"quarterlyEarnings,required"`
}

// EarningsItem is a single earnings report. Annual entries carry only the
// fiscal date and reported EPS; quarterly entries add estimates and surprise
// figures.
type EarningsItem struct {
	FiscalDateEnding   string   `av:"fiscalDateEnding,required"`
	ReportedDate       *string  `av:"reportedDate"`
	ReportedEPS        *float64 `av:"reportedEPS"`
	EstimatedEPS       *float64 `av:"estimatedEPS"`
	Surprise           *float64 `av:"surprise"`
	SurprisePercentage *float64 `av:"surprisePercentage"`
	ReportTime         *string  `av:"reportTime"`
}
