// Package models defines the typed records produced from Alpha Vantage
// responses. Each record declares its wire schema with `av` struct tags
// consumed by the internal/schema decoder; fields are set once at decode
// time and never mutated afterwards.
//
// Optional numeric fields are pointers: the upstream API reports absent
// values as the literal string "None", which decodes to nil.
package models

// CompanyOverview holds company information, financial ratios, and other key
// metrics returned by the OVERVIEW function.
type CompanyOverview struct {
	// Identity
	Symbol        string `av:"Symbol,required"`
	AssetType     string `av:"AssetType,required"`
	Name          string `av:"Name,required"`
	Description   string `av:"Description,required"`
	CIK           string `av:"CIK,required"`
	Exchange      string `av:"Exchange,required"`
	Currency      string `av:"Currency,required"`
	Country       string `av:"Country,required"`
	Sector        string `av:"Sector,required"`
	Industry      string `av:"Industry,required"`
	Address       string `av:"Address,required"`
	FiscalYearEnd string `av:"FiscalYearEnd,required"`
	LatestQuarter string `av:"LatestQuarter,required"`

	// Valuation and ratios
	MarketCapitalization       *float64 `av:"MarketCapitalization"`
	EBITDA                     *float64 `av:"EBITDA"`
	PERatio                    *float64 `av:"PERatio"`
	PEGRatio                   *float64 `av:"PEGRatio"`
	BookValue                  *float64 `av:"BookValue"`
	DividendPerShare           *float64 `av:"DividendPerShare"`
	DividendYield              *float64 `av:"DividendYield"`
	EPS                        *float64 `av:"EPS"`
	RevenuePerShareTTM         *float64 `av:"RevenuePerShareTTM"`
	ProfitMargin               *float64 `av:"ProfitMargin"`
	OperatingMarginTTM         *float64 `av:"OperatingMarginTTM"`
	ReturnOnAssetsTTM          *float64 `av:"ReturnOnAssetsTTM"`
	ReturnOnEquityTTM          *float64 `av:"ReturnOnEquityTTM"`
	RevenueTTM                 *float64 `av:"RevenueTTM"`
	GrossProfitTTM             *float64 `av:"GrossProfitTTM"`
	DilutedEPSTTM              *float64 `av:"DilutedEPSTTM"`
	QuarterlyEarningsGrowthYOY *float64 `av:"QuarterlyEarningsGrowthYOY"`
	QuarterlyRevenueGrowthYOY  *float64 `av:"QuarterlyRevenueGrowthYOY"`
	AnalystTargetPrice         *float64 `av:"AnalystTargetPrice"`
	TrailingPE                 *float64 `av:"TrailingPE"`
	ForwardPE                  *float64 `av:"ForwardPE"`
	PriceToSalesRatioTTM       *float64 `av:"PriceToSalesRatioTTM"`
	PriceToBookRatio           *float64 `av:"PriceToBookRatio"`
	EVToRevenue                *float64 `av:"EVToRevenue"`
	EVToEBITDA                 *float64 `av:"EVToEBITDA"`
	Beta                       *float64 `av:"Beta"`

	// Price statistics
	FiftyTwoWeekHigh           *float64 `av:"52WeekHigh"`
	FiftyTwoWeekLow            *float64 `av:"52WeekLow"`
	FiftyDayMovingAverage      *float64 `av:"50DayMovingAverage"`
	TwoHundredDayMovingAverage *float64 `av:"200DayMovingAverage"`
	SharesOutstanding          *float64 `av:"SharesOutstanding"`

	// Dividend dates
	DividendDate   string `av:"DividendDate,required"`
	ExDividendDate string `av:"ExDividendDate,required"`
}
