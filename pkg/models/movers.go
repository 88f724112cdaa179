package models

// TopGainersLosers is the TOP_GAINERS_LOSERS response: the day's top
// gainers, top losers, and most actively traded US tickers.
type TopGainersLosers struct {
	Metadata           string  `av:"metadata,required"`
	LastUpdated        string  `av:"last_updated,required"`
	TopGainers         []Mover `av:"top_gainers,required"`
	TopLosers          []Mover `av:"top_losers,required"`
	MostActivelyTraded []Mover `av:"most_actively_traded,required"`
}

// Mover is a single market mover entry. ChangePercentage is parsed from the
// raw "-3.25%" form into its signed numeric value.
type Mover struct {
	Ticker           string   `av:"ticker,required"`
	Price            *float64 `av:"price"`
	ChangeAmount     *float64 `av:"change_amount"`
	ChangePercentage *float64 `av:"change_percentage,percent"`
	Volume           *int64   `av:"volume"`
}
