package models

// IncomeStatement is the INCOME_STATEMENT response: annual and quarterly
// report line items for one symbol.
type IncomeStatement struct {
	Symbol           string                `av:"symbol,required"`
	AnnualReports    []IncomeStatementItem `av:"annualReports,required"`
	QuarterlyReports []IncomeStatementItem `av:"quarterlyReports,required"`
}

// IncomeStatementItem is a single income statement report keyed by fiscal
// period end date.
type IncomeStatementItem struct {
	FiscalDateEnding string `av:"fiscalDateEnding,required"`
	ReportedCurrency string `av:"reportedCurrency,required"`

	GrossProfit                       *float64 `av:"grossProfit"`
	TotalRevenue                      *float64 `av:"totalRevenue"`
	CostOfRevenue                     *float64 `av:"costOfRevenue"`
	CostOfGoodsAndServicesSold        *float64 `av:"costofGoodsAndServicesSold"`
	OperatingIncome                   *float64 `av:"operatingIncome"`
	SellingGeneralAndAdministrative   *float64 `av:"sellingGeneralAndAdministrative"`
	ResearchAndDevelopment            *float64 `av:"researchAndDevelopment"`
	OperatingExpenses                 *float64 `av:"operatingExpenses"`
	InvestmentIncomeNet               *float64 `av:"investmentIncomeNet"`
	NetInterestIncome                 *float64 `av:"netInterestIncome"`
	InterestIncome                    *float64 `av:"interestIncome"`
	InterestExpense                   *float64 `av:"interestExpense"`
	NonInterestIncome                 *float64 `av:"nonInterestIncome"`
	OtherNonOperatingIncome           *float64 `av:"otherNonOperatingIncome"`
	Depreciation                      *float64 `av:"depreciation"`
	DepreciationAndAmortization       *float64 `av:"depreciationAndAmortization"`
	IncomeBeforeTax                   *float64 `av:"incomeBeforeTax"`
	IncomeTaxExpense                  *float64 `av:"incomeTaxExpense"`
	InterestAndDebtExpense            *float64 `av:"interestAndDebtExpense"`
	NetIncomeFromContinuingOperations *float64 `av:"netIncomeFromContinuingOperations"`
	ComprehensiveIncomeNetOfTax       *float64 `av:"comprehensiveIncomeNetOfTax"`
	EBIT                              *float64 `av:"ebit"`
	EBITDA                            *float64 `av:"ebitda"`
	NetIncome                         *float64 `av:"netIncome"`
}

// BalanceSheet is the BALANCE_SHEET response.
type BalanceSheet struct {
	Symbol           string             `av:"symbol,required"`
	AnnualReports    []BalanceSheetItem `av:"annualReports,required"`
	QuarterlyReports []BalanceSheetItem `av:"quarterlyReports,required"`
}

// BalanceSheetItem is a single balance sheet report.
type BalanceSheetItem struct {
	FiscalDateEnding string `av:"fiscalDateEnding,required"`
	ReportedCurrency string `av:"reportedCurrency,required"`

	TotalAssets                            *float64 `av:"totalAssets"`
	TotalCurrentAssets                     *float64 `av:"totalCurrentAssets"`
	CashAndCashEquivalentsAtCarryingValue  *float64 `av:"cashAndCashEquivalentsAtCarryingValue"`
	CashAndShortTermInvestments            *float64 `av:"cashAndShortTermInvestments"`
	Inventory                              *float64 `av:"inventory"`
	CurrentNetReceivables                  *float64 `av:"currentNetReceivables"`
	TotalNonCurrentAssets                  *float64 `av:"totalNonCurrentAssets"`
	PropertyPlantEquipment                 *float64 `av:"propertyPlantEquipment"`
	AccumulatedDepreciationAmortizationPPE *float64 `av:"accumulatedDepreciationAmortizationPPE"`
	IntangibleAssets                       *float64 `av:"intangibleAssets"`
	IntangibleAssetsExcludingGoodwill      *float64 `av:"intangibleAssetsExcludingGoodwill"`
	Goodwill                               *float64 `av:"goodwill"`
	Investments                            *float64 `av:"investments"`
	LongTermInvestments                    *float64 `av:"longTermInvestments"`
	ShortTermInvestments                   *float64 `av:"shortTermInvestments"`
	OtherCurrentAssets                     *float64 `av:"otherCurrentAssets"`
	OtherNonCurrentAssets                  *float64 `av:"otherNonCurrentAssets"`
	TotalLiabilities                       *float64 `av:"totalLiabilities"`
	TotalCurrentLiabilities                *float64 `av:"totalCurrentLiabilities"`
	CurrentAccountsPayable                 *float64 `av:"currentAccountsPayable"`
	DeferredRevenue                        *float64 `av:"deferredRevenue"`
	CurrentDebt                            *float64 `av:"currentDebt"`
	ShortTermDebt                          *float64 `av:"shortTermDebt"`
	TotalNonCurrentLiabilities             *float64 `av:"totalNonCurrentLiabilities"`
	CapitalLeaseObligations                *float64 `av:"capitalLeaseObligations"`
	LongTermDebt                           *float64 `av:"longTermDebt"`
	CurrentLongTermDebt                    *float64 `av:"currentLongTermDebt"`
	LongTermDebtNoncurrent                 *float64 `av:"longTermDebtNoncurrent"`
	ShortLongTermDebtTotal                 *float64 `av:"shortLongTermDebtTotal"`
	OtherCurrentLiabilities                *float64 `av:"otherCurrentLiabilities"`
	OtherNonCurrentLiabilities             *float64 `av:"otherNonCurrentLiabilities"`
	TotalShareholderEquity                 *float64 `av:"totalShareholderEquity"`
	TreasuryStock                          *float64 `av:"treasuryStock"`
	RetainedEarnings                       *float64 `av:"retainedEarnings"`
	CommonStock                            *float64 `av:"commonStock"`
	CommonStockSharesOutstanding           *float64 `av:"commonStockSharesOutstanding"`
}

// CashFlow is the CASH_FLOW response.
type CashFlow struct {
	Symbol           string         `av:"symbol,required"`
	AnnualReports    []CashFlowItem `av:"annualReports,required"`
	QuarterlyReports []CashFlowItem `av:"quarterlyReports,required"`
}

// CashFlowItem is a single cash flow statement report.
type CashFlowItem struct {
	FiscalDateEnding string `av:"fiscalDateEnding,required"`
	ReportedCurrency string `av:"reportedCurrency,required"`

	OperatingCashflow                                         *float64 `av:"operatingCashflow"`
	PaymentsForOperatingActivities                            *float64 `av:"paymentsForOperatingActivities"`
	ProceedsFromOperatingActivities                           *float64 `av:"proceedsFromOperatingActivities"`
	ChangeInOperatingLiabilities                              *float64 `av:"changeInOperatingLiabilities"`
	ChangeInOperatingAssets                                   *float64 `av:"changeInOperatingAssets"`
	DepreciationDepletionAndAmortization                      *float64 `av:"depreciationDepletionAndAmortization"`
	CapitalExpenditures                                       *float64 `av:"capitalExpenditures"`
	ChangeInReceivables                                       *float64 `av:"changeInReceivables"`
	ChangeInInventory                                         *float64 `av:"changeInInventory"`
	ProfitLoss                                                *float64 `av:"profitLoss"`
	CashflowFromInvestment                                    *float64 `av:"cashflowFromInvestment"`
	CashflowFromFinancing                                     *float64 `av:"cashflowFromFinancing"`
	ProceedsFromRepaymentsOfShortTermDebt                     *float64 `av:"proceedsFromRepaymentsOfShortTermDebt"`
	PaymentsForRepurchaseOfCommonStock                        *float64 `av:"paymentsForRepurchaseOfCommonStock"`
	PaymentsForRepurchaseOfEquity                             *float64 `av:"paymentsForRepurchaseOfEquity"`
	PaymentsForRepurchaseOfPreferredStock                     *float64 `av:"paymentsForRepurchaseOfPreferredStock"`
	DividendPayout                                            *float64 `av:"dividendPayout"`
	DividendPayoutCommonStock                                 *float64 `av:"dividendPayoutCommonStock"`
	DividendPayoutPreferredStock                              *float64 `av:"dividendPayoutPreferredStock"`
	ProceedsFromIssuanceOfCommonStock                         *float64 `av:"proceedsFromIssuanceOfCommonStock"`
	ProceedsFromIssuanceOfLongTermDebtAndCapitalSecuritiesNet *float64 `av:"proceedsFromIssuanceOfLongTermDebtAndCapitalSecuritiesNet"`
	ProceedsFromIssuanceOfPreferredStock                      *float64 `av:"proceedsFromIssuanceOfPreferredStock"`
	ProceedsFromRepurchaseOfEquity                            *float64 `av:"proceedsFromRepurchaseOfEquity"`
	ProceedsFromSaleOfTreasuryStock                           *float64 `av:"proceedsFromSaleOfTreasuryStock"`
	ChangeInCashAndCashEquivalents                            *float64 `av:"changeInCashAndCashEquivalents"`
	ChangeInExchangeRate                                      *float64 `av:"changeInExchangeRate"`
	NetIncome                                                 *float64 `av:"netIncome"`
}
