package domain

// MonthlyBreakdownSlot is one calendar month of the year-to-date view.
type MonthlyBreakdownSlot struct {
	Month   int     `json:"month"`
	Clients int     `json:"clients"`
	Value   float64 `json:"value"`
}

// YTDSummary is the year-to-date rollup over a user's closed clients.
// Value per client = annuity premium + life premium + AUM amount +
// financial planning fee.
type YTDSummary struct {
	Year                   int                      `json:"year"`
	TotalClients           int                      `json:"total_clients"`
	TotalAnnuity           float64                  `json:"total_annuity"`
	TotalLife              float64                  `json:"total_life"`
	TotalAUM               float64                  `json:"total_aum"`
	TotalFinancialPlanning float64                  `json:"total_financial_planning"`
	TotalValue             float64                  `json:"total_value"`
	AverageDealSize        float64                  `json:"average_deal_size"`
	MonthlyBreakdown       [12]MonthlyBreakdownSlot `json:"monthly_breakdown"`
}
