package domain

// AggregatedEventData is the result of scanning a user's events,
// appointments, expenses and closed clients inside one calendar month.
// It is computed fresh on every call and never persisted.
type AggregatedEventData struct {
	AppointmentsBooked int      `json:"appointments_booked"`
	MarketingExpenses  float64  `json:"marketing_expenses"`
	AnnuitySales       float64  `json:"annuity_sales"`
	AUMSales           float64  `json:"aum_sales"`
	LifeSales          float64  `json:"life_sales"`
	NewClients         int      `json:"new_clients"`
	ClientNames        []string `json:"client_names"`
}
