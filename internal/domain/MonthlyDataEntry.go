package domain

import (
	"time"
)

// MonthlyDataEntry is the per-advisor monthly rollup shown on the dashboard.
// One row per (user_id, month_year), month_year formatted "YYYY-MM".
//
// Fields can be populated two ways: typed in by the advisor, or filled by the
// event aggregation passes. A value of 0 is treated as "never manually set"
// and is fair game for aggregation to overwrite; any non-zero value is
// considered manual and is preserved.
type MonthlyDataEntry struct {
	ID                string    `json:"id"`
	UserID            int       `json:"user_id"`
	MonthYear         string    `json:"month_year"`
	NewClients        int       `json:"new_clients"`
	NewAppointments   int       `json:"new_appointments"`
	NewLeads          int       `json:"new_leads"`
	AnnuitySales      float64   `json:"annuity_sales"`
	AUMSales          float64   `json:"aum_sales"`
	LifeSales         float64   `json:"life_sales"`
	MarketingExpenses float64   `json:"marketing_expenses"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// MonthlyEntryPatch is a partial update of a MonthlyDataEntry. Nil fields are
// not written. Used by the recalculation pass, which only touches fields that
// moved from zero to a computed value.
type MonthlyEntryPatch struct {
	NewClients        *int     `json:"new_clients"`
	NewAppointments   *int     `json:"new_appointments"`
	AnnuitySales      *float64 `json:"annuity_sales"`
	AUMSales          *float64 `json:"aum_sales"`
	LifeSales         *float64 `json:"life_sales"`
	MarketingExpenses *float64 `json:"marketing_expenses"`
}

// IsEmpty reports whether the patch would write nothing.
func (p *MonthlyEntryPatch) IsEmpty() bool {
	return p.NewClients == nil &&
		p.NewAppointments == nil &&
		p.AnnuitySales == nil &&
		p.AUMSales == nil &&
		p.LifeSales == nil &&
		p.MarketingExpenses == nil
}
