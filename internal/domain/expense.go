package domain

import (
	"time"
)

// MarketingExpense is one cost line attached to a marketing event
// (venue, mailers, food, advertising).
type MarketingExpense struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Category  string    `json:"category"`
	TotalCost float64   `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
