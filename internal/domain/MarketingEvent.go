package domain

import (
	"time"
)

// MarketingEvent represents a marketing event (seminar, dinner, workshop)
// hosted by an advisor. Appointments, expenses and closed clients hang off it.
type MarketingEvent struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	EventType string    `json:"event_type"`
	EventDate time.Time `json:"event_date"`
	Location  *string   `json:"location"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateMarketingEventRequest struct {
	ID        string     `json:"id"`
	Name      *string    `json:"name"`
	EventType *string    `json:"event_type"`
	EventDate *time.Time `json:"event_date"`
	Location  *string    `json:"location"`
	Notes     *string    `json:"notes"`
}
