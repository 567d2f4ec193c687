package domain

import (
	"time"
)

// EventAppointment tracks appointments generated by a marketing event,
// split between bookings captured at the event and follow-ups afterwards.
type EventAppointment struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	SetAtEvent    int       `json:"set_at_event"`
	SetAfterEvent int       `json:"set_after_event"`
	Attended      int       `json:"attended"`
	NoShows       int       `json:"no_shows"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Booked is the total number of appointments generated by the event.
func (a *EventAppointment) Booked() int {
	return a.SetAtEvent + a.SetAfterEvent
}
