package booking

import "github.com/skinlab011/salon-booking/internal/schedule"

type AvailabilityInput struct {
	Date            string // YYYY-MM-DD
	DurationMinutes int
}

// Availability is the full answer for one date: every candidate slot
// plus the subset that conflicts with existing bookings. Booked slots
// stay in Slots so the client renders them as taken instead of
// silently shrinking the grid.
type Availability struct {
	Slots       []string           `json:"slots"`
	BookedSlots []string           `json:"booked_slots"`
	Closed      bool               `json:"closed"`
	Hours       *schedule.DayHours `json:"hours,omitempty"`
}
