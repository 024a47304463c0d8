package booking

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is an exclusive claim on a venue's court for a time
// interval. Two non-cancelled bookings for the same (venue, court) key
// never overlap.
type Booking struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venueId"`
	CourtNumber int       `json:"courtNumber"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	UserID      string    `json:"userId"`
	GameID      string    `json:"gameId,omitempty"`
	Amount      int       `json:"amount"`
	Paid        bool      `json:"paid"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Filter narrows a booking listing. Zero values impose no constraint,
// set fields are combined with AND.
type Filter struct {
	VenueID  string
	Status   string
	Paid     *bool
	Date     time.Time
	From     time.Time
	To       time.Time
	Upcoming bool
}
