package venue

import "time"

type Venue struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Phone   string  `json:"phone,omitempty"`
	// minutes from midnight
	OpeningTime int       `json:"openingTime"`
	ClosingTime int       `json:"closingTime"`
	OwnerID     string    `json:"ownerId,omitempty"`
	Courts      []Court   `json:"courts"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Court is a stable sub-resource identified by (venueId, courtNumber).
type Court struct {
	Number int    `json:"courtNumber"`
	Name   string `json:"name,omitempty"`
}

// Page is one directory page plus pagination metadata.
type Page struct {
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
	Total  int     `json:"total"`
	Venues []Venue `json:"venues"`
}

// Coordinates are optional on listings; when present the page is
// ordered by distance from them.
type Coordinates struct {
	Lat float64
	Lng float64
}
