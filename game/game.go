package game

import "time"

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"

	MinPlayers = 1
	MaxPlayers = 50
)

// Game is a matchmaking session tied to a court booking. The admin is
// always part of the players roster. MatchFull is derived from the
// roster and kept in lockstep inside every mutating transaction; it is
// never independent truth.
type Game struct {
	ID          string        `json:"id"`
	Sport       string        `json:"sport"`
	VenueID     string        `json:"venueId"`
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	Visibility  string        `json:"visibility"`
	MaxPlayers  int           `json:"maxPlayers"`
	Instruction string        `json:"instruction,omitempty"`
	AdminID     string        `json:"adminId"`
	Status      string        `json:"status"`
	MatchFull   bool          `json:"matchFull"`
	BookingID   string        `json:"bookingId,omitempty"`
	Players     []string      `json:"players"`
	Requests    []JoinRequest `json:"requests"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// EffectiveStatus derives completion from the clock: an active game
// whose window has fully elapsed reports completed. Nothing mutates
// stored status based on time.
func (g Game) EffectiveStatus(now time.Time) string {
	if g.Status == StatusActive && !g.EndTime.After(now) {
		return StatusCompleted
	}

	return g.Status
}

// JoinRequest is a pending application to become a player. At most one
// outstanding request per user per game.
type JoinRequest struct {
	UserID      string    `json:"userId"`
	Comment     string    `json:"comment,omitempty"`
	RequestedAt time.Time `json:"requestedAt"`
}

// PlayerProfile is the public slice of a user shown on game rosters.
type PlayerProfile struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
	Skill    string `json:"skill,omitempty"`
}

// RequestProfile is a join request joined with the requester's profile,
// shown to the game admin.
type RequestProfile struct {
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Image       string    `json:"image,omitempty"`
	Skill       string    `json:"skill,omitempty"`
	Comment     string    `json:"comment,omitempty"`
	RequestedAt time.Time `json:"requestedAt"`
}

// Coordinates are optional on the public directory; when present the
// page is ordered by distance from them.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Page is one page of the public games directory.
type Page struct {
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Total int       `json:"total"`
	Games []Summary `json:"games"`
}

// Summary is the directory view of a game: the aggregate root joined
// with venue info and the resolved roster, assembled read-side.
type Summary struct {
	ID          string          `json:"id"`
	Sport       string          `json:"sport"`
	VenueID     string          `json:"venueId"`
	VenueName   string          `json:"venueName"`
	Address     string          `json:"address"`
	CourtNumber int             `json:"courtNumber,omitempty"`
	StartTime   time.Time       `json:"startTime"`
	EndTime     time.Time       `json:"endTime"`
	Visibility  string          `json:"visibility"`
	MaxPlayers  int             `json:"maxPlayers"`
	MatchFull   bool            `json:"matchFull"`
	Status      string          `json:"status"`
	AdminID     string          `json:"adminId"`
	AdminName   string          `json:"adminName"`
	AdminImage  string          `json:"adminImage,omitempty"`
	IsUserAdmin bool            `json:"isUserAdmin,omitempty"`
	Players     []PlayerProfile `json:"players"`
}
