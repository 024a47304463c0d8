package game

import (
	"context"
	"time"

	"github.com/opencourt/court-booking-backend/booking"
)

type GameRepository interface {
	InsertGameWithBooking(ctx context.Context, g Game, slot booking.Booking) (Game, booking.Booking, error)
	GetGameByID(ctx context.Context, id string) (Game, error)
	AddRequest(ctx context.Context, gameID, userID, comment string) error
	AcceptRequest(ctx context.Context, gameID, userID string) error
	RemoveRequest(ctx context.Context, gameID, userID string) error
	CancelGame(ctx context.Context, gameID string) error
	RecomputeMatchFull(ctx context.Context, gameID string) (bool, error)
	GetVenueHours(ctx context.Context, venueID string) (int, int, error)
	GetPlayers(ctx context.Context, gameID string) ([]PlayerProfile, error)
	GetRequests(ctx context.Context, gameID string) ([]RequestProfile, error)
	ListPublicUpcoming(ctx context.Context, coords *Coordinates, page, limit int) ([]Summary, int, error)
	ListForUser(ctx context.Context, userID string) ([]Summary, error)
}

type Service struct {
	repo GameRepository
}

func NewService(repo GameRepository) *Service {
	return &Service{repo: repo}
}

type CreateGameParams struct {
	Sport       string
	VenueID     string
	CourtNumber int
	StartTime   time.Time
	EndTime     time.Time
	Visibility  string
	MaxPlayers  int
	Instruction string
	AdminID     string
	Amount      int
}

// CreateGame validates the window against the venue's opening hours,
// claims the court slot and creates the game with the admin as sole
// player. Slot claim and game creation commit together.
func (s *Service) CreateGame(ctx context.Context, params CreateGameParams) (Game, error) {
	if !params.EndTime.After(params.StartTime) {
		return Game{}, ErrInvalidWindow
	}

	if params.MaxPlayers < MinPlayers || params.MaxPlayers > MaxPlayers {
		return Game{}, ErrInvalidCapacity
	}

	if params.Visibility == "" {
		params.Visibility = VisibilityPublic
	}

	if params.Visibility != VisibilityPublic && params.Visibility != VisibilityPrivate {
		return Game{}, ErrInvalidVisibility
	}

	opening, closing, err := s.repo.GetVenueHours(ctx, params.VenueID)

	if err != nil {
		return Game{}, err
	}

	if !withinOpeningHours(params.StartTime, params.EndTime, opening, closing) {
		return Game{}, ErrOutsideOpeningHours
	}

	newGame := Game{
		Sport:       params.Sport,
		VenueID:     params.VenueID,
		StartTime:   params.StartTime,
		EndTime:     params.EndTime,
		Visibility:  params.Visibility,
		MaxPlayers:  params.MaxPlayers,
		Instruction: params.Instruction,
		AdminID:     params.AdminID,
	}

	slot := booking.Booking{
		VenueID:     params.VenueID,
		CourtNumber: params.CourtNumber,
		StartTime:   params.StartTime,
		EndTime:     params.EndTime,
		UserID:      params.AdminID,
		Amount:      params.Amount,
	}

	created, _, err := s.repo.InsertGameWithBooking(ctx, newGame, slot)

	if err != nil {
		return Game{}, err
	}

	return created, nil
}

func (s *Service) FindGameByID(ctx context.Context, id string) (Game, error) {
	game, err := s.repo.GetGameByID(ctx, id)

	if err != nil {
		return Game{}, err
	}

	game.Status = game.EffectiveStatus(time.Now())

	return game, nil
}

// RequestJoin records a join request. A user who already plays or
// already has an outstanding request is rejected.
func (s *Service) RequestJoin(ctx context.Context, gameID, userID, comment string) error {
	return s.repo.AddRequest(ctx, gameID, userID, comment)
}

// AcceptRequest is admin-only. The repository re-checks capacity under
// the game row lock, so an over-capacity accept fails with ErrMatchFull
// and changes nothing.
func (s *Service) AcceptRequest(ctx context.Context, gameID, adminID, userID string) (Game, error) {
	game, err := s.repo.GetGameByID(ctx, gameID)

	if err != nil {
		return Game{}, err
	}

	if game.AdminID != adminID {
		return Game{}, ErrNotAllowed
	}

	if err := s.repo.AcceptRequest(ctx, gameID, userID); err != nil {
		return Game{}, err
	}

	return s.repo.GetGameByID(ctx, gameID)
}

func (s *Service) RejectRequest(ctx context.Context, gameID, adminID, userID string) error {
	game, err := s.repo.GetGameByID(ctx, gameID)

	if err != nil {
		return err
	}

	if game.AdminID != adminID {
		return ErrNotAllowed
	}

	return s.repo.RemoveRequest(ctx, gameID, userID)
}

// CancelGame soft-terminates the game and releases its booking.
func (s *Service) CancelGame(ctx context.Context, gameID, adminID string) error {
	game, err := s.repo.GetGameByID(ctx, gameID)

	if err != nil {
		return err
	}

	if game.AdminID != adminID {
		return ErrNotAllowed
	}

	if game.Status != StatusActive {
		return ErrGameNotActive
	}

	return s.repo.CancelGame(ctx, gameID)
}

// RecomputeMatchFull serves the toggle endpoint. The flag is derived
// only: the roster is the single source of truth, so "toggling" means
// re-deriving and reporting the result.
func (s *Service) RecomputeMatchFull(ctx context.Context, gameID, callerID string) (bool, error) {
	game, err := s.repo.GetGameByID(ctx, gameID)

	if err != nil {
		return false, err
	}

	if game.AdminID != callerID {
		return false, ErrNotAllowed
	}

	return s.repo.RecomputeMatchFull(ctx, gameID)
}

func (s *Service) GamePlayers(ctx context.Context, gameID string) ([]PlayerProfile, error) {
	return s.repo.GetPlayers(ctx, gameID)
}

func (s *Service) GameRequests(ctx context.Context, gameID string) ([]RequestProfile, error) {
	return s.repo.GetRequests(ctx, gameID)
}

// ListPublicUpcoming returns one page of the public games directory,
// nearest venue first when coordinates are given.
func (s *Service) ListPublicUpcoming(ctx context.Context, coords *Coordinates, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}

	if limit < 1 || limit > 100 {
		limit = 10
	}

	summaries, total, err := s.repo.ListPublicUpcoming(ctx, coords, page, limit)

	if err != nil {
		return Page{}, err
	}

	return Page{
		Page:  page,
		Limit: limit,
		Total: total,
		Games: summaries,
	}, nil
}

func (s *Service) ListUpcomingForUser(ctx context.Context, userID string) ([]Summary, error) {
	return s.repo.ListForUser(ctx, userID)
}

// withinOpeningHours compares the window against the venue's
// minutes-of-day schedule. The window must fall on a single calendar
// day; a window ending exactly at midnight counts as minute 1440 of
// the previous day.
func withinOpeningHours(start, end time.Time, opening, closing int) bool {
	startMinute := start.Hour()*60 + start.Minute()
	endMinute := end.Hour()*60 + end.Minute()

	lastDay := end

	if endMinute == 0 {
		endMinute = 24 * 60
		lastDay = end.Add(-time.Minute)
	}

	sy, sm, sd := start.Date()
	ey, em, ed := lastDay.Date()

	if sy != ey || sm != em || sd != ed {
		return false
	}

	return startMinute >= opening && endMinute <= closing
}
