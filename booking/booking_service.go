package booking

import (
	"context"
)

type BookingRepository interface {
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, filter Filter, page, limit int) ([]Booking, int, error)
	SetBookingStatus(ctx context.Context, id string, status string) error
	GetVenueOwner(ctx context.Context, venueID string) (string, error)
}

type Service struct {
	repo BookingRepository
}

func NewService(repo BookingRepository) *Service {
	return &Service{repo: repo}
}

// Reserve claims the slot. The overlap check and the insert run as one
// transaction in the repository, so concurrent claims for the same
// court cannot both succeed.
func (s *Service) Reserve(ctx context.Context, booking Booking) (Booking, error) {
	if !booking.EndTime.After(booking.StartTime) {
		return Booking{}, ErrInvalidSlot
	}

	booking.Status = StatusPending

	return s.repo.InsertBooking(ctx, booking)
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *Service) ListBookings(ctx context.Context, filter Filter, page, limit int) ([]Booking, int, error) {
	if page < 1 {
		page = 1
	}

	if limit < 1 || limit > 100 {
		limit = 10
	}

	return s.repo.ListBookings(ctx, filter, page, limit)
}

// AcceptBooking confirms a pending booking. Only the venue owner may
// review bookings.
func (s *Service) AcceptBooking(ctx context.Context, id, reviewerID string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status == StatusCancelled || booking.Status == StatusConfirmed {
		return ErrInvalidBookingState
	}

	if err := s.checkVenueOwner(ctx, booking.VenueID, reviewerID); err != nil {
		return err
	}

	return s.repo.SetBookingStatus(ctx, id, StatusConfirmed)
}

func (s *Service) RejectBooking(ctx context.Context, id, reviewerID string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status == StatusCancelled {
		return ErrInvalidBookingState
	}

	if err := s.checkVenueOwner(ctx, booking.VenueID, reviewerID); err != nil {
		return err
	}

	return s.repo.SetBookingStatus(ctx, id, StatusCancelled)
}

// CancelBooking frees the slot. Cancelling twice is not an error.
func (s *Service) CancelBooking(ctx context.Context, id, userID string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status == StatusCancelled {
		return nil
	}

	if booking.UserID != userID {
		owner, err := s.repo.GetVenueOwner(ctx, booking.VenueID)

		if err != nil {
			return err
		}

		if owner == "" || owner != userID {
			return ErrNotAllowed
		}
	}

	return s.repo.SetBookingStatus(ctx, id, StatusCancelled)
}

func (s *Service) checkVenueOwner(ctx context.Context, venueID, reviewerID string) error {
	owner, err := s.repo.GetVenueOwner(ctx, venueID)

	if err != nil {
		return err
	}

	if owner == "" || owner != reviewerID {
		return ErrNotAllowed
	}

	return nil
}
