package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, timeout time.Duration) *Repository {
	return &Repository{pool: pool, timeout: timeout}
}

const bookingColumns = `id, venue_id, court_number, start_time, end_time, user_id, COALESCE(game_id::text, ''), amount, paid, status, created_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID,
		&b.VenueID,
		&b.CourtNumber,
		&b.StartTime,
		&b.EndTime,
		&b.UserID,
		&b.GameID,
		&b.Amount,
		&b.Paid,
		&b.Status,
		&b.CreatedAt,
	)
	return b, err
}

// InsertTx claims the slot inside the caller's transaction. The court
// row is locked before the overlap check, so two concurrent claims for
// the same court serialize and the loser sees the winner's row. Locking
// the overlapping bookings themselves is not enough: when the slot is
// free there is nothing to lock, and both claims would insert.
func InsertTx(ctx context.Context, tx pgx.Tx, booking Booking) (Booking, error) {
	var venueExists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM opencourt.venues WHERE id = $1)`,
		booking.VenueID,
	).Scan(&venueExists)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to check venue: %w", err)
	}

	if !venueExists {
		return Booking{}, ErrVenueNotFound
	}

	var courtNumber int
	err = tx.QueryRow(ctx,
		`SELECT court_number FROM opencourt.courts
         WHERE venue_id = $1 AND court_number = $2
         FOR UPDATE`,
		booking.VenueID, booking.CourtNumber,
	).Scan(&courtNumber)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrCourtNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to lock court: %w", err)
	}

	var taken bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (
            SELECT 1 FROM opencourt.bookings
            WHERE venue_id = $1 AND court_number = $2
              AND status <> 'cancelled'
              AND start_time < $4 AND end_time > $3)`,
		booking.VenueID, booking.CourtNumber, booking.StartTime, booking.EndTime,
	).Scan(&taken)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to check slot overlap: %w", err)
	}

	if taken {
		return Booking{}, ErrSlotTaken
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO opencourt.bookings
             (venue_id, court_number, start_time, end_time, user_id, game_id, amount, status)
         VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)
         RETURNING id, created_at`,
		booking.VenueID,
		booking.CourtNumber,
		booking.StartTime,
		booking.EndTime,
		booking.UserID,
		booking.GameID,
		booking.Amount,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

// CancelTx frees the slot inside the caller's transaction. Cancelling
// an already-cancelled booking is a no-op.
func CancelTx(ctx context.Context, tx pgx.Tx, id string) error {
	_, err := tx.Exec(ctx,
		`UPDATE opencourt.bookings SET status = 'cancelled' WHERE id = $1`,
		id,
	)

	if err != nil {
		return fmt.Errorf("failed to cancel booking '%v': %w", id, err)
	}

	return nil
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	inserted, err := InsertTx(ctx, tx, booking)

	if err != nil {
		return Booking{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("failed to commit booking: %w", err)
	}

	return inserted, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql := `SELECT ` + bookingColumns + ` FROM opencourt.bookings WHERE id = $1;`

	booking, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) ListBookings(ctx context.Context, filter Filter, page, limit int) ([]Booking, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	where := []string{"true"}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.VenueID != "" {
		where = append(where, "venue_id = "+arg(filter.VenueID))
	}

	if filter.Status != "" {
		where = append(where, "status = "+arg(filter.Status))
	}

	if filter.Paid != nil {
		where = append(where, "paid = "+arg(*filter.Paid))
	}

	if !filter.Date.IsZero() {
		dayStart := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, filter.Date.Location())
		where = append(where, "start_time >= "+arg(dayStart))
		where = append(where, "start_time < "+arg(dayStart.AddDate(0, 0, 1)))
	}

	if !filter.From.IsZero() && !filter.To.IsZero() {
		where = append(where, "start_time >= "+arg(filter.From))
		where = append(where, "start_time <= "+arg(filter.To))
	}

	if filter.Upcoming {
		where = append(where, "start_time >= "+arg(time.Now()))
		where = append(where, "status IN ('pending', 'confirmed')")
	}

	condition := strings.Join(where, " AND ")

	var total int
	countSQL := `SELECT COUNT(*) FROM opencourt.bookings WHERE ` + condition

	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	listSQL := `SELECT ` + bookingColumns + ` FROM opencourt.bookings WHERE ` + condition +
		` ORDER BY start_time LIMIT ` + arg(limit) + ` OFFSET ` + arg((page-1)*limit)

	rows, err := r.pool.Query(ctx, listSQL, args...)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	bookings := []Booking{}

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, 0, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, total, nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`UPDATE opencourt.bookings SET status = $1 WHERE id = $2`,
		status, id,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) GetVenueOwner(ctx context.Context, venueID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var ownerID string
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(owner_id::text, '') FROM opencourt.venues WHERE id = $1`,
		venueID,
	).Scan(&ownerID)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrVenueNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to fetch venue owner: %w", err)
	}

	return ownerID, nil
}
