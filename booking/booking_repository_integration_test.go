//go:build integration

package booking_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	bk "github.com/opencourt/court-booking-backend/booking"
	"github.com/stretchr/testify/require"
)

// Runs against a real database: TEST_DATABASE_URL=... go test -tags integration ./booking

func newIntegrationRepo(t *testing.T) (*bk.Repository, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")

	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.Nil(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../database/setup.sql")
	require.Nil(t, err)

	_, err = pool.Exec(ctx, string(schema))
	require.Nil(t, err)

	return bk.NewRepository(pool, 5*time.Second), pool
}

// seedCourt creates a fresh venue with one court and a user, so each
// test books against its own slot space.
func seedCourt(t *testing.T, pool *pgxpool.Pool) (string, string) {
	t.Helper()
	ctx := context.Background()

	var userID string
	err := pool.QueryRow(ctx,
		`INSERT INTO opencourt.users (email, phone_number, username, password_hash)
         VALUES (gen_random_uuid()::text || '@example.com', gen_random_uuid()::text, 'booker', 'x')
         RETURNING id`,
	).Scan(&userID)
	require.Nil(t, err)

	var venueID string
	err = pool.QueryRow(ctx,
		`INSERT INTO opencourt.venues (name, address, lat, lng)
         VALUES ('Court Central', 'Main Street', 27.7172, 85.3240)
         RETURNING id`,
	).Scan(&venueID)
	require.Nil(t, err)

	_, err = pool.Exec(ctx,
		`INSERT INTO opencourt.courts (venue_id, court_number) VALUES ($1, 1)`,
		venueID,
	)
	require.Nil(t, err)

	return venueID, userID
}

func TestInsertBookingOverlap(t *testing.T) {
	repo, pool := newIntegrationRepo(t)
	venueID, userID := seedCourt(t, pool)
	ctx := context.Background()

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	book := func(start, end time.Time) (bk.Booking, error) {
		return repo.InsertBooking(ctx, bk.Booking{
			VenueID:     venueID,
			CourtNumber: 1,
			StartTime:   start,
			EndTime:     end,
			UserID:      userID,
			Status:      bk.StatusPending,
		})
	}

	first, err := book(day.Add(10*time.Hour), day.Add(11*time.Hour))
	require.Nil(t, err)

	// back to back is not an overlap
	_, err = book(day.Add(11*time.Hour), day.Add(12*time.Hour))
	require.Nil(t, err)

	// straddles the boundary of both
	_, err = book(day.Add(10*time.Hour+30*time.Minute), day.Add(11*time.Hour+30*time.Minute))
	require.ErrorIs(t, err, bk.ErrSlotTaken)

	// contained inside an existing slot
	_, err = book(day.Add(10*time.Hour+15*time.Minute), day.Add(10*time.Hour+45*time.Minute))
	require.ErrorIs(t, err, bk.ErrSlotTaken)

	// cancelled bookings do not block
	require.Nil(t, repo.SetBookingStatus(ctx, first.ID, bk.StatusCancelled))

	_, err = book(day.Add(10*time.Hour+15*time.Minute), day.Add(10*time.Hour+45*time.Minute))
	require.Nil(t, err)
}

func TestInsertBookingConcurrentClaims(t *testing.T) {
	repo, pool := newIntegrationRepo(t)
	venueID, userID := seedCourt(t, pool)

	start := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	const claims = 8
	errs := make(chan error, claims)
	var wg sync.WaitGroup

	for range claims {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.InsertBooking(context.Background(), bk.Booking{
				VenueID:     venueID,
				CourtNumber: 1,
				StartTime:   start,
				EndTime:     start.Add(time.Hour),
				UserID:      userID,
				Status:      bk.StatusPending,
			})
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	booked := 0

	for err := range errs {
		if err == nil {
			booked++
		} else {
			require.ErrorIs(t, err, bk.ErrSlotTaken)
		}
	}

	require.Equal(t, 1, booked)
}
