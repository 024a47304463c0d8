package venue

import (
	"context"
	"errors"
	"fmt"
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

const venueColumns = `id, name, address, lat, lng, phone, opening_time, closing_time, COALESCE(owner_id::text, ''), created_at`

func scanVenue(row pgx.Row) (Venue, error) {
	var v Venue
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Address,
		&v.Lat,
		&v.Lng,
		&v.Phone,
		&v.OpeningTime,
		&v.ClosingTime,
		&v.OwnerID,
		&v.CreatedAt,
	)
	return v, err
}

// ListVenues returns one page of venues with their courts. With
// coordinates the page is ordered by earth_distance (the database's
// spatial index); without, by name.
func (r *Repository) ListVenues(ctx context.Context, coords *Coordinates, page, limit int) ([]Venue, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var total int

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM opencourt.venues`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count venues: %w", err)
	}

	var rows pgx.Rows
	var err error

	if coords != nil {
		sql := `SELECT ` + venueColumns + `
            FROM opencourt.venues
            ORDER BY earth_distance(ll_to_earth(lat, lng), ll_to_earth($1, $2))
            LIMIT $3 OFFSET $4`
		rows, err = r.pool.Query(ctx, sql, coords.Lat, coords.Lng, limit, (page-1)*limit)
	} else {
		sql := `SELECT ` + venueColumns + `
            FROM opencourt.venues
            ORDER BY name
            LIMIT $1 OFFSET $2`
		rows, err = r.pool.Query(ctx, sql, limit, (page-1)*limit)
	}

	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch venues: %w", err)
	}

	defer rows.Close()

	venues := []Venue{}

	for rows.Next() {
		venue, err := scanVenue(rows)

		if err != nil {
			return nil, 0, fmt.Errorf("error scanning venue row: %w", err)
		}

		venue.Courts = []Court{}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating venue rows: %w", err)
	}

	venues, err = r.attachCourts(ctx, venues)

	if err != nil {
		return nil, 0, err
	}

	return venues, total, nil
}

func (r *Repository) GetVenueByID(ctx context.Context, id string) (Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql := `SELECT ` + venueColumns + ` FROM opencourt.venues WHERE id = $1`

	venue, err := scanVenue(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Venue{}, ErrVenueNotFound
	}

	if err != nil {
		return Venue{}, fmt.Errorf("failed to fetch venue with id %v: %w", id, err)
	}

	venue.Courts = []Court{}

	venues, err := r.attachCourts(ctx, []Venue{venue})

	if err != nil {
		return Venue{}, err
	}

	return venues[0], nil
}

func (r *Repository) attachCourts(ctx context.Context, venues []Venue) ([]Venue, error) {
	if len(venues) == 0 {
		return venues, nil
	}

	ids := make([]string, 0, len(venues))

	for _, v := range venues {
		ids = append(ids, v.ID)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT venue_id, court_number, name
         FROM opencourt.courts
         WHERE venue_id = ANY($1)
         ORDER BY venue_id, court_number`,
		ids,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}

	defer rows.Close()

	courts := map[string][]Court{}

	for rows.Next() {
		var venueID string
		var court Court

		if err := rows.Scan(&venueID, &court.Number, &court.Name); err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", err)
		}

		courts[venueID] = append(courts[venueID], court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", err)
	}

	for i := range venues {
		if list, ok := courts[venues[i].ID]; ok {
			venues[i].Courts = list
		}
	}

	return venues, nil
}
