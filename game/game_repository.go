package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opencourt/court-booking-backend/booking"
)

type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, timeout time.Duration) *Repository {
	return &Repository{pool: pool, timeout: timeout}
}

func (r *Repository) begin(ctx context.Context) (context.Context, context.CancelFunc, pgx.Tx, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)

	tx, err := r.pool.Begin(ctx)

	if err != nil {
		cancel()
		return nil, nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return ctx, cancel, tx, nil
}

// InsertGameWithBooking creates the game, seats the admin as the sole
// player and claims the court slot, all in one transaction. The slot
// overlap check runs under the same transaction, so the game is never
// visible without its booking or vice versa.
func (r *Repository) InsertGameWithBooking(ctx context.Context, game Game, slot booking.Booking) (Game, booking.Booking, error) {
	ctx, cancel, tx, err := r.begin(ctx)

	if err != nil {
		return Game{}, booking.Booking{}, err
	}

	defer cancel()
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO opencourt.games
             (sport, venue_id, start_time, end_time, visibility, max_players, instruction, admin_id, status, match_full)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active', $9)
         RETURNING id, created_at`,
		game.Sport,
		game.VenueID,
		game.StartTime,
		game.EndTime,
		game.Visibility,
		game.MaxPlayers,
		game.Instruction,
		game.AdminID,
		game.MaxPlayers <= 1,
	).Scan(&game.ID, &game.CreatedAt)

	if err != nil {
		return Game{}, booking.Booking{}, fmt.Errorf("failed to insert game: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO opencourt.game_players (game_id, user_id) VALUES ($1, $2)`,
		game.ID, game.AdminID,
	)

	if err != nil {
		return Game{}, booking.Booking{}, fmt.Errorf("failed to seat game admin: %w", err)
	}

	slot.GameID = game.ID
	slot.Status = booking.StatusPending

	slot, err = booking.InsertTx(ctx, tx, slot)

	if err != nil {
		return Game{}, booking.Booking{}, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE opencourt.games SET booking_id = $1 WHERE id = $2`,
		slot.ID, game.ID,
	)

	if err != nil {
		return Game{}, booking.Booking{}, fmt.Errorf("failed to link booking to game: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Game{}, booking.Booking{}, fmt.Errorf("failed to commit game creation: %w", err)
	}

	game.Status = StatusActive
	game.MatchFull = game.MaxPlayers <= 1
	game.BookingID = slot.ID
	game.Players = []string{game.AdminID}
	game.Requests = []JoinRequest{}

	return game, slot, nil
}

func (r *Repository) GetGameByID(ctx context.Context, id string) (Game, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var game Game
	err := r.pool.QueryRow(ctx,
		`SELECT id, sport, venue_id, start_time, end_time, visibility, max_players,
                instruction, admin_id, status, match_full, COALESCE(booking_id::text, ''), created_at
         FROM opencourt.games WHERE id = $1`,
		id,
	).Scan(
		&game.ID,
		&game.Sport,
		&game.VenueID,
		&game.StartTime,
		&game.EndTime,
		&game.Visibility,
		&game.MaxPlayers,
		&game.Instruction,
		&game.AdminID,
		&game.Status,
		&game.MatchFull,
		&game.BookingID,
		&game.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Game{}, ErrGameNotFound
	}

	if err != nil {
		return Game{}, fmt.Errorf("failed to fetch game with id %v: %w", id, err)
	}

	game.Players = []string{}
	game.Requests = []JoinRequest{}

	rows, err := r.pool.Query(ctx,
		`SELECT user_id FROM opencourt.game_players WHERE game_id = $1 ORDER BY joined_at`,
		id,
	)

	if err != nil {
		return Game{}, fmt.Errorf("failed to fetch game players: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var userID string

		if err := rows.Scan(&userID); err != nil {
			return Game{}, fmt.Errorf("error scanning player row: %w", err)
		}

		game.Players = append(game.Players, userID)
	}

	if err := rows.Err(); err != nil {
		return Game{}, fmt.Errorf("error iterating player rows: %w", err)
	}

	requestRows, err := r.pool.Query(ctx,
		`SELECT user_id, comment, requested_at FROM opencourt.game_requests
         WHERE game_id = $1 ORDER BY requested_at`,
		id,
	)

	if err != nil {
		return Game{}, fmt.Errorf("failed to fetch join requests: %w", err)
	}

	defer requestRows.Close()

	for requestRows.Next() {
		var request JoinRequest

		if err := requestRows.Scan(&request.UserID, &request.Comment, &request.RequestedAt); err != nil {
			return Game{}, fmt.Errorf("error scanning join request row: %w", err)
		}

		game.Requests = append(game.Requests, request)
	}

	if err := requestRows.Err(); err != nil {
		return Game{}, fmt.Errorf("error iterating join request rows: %w", err)
	}

	return game, nil
}

// AddRequest records a join request. The (game_id, user_id) primary key
// makes a second outstanding request from the same user impossible.
func (r *Repository) AddRequest(ctx context.Context, gameID, userID, comment string) error {
	ctx, cancel, tx, err := r.begin(ctx)

	if err != nil {
		return err
	}

	defer cancel()
	defer tx.Rollback(ctx)

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM opencourt.games WHERE id = $1`, gameID).Scan(&status)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrGameNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to fetch game: %w", err)
	}

	if status != StatusActive {
		return ErrGameNotActive
	}

	var alreadyPlaying bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM opencourt.game_players WHERE game_id = $1 AND user_id = $2)`,
		gameID, userID,
	).Scan(&alreadyPlaying)

	if err != nil {
		return fmt.Errorf("failed to check roster: %w", err)
	}

	if alreadyPlaying {
		return ErrDuplicateRequest
	}

	tag, err := tx.Exec(ctx,
		`INSERT INTO opencourt.game_requests (game_id, user_id, comment)
         VALUES ($1, $2, $3)
         ON CONFLICT (game_id, user_id) DO NOTHING`,
		gameID, userID, comment,
	)

	if err != nil {
		return fmt.Errorf("failed to insert join request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDuplicateRequest
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit join request: %w", err)
	}

	return nil
}

// AcceptRequest moves the user from requests to players in one
// transaction. The game row is locked first, so concurrent accepts on
// the same game serialize and capacity is re-checked under the lock;
// the roster can never exceed max_players.
func (r *Repository) AcceptRequest(ctx context.Context, gameID, userID string) error {
	ctx, cancel, tx, err := r.begin(ctx)

	if err != nil {
		return err
	}

	defer cancel()
	defer tx.Rollback(ctx)

	var maxPlayers int
	var status string
	err = tx.QueryRow(ctx,
		`SELECT max_players, status FROM opencourt.games WHERE id = $1 FOR UPDATE`,
		gameID,
	).Scan(&maxPlayers, &status)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrGameNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to lock game: %w", err)
	}

	if status != StatusActive {
		return ErrGameNotActive
	}

	var playerCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM opencourt.game_players WHERE game_id = $1`,
		gameID,
	).Scan(&playerCount)

	if err != nil {
		return fmt.Errorf("failed to count players: %w", err)
	}

	if playerCount >= maxPlayers {
		return ErrMatchFull
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM opencourt.game_requests WHERE game_id = $1 AND user_id = $2`,
		gameID, userID,
	)

	if err != nil {
		return fmt.Errorf("failed to remove join request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO opencourt.game_players (game_id, user_id) VALUES ($1, $2)`,
		gameID, userID,
	)

	if err != nil {
		return fmt.Errorf("failed to add player: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE opencourt.games SET match_full = ($1 >= max_players) WHERE id = $2`,
		playerCount+1, gameID,
	)

	if err != nil {
		return fmt.Errorf("failed to update match full flag: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit accept: %w", err)
	}

	return nil
}

func (r *Repository) RemoveRequest(ctx context.Context, gameID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM opencourt.game_requests WHERE game_id = $1 AND user_id = $2`,
		gameID, userID,
	)

	if err != nil {
		return fmt.Errorf("failed to remove join request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// CancelGame terminates the game and frees its booking in one
// transaction.
func (r *Repository) CancelGame(ctx context.Context, gameID string) error {
	ctx, cancel, tx, err := r.begin(ctx)

	if err != nil {
		return err
	}

	defer cancel()
	defer tx.Rollback(ctx)

	var bookingID string
	err = tx.QueryRow(ctx,
		`UPDATE opencourt.games SET status = 'cancelled'
         WHERE id = $1
         RETURNING COALESCE(booking_id::text, '')`,
		gameID,
	).Scan(&bookingID)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrGameNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to cancel game: %w", err)
	}

	if bookingID != "" {
		if err := booking.CancelTx(ctx, tx, bookingID); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit game cancellation: %w", err)
	}

	return nil
}

// RecomputeMatchFull re-derives the flag from the roster under the game
// row lock and returns the stored value.
func (r *Repository) RecomputeMatchFull(ctx context.Context, gameID string) (bool, error) {
	ctx, cancel, tx, err := r.begin(ctx)

	if err != nil {
		return false, err
	}

	defer cancel()
	defer tx.Rollback(ctx)

	var matchFull bool
	err = tx.QueryRow(ctx,
		`UPDATE opencourt.games g
         SET match_full = ((SELECT COUNT(*) FROM opencourt.game_players p WHERE p.game_id = g.id) >= g.max_players)
         WHERE g.id = $1
         RETURNING g.match_full`,
		gameID,
	).Scan(&matchFull)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrGameNotFound
	}

	if err != nil {
		return false, fmt.Errorf("failed to recompute match full flag: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit match full update: %w", err)
	}

	return matchFull, nil
}

func (r *Repository) GetVenueHours(ctx context.Context, venueID string) (int, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var opening, closing int
	err := r.pool.QueryRow(ctx,
		`SELECT opening_time, closing_time FROM opencourt.venues WHERE id = $1`,
		venueID,
	).Scan(&opening, &closing)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, booking.ErrVenueNotFound
	}

	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch venue hours: %w", err)
	}

	return opening, closing, nil
}

func (r *Repository) GetPlayers(ctx context.Context, gameID string) ([]PlayerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.checkGameExists(ctx, gameID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.username, u.image, u.skill
         FROM opencourt.game_players p
         JOIN opencourt.users u ON u.id = p.user_id
         WHERE p.game_id = $1
         ORDER BY p.joined_at`,
		gameID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}

	defer rows.Close()

	players := []PlayerProfile{}

	for rows.Next() {
		var player PlayerProfile

		if err := rows.Scan(&player.UserID, &player.Username, &player.Image, &player.Skill); err != nil {
			return nil, fmt.Errorf("error scanning player row: %w", err)
		}

		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player rows: %w", err)
	}

	return players, nil
}

func (r *Repository) GetRequests(ctx context.Context, gameID string) ([]RequestProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.checkGameExists(ctx, gameID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.username, u.email, u.image, u.skill, q.comment, q.requested_at
         FROM opencourt.game_requests q
         JOIN opencourt.users u ON u.id = q.user_id
         WHERE q.game_id = $1
         ORDER BY q.requested_at`,
		gameID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch join requests: %w", err)
	}

	defer rows.Close()

	requests := []RequestProfile{}

	for rows.Next() {
		var request RequestProfile

		err := rows.Scan(
			&request.UserID,
			&request.Username,
			&request.Email,
			&request.Image,
			&request.Skill,
			&request.Comment,
			&request.RequestedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning join request row: %w", err)
		}

		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating join request rows: %w", err)
	}

	return requests, nil
}

func (r *Repository) checkGameExists(ctx context.Context, gameID string) error {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM opencourt.games WHERE id = $1)`,
		gameID,
	).Scan(&exists)

	if err != nil {
		return fmt.Errorf("failed to check game: %w", err)
	}

	if !exists {
		return ErrGameNotFound
	}

	return nil
}

const summaryColumns = `
    g.id, g.sport, g.venue_id, v.name, v.address,
    COALESCE(b.court_number, 0),
    g.start_time, g.end_time, g.visibility, g.max_players, g.match_full,
    g.status, g.admin_id`

// ListPublicUpcoming returns one page of public active games whose
// window has not fully elapsed, with the roster resolved through one
// batch user fetch. With coordinates the page is ordered by
// earth_distance from the venue; without, by start time.
func (r *Repository) ListPublicUpcoming(ctx context.Context, coords *Coordinates, page, limit int) ([]Summary, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	const condition = `g.visibility = 'public' AND g.status = 'active' AND g.end_time > now()`

	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM opencourt.games g WHERE `+condition,
	).Scan(&total)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to count games: %w", err)
	}

	sql := `SELECT` + summaryColumns + `
        FROM opencourt.games g
        JOIN opencourt.venues v ON v.id = g.venue_id
        LEFT JOIN opencourt.bookings b ON b.id = g.booking_id
        WHERE ` + condition

	var summaries []Summary

	if coords != nil {
		sql += ` ORDER BY earth_distance(ll_to_earth(v.lat, v.lng), ll_to_earth($1, $2)), g.start_time
            LIMIT $3 OFFSET $4`
		summaries, err = r.querySummaries(ctx, sql, coords.Lat, coords.Lng, limit, (page-1)*limit)
	} else {
		sql += ` ORDER BY g.start_time LIMIT $1 OFFSET $2`
		summaries, err = r.querySummaries(ctx, sql, limit, (page-1)*limit)
	}

	if err != nil {
		return nil, 0, err
	}

	summaries, err = r.attachRosters(ctx, summaries)

	if err != nil {
		return nil, 0, err
	}

	return summaries, total, nil
}

// ListForUser returns not-yet-elapsed games the user admins or plays.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql := `SELECT` + summaryColumns + `
        FROM opencourt.games g
        JOIN opencourt.venues v ON v.id = g.venue_id
        LEFT JOIN opencourt.bookings b ON b.id = g.booking_id
        WHERE g.status = 'active' AND g.end_time > now()
          AND (g.admin_id = $1 OR EXISTS (
              SELECT 1 FROM opencourt.game_players p
              WHERE p.game_id = g.id AND p.user_id = $1))
        ORDER BY g.start_time`

	summaries, err := r.querySummaries(ctx, sql, userID)

	if err != nil {
		return nil, err
	}

	summaries, err = r.attachRosters(ctx, summaries)

	if err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].IsUserAdmin = summaries[i].AdminID == userID
	}

	return summaries, nil
}

func (r *Repository) querySummaries(ctx context.Context, sql string, args ...any) ([]Summary, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}

	defer rows.Close()

	summaries := []Summary{}

	for rows.Next() {
		var s Summary

		err := rows.Scan(
			&s.ID,
			&s.Sport,
			&s.VenueID,
			&s.VenueName,
			&s.Address,
			&s.CourtNumber,
			&s.StartTime,
			&s.EndTime,
			&s.Visibility,
			&s.MaxPlayers,
			&s.MatchFull,
			&s.Status,
			&s.AdminID,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning game row: %w", err)
		}

		s.Players = []PlayerProfile{}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}

	return summaries, nil
}

// attachRosters resolves players for a page of games with a single
// batched query instead of per-game lookups.
func (r *Repository) attachRosters(ctx context.Context, summaries []Summary) ([]Summary, error) {
	if len(summaries) == 0 {
		return summaries, nil
	}

	gameIDs := make([]string, 0, len(summaries))

	for _, s := range summaries {
		gameIDs = append(gameIDs, s.ID)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT p.game_id, u.id, u.username, u.image, u.skill
         FROM opencourt.game_players p
         JOIN opencourt.users u ON u.id = p.user_id
         WHERE p.game_id = ANY($1)
         ORDER BY p.joined_at`,
		gameIDs,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch rosters: %w", err)
	}

	defer rows.Close()

	rosters := map[string][]PlayerProfile{}
	profiles := map[string]PlayerProfile{}

	for rows.Next() {
		var gameID string
		var player PlayerProfile

		if err := rows.Scan(&gameID, &player.UserID, &player.Username, &player.Image, &player.Skill); err != nil {
			return nil, fmt.Errorf("error scanning roster row: %w", err)
		}

		rosters[gameID] = append(rosters[gameID], player)
		profiles[player.UserID] = player
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster rows: %w", err)
	}

	for i := range summaries {
		if players, ok := rosters[summaries[i].ID]; ok {
			summaries[i].Players = players
		}

		if admin, ok := profiles[summaries[i].AdminID]; ok {
			summaries[i].AdminName = admin.Username
			summaries[i].AdminImage = admin.Image
		}
	}

	return summaries, nil
}
