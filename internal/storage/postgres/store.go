package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/models"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users and bookings.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to databaseURL and runs migrations. maxConns <= 0 keeps the
// pgxpool default.
func Open(ctx context.Context, databaseURL string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			mobile TEXT NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique_idx ON users (email);`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			booking_date TEXT NOT NULL,
			booking_time TEXT NOT NULL,
			number_of_people INTEGER NOT NULL CHECK (number_of_people BETWEEN 1 AND 10),
			special_request TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS bookings_user_created_idx ON bookings (user_id, created_at DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (name, email, mobile, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, mobile, password, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.Name, user.Email, user.Mobile, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// FindUserByEmail fetches a user by email address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
		SELECT id, name, email, mobile, password, created_at
		FROM users
		WHERE email = $1;
	`
	return scanUser(s.pool.QueryRow(ctx, query, email))
}

const bookingColumns = `id, user_id, booking_date, booking_time, number_of_people, special_request, status, created_at, updated_at`

// CreateBooking inserts a booking with the default status.
func (s *Store) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	query := `
		INSERT INTO bookings (user_id, booking_date, booking_time, number_of_people, special_request, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + bookingColumns + `;`
	status := b.Status
	if status == "" {
		status = models.StatusPending
	}
	row := s.pool.QueryRow(ctx, query, b.UserID, b.Date, b.Time, b.NumberOfPeople, b.SpecialRequest, string(status))
	created, err := scanBooking(row)
	if err != nil {
		return models.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	return created, nil
}

// FindBooking fetches a booking by id.
func (s *Store) FindBooking(ctx context.Context, id int64) (models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1;`
	return scanBooking(s.pool.QueryRow(ctx, query, id))
}

// ListBookingsByUser returns all bookings for userID, newest first.
func (s *Store) ListBookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC, id DESC;`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	out := make([]models.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

// UpdateBooking replaces the non-nil patch fields in a single statement.
func (s *Store) UpdateBooking(ctx context.Context, id int64, patch models.BookingPatch) (models.Booking, error) {
	query := `
		UPDATE bookings SET
			booking_date = COALESCE($2, booking_date),
			booking_time = COALESCE($3, booking_time),
			number_of_people = COALESCE($4, number_of_people),
			special_request = CASE WHEN $5::boolean THEN $6 ELSE special_request END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns + `;`
	row := s.pool.QueryRow(ctx, query, id, patch.Date, patch.Time, patch.NumberOfPeople,
		patch.SpecialRequest != nil, patch.SpecialRequest)
	return scanBooking(row)
}

// DeleteBooking removes a booking permanently.
func (s *Store) DeleteBooking(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Mobile, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func scanBooking(row pgx.Row) (models.Booking, error) {
	var b models.Booking
	var status string
	if err := row.Scan(&b.ID, &b.UserID, &b.Date, &b.Time, &b.NumberOfPeople, &b.SpecialRequest, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Booking{}, storage.ErrNotFound
		}
		return models.Booking{}, err
	}
	b.Status = models.BookingStatus(status)
	return b, nil
}
