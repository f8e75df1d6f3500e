package repository

import (
	"context"
	"errors"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, name, email, event, ticket_type, created_at`

type bookingPostgresRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingPostgresRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingPostgresRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking"), zap.String("store", "postgres")),
	}
}

func (r *bookingPostgresRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS bookings (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL CHECK (name <> ''),
			email       TEXT NOT NULL CHECK (email <> ''),
			event       TEXT NOT NULL CHECK (event <> ''),
			ticket_type TEXT NOT NULL DEFAULT 'General',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS bookings_email_idx ON bookings (email);
		CREATE INDEX IF NOT EXISTS bookings_created_at_idx ON bookings (created_at, id);
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		r.log.Error("Failed to create bookings schema", zap.Error(err))
		return fmt.Errorf("create bookings schema: %w", err)
	}
	return nil
}

func (r *bookingPostgresRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, name, email, event, ticket_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	id := uuid.New()
	_, err := r.db.Exec(ctx, query,
		id,
		booking.Name,
		booking.Email,
		booking.Event,
		booking.TicketType,
		booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("email", booking.Email),
			zap.String("event", booking.Event),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	booking.ID = id.String()
	return nil
}

func (r *bookingPostgresRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at, id`

	bookings, err := r.query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingPostgresRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingPostgresRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE email = $1 ORDER BY created_at, id`

	bookings, err := r.query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find bookings by email %s: %w", email, err)
	}
	return bookings, nil
}

func (r *bookingPostgresRepository) FindByEventContains(ctx context.Context, term string) ([]*entity.Booking, error) {
	// strpos keeps the term literal; no LIKE or regex metacharacters apply
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE strpos(lower(event), lower($1)) > 0
		ORDER BY created_at, id
	`

	bookings, err := r.query(ctx, query, term)
	if err != nil {
		r.log.Error("Failed to filter bookings by event",
			zap.Error(err),
			zap.String("event", term),
		)
		return nil, fmt.Errorf("filter bookings by event %s: %w", term, err)
	}
	return bookings, nil
}

func (r *bookingPostgresRepository) Update(ctx context.Context, id string, patch entity.BookingPatch) (*entity.Booking, error) {
	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE bookings
		SET name        = COALESCE($2, name),
		    email       = COALESCE($3, email),
		    event       = COALESCE($4, event),
		    ticket_type = COALESCE($5, ticket_type)
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query,
		uid,
		patch.Name,
		patch.Email,
		patch.Event,
		patch.TicketType,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("update booking %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingPostgresRepository) Delete(ctx context.Context, id string) (*entity.Booking, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `DELETE FROM bookings WHERE id = $1 RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("delete booking %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingPostgresRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking entity.Booking
		id      uuid.UUID
	)

	err := row.Scan(
		&id,
		&booking.Name,
		&booking.Email,
		&booking.Event,
		&booking.TicketType,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.ID = id.String()
	booking.CreatedAt = booking.CreatedAt.UTC()
	return &booking, nil
}

func parseUUID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q", ErrInvalidID, id)
	}
	return uid, nil
}
