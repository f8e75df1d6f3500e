package repository

import (
	"context"
	"errors"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"go.uber.org/zap"
)

// ErrInvalidID is returned when an id does not have the store's identifier format.
var ErrInvalidID = errors.New("malformed booking id")

// BookingRepository is the store contract. Lookups that miss return (nil, nil).
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	FindByEventContains(ctx context.Context, term string) ([]*entity.Booking, error)
	Update(ctx context.Context, id string, patch entity.BookingPatch) (*entity.Booking, error)
	Delete(ctx context.Context, id string) (*entity.Booking, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	Booking BookingRepository
	Health  Pinger
}

func NewMongoRepository(db *database.Mongo, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingMongoRepository(db.Collection(bookingCollection), log),
		Health:  db,
	}
}

func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingPostgresRepository(db, log),
		Health:  db,
	}
}

type schemaInitializer interface {
	EnsureSchema(ctx context.Context) error
}

// EnsureSchema prepares tables or indexes for backends that need them.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if s, ok := r.Booking.(schemaInitializer); ok {
		return s.EnsureSchema(ctx)
	}
	return nil
}
