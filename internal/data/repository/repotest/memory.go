// Package repotest provides an in-memory booking repository and a conformance
// suite shared by the store backends.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"

	"github.com/google/uuid"
)

type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings map[string]entity.Booking
	err      error
}

var _ repository.BookingRepository = (*MemoryBookingRepository)(nil)

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]entity.Booking)}
}

// FailWith makes every following call return err; nil restores normal behaviour.
func (m *MemoryBookingRepository) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemoryBookingRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

func (m *MemoryBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	booking.ID = uuid.NewString()
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *MemoryBookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return m.filter(func(entity.Booking) bool { return true })
}

func (m *MemoryBookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok, err := m.lookup(id)
	if err != nil || !ok {
		return nil, err
	}
	return &b, nil
}

func (m *MemoryBookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	return m.filter(func(b entity.Booking) bool { return b.Email == email })
}

func (m *MemoryBookingRepository) FindByEventContains(ctx context.Context, term string) ([]*entity.Booking, error) {
	term = strings.ToLower(term)
	return m.filter(func(b entity.Booking) bool {
		return strings.Contains(strings.ToLower(b.Event), term)
	})
}

func (m *MemoryBookingRepository) Update(ctx context.Context, id string, patch entity.BookingPatch) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok, err := m.lookup(id)
	if err != nil || !ok {
		return nil, err
	}

	patch.Apply(&existing)
	m.bookings[id] = existing
	return &existing, nil
}

func (m *MemoryBookingRepository) Delete(ctx context.Context, id string) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok, err := m.lookup(id)
	if err != nil || !ok {
		return nil, err
	}

	delete(m.bookings, id)
	return &existing, nil
}

// lookup must be called with mu held.
func (m *MemoryBookingRepository) lookup(id string) (entity.Booking, bool, error) {
	if m.err != nil {
		return entity.Booking{}, false, m.err
	}
	if _, err := uuid.Parse(id); err != nil {
		return entity.Booking{}, false, fmt.Errorf("%w %q", repository.ErrInvalidID, id)
	}

	b, ok := m.bookings[id]
	return b, ok, nil
}

func (m *MemoryBookingRepository) filter(keep func(entity.Booking) bool) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	out := make([]*entity.Booking, 0)
	for _, b := range m.bookings {
		if keep(b) {
			b := b
			out = append(out, &b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// StaticPinger answers health checks with Err.
type StaticPinger struct {
	Err error
}

func (p *StaticPinger) Ping(ctx context.Context) error {
	return p.Err
}

// NewMemoryRepository returns a Repository backed by memory plus handles to
// its parts so tests can inject failures.
func NewMemoryRepository() (*repository.Repository, *MemoryBookingRepository, *StaticPinger) {
	bookings := NewMemoryBookingRepository()
	pinger := &StaticPinger{}
	return &repository.Repository{Booking: bookings, Health: pinger}, bookings, pinger
}
