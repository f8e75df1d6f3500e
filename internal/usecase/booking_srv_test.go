package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-booking/internal/data/repository"
	"event-booking/internal/data/repository/repotest"
	"event-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)

func newTestBookingService(t *testing.T) (*bookingService, *repotest.MemoryBookingRepository) {
	t.Helper()
	repo := repotest.NewMemoryBookingRepository()
	svc := NewBookingService(repo, zap.NewNop()).(*bookingService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestBookingService(t)

	created, err := svc.CreateBooking(ctx, &request.CreateBookingRequest{
		Name:  "Grace Hopper",
		Email: "Grace@Navy.mil",
		Event: "Tech Conference",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "grace@navy.mil", created.Email)
	assert.Equal(t, "General", created.TicketType)
	assert.Equal(t, fixedNow.Truncate(time.Millisecond), created.CreatedAt)
	assert.Equal(t, 1, repo.Len())

	found, err := svc.GetBookingByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestBookingService_CreateBooking_missingEmailPersistsNothing(t *testing.T) {
	svc, repo := newTestBookingService(t)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		Name:  "Grace Hopper",
		Event: "Tech Conference",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"email"}, validationErr.Missing)
	assert.Equal(t, 0, repo.Len())
}

func TestBookingService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestBookingService(t)
	missing := uuid.NewString()

	_, err := svc.GetBookingByID(ctx, missing)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.UpdateBooking(ctx, missing, &request.UpdateBookingRequest{Name: request.Some("x")})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = svc.DeleteBooking(ctx, missing)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingService_UpdateBooking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestBookingService(t)

	created, err := svc.CreateBooking(ctx, &request.CreateBookingRequest{
		Name: "Grace", Email: "grace@navy.mil", Event: "Music Fest",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{
		Event:      request.Some("  Tech Conference "),
		TicketType: request.Some("VIP"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Grace", updated.Name)
	assert.Equal(t, "Tech Conference", updated.Event)
	assert.Equal(t, "VIP", updated.TicketType)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = svc.UpdateBooking(ctx, created.ID, &request.UpdateBookingRequest{Email: request.Some(" ")})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	found, err := svc.GetBookingByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "grace@navy.mil", found.Email)
}

func TestBookingService_SearchAndFilter(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestBookingService(t)

	create := func(email, event string) string {
		b, err := svc.CreateBooking(ctx, &request.CreateBookingRequest{Name: "n", Email: email, Event: event})
		require.NoError(t, err)
		return b.ID
	}
	first := create("twin@example.com", "Tech Conference")
	second := create("twin@example.com", "Music Fest")
	create("other@example.com", "Music Fest")

	found, err := svc.SearchByEmail(ctx, " TWIN@example.com")
	require.NoError(t, err)
	var ids []string
	for _, b := range found {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []string{first, second}, ids)

	filtered, err := svc.FilterByEvent(ctx, "conf")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first, filtered[0].ID)

	empty, err := svc.FilterByEvent(ctx, "opera")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBookingService_StoreErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestBookingService(t)
	boom := errors.New("server selection timeout")
	repo.FailWith(boom)

	_, err := svc.ListBookings(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.CreateBooking(ctx, &request.CreateBookingRequest{Name: "a", Email: "b", Event: "c"})
	assert.ErrorIs(t, err, boom)

	err = svc.DeleteBooking(ctx, uuid.NewString())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingService_MalformedID(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.GetBookingByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrInvalidID)
	assert.NotErrorIs(t, err, ErrBookingNotFound)
}

func TestHealthService(t *testing.T) {
	pinger := &repotest.StaticPinger{}
	svc := NewHealthService(pinger)

	assert.NoError(t, svc.Check(context.Background()))

	pinger.Err = errors.New("down")
	assert.ErrorIs(t, svc.Check(context.Background()), pinger.Err)
}
