package repotest

import (
	"context"
	"testing"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBookingRepositoryTests checks the BookingRepository contract. missingID
// must be well-formed for the backend but absent from the store.
func RunBookingRepositoryTests(t *testing.T, repo repository.BookingRepository, missingID string) {
	ctx := context.Background()

	newBooking := func(event string) *entity.Booking {
		return &entity.Booking{
			Name:       "Ada Lovelace",
			Email:      uuid.NewString()[:8] + "@example.com",
			Event:      event,
			TicketType: entity.DefaultTicketType,
			CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
		}
	}

	t.Run("create then find by id", func(t *testing.T) {
		b := newBooking("Tech Conference")
		require.NoError(t, repo.Create(ctx, b))
		require.NotEmpty(t, b.ID)

		found, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, b.ID, found.ID)
		assert.Equal(t, b.Name, found.Name)
		assert.Equal(t, b.Email, found.Email)
		assert.Equal(t, b.Event, found.Event)
		assert.Equal(t, b.TicketType, found.TicketType)
		assert.True(t, b.CreatedAt.Equal(found.CreatedAt), "createdAt %s != %s", b.CreatedAt, found.CreatedAt)
	})

	t.Run("find all returns every booking once", func(t *testing.T) {
		created := map[string]bool{}
		for i := 0; i < 3; i++ {
			b := newBooking("Listing Day")
			require.NoError(t, repo.Create(ctx, b))
			created[b.ID] = true
		}

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)

		seen := map[string]int{}
		for i, b := range all {
			seen[b.ID]++
			if i > 0 {
				assert.False(t, b.CreatedAt.Before(all[i-1].CreatedAt), "bookings not ordered by createdAt")
			}
		}
		for id := range created {
			assert.Equal(t, 1, seen[id], "booking %s", id)
		}
	})

	t.Run("find by email is exact", func(t *testing.T) {
		email := "twin-" + uuid.NewString()[:8] + "@example.com"
		first, second, other := newBooking("A"), newBooking("B"), newBooking("C")
		first.Email, second.Email, other.Email = email, email, "x"+email
		for _, b := range []*entity.Booking{first, second, other} {
			require.NoError(t, repo.Create(ctx, b))
		}

		found, err := repo.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{first.ID, second.ID}, ids(found))
	})

	t.Run("find by event is a case-insensitive literal substring", func(t *testing.T) {
		tag := uuid.NewString()[:8]
		conf := newBooking("Tech Conference " + tag)
		fest := newBooking("Music Fest " + tag)
		plus := newBooking("C++ Summit " + tag)
		for _, b := range []*entity.Booking{conf, fest, plus} {
			require.NoError(t, repo.Create(ctx, b))
		}

		found, err := repo.FindByEventContains(ctx, "CONF")
		require.NoError(t, err)
		assert.Contains(t, ids(found), conf.ID)
		assert.NotContains(t, ids(found), fest.ID)

		found, err = repo.FindByEventContains(ctx, "c++ summit "+tag)
		require.NoError(t, err)
		assert.Equal(t, []string{plus.ID}, ids(found))

		found, err = repo.FindByEventContains(ctx, "Tech.Conference "+tag)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("update applies only set fields", func(t *testing.T) {
		b := newBooking("Before")
		require.NoError(t, repo.Create(ctx, b))

		event, ticket := "After", "VIP"
		updated, err := repo.Update(ctx, b.ID, entity.BookingPatch{Event: &event, TicketType: &ticket})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "After", updated.Event)
		assert.Equal(t, "VIP", updated.TicketType)
		assert.Equal(t, b.Name, updated.Name)
		assert.Equal(t, b.Email, updated.Email)
		assert.True(t, b.CreatedAt.Equal(updated.CreatedAt))

		unchanged, err := repo.Update(ctx, b.ID, entity.BookingPatch{})
		require.NoError(t, err)
		assert.Equal(t, updated, unchanged)
	})

	t.Run("update and delete of missing id return nil", func(t *testing.T) {
		name := "Nobody"
		updated, err := repo.Update(ctx, missingID, entity.BookingPatch{Name: &name})
		require.NoError(t, err)
		assert.Nil(t, updated)

		deleted, err := repo.Delete(ctx, missingID)
		require.NoError(t, err)
		assert.Nil(t, deleted)

		found, err := repo.FindByID(ctx, missingID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete removes the booking", func(t *testing.T) {
		b := newBooking("Short Lived")
		require.NoError(t, repo.Create(ctx, b))

		deleted, err := repo.Delete(ctx, b.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, b.ID, deleted.ID)

		found, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, repository.ErrInvalidID)

		name := "x"
		_, err = repo.Update(ctx, "not-an-id", entity.BookingPatch{Name: &name})
		assert.ErrorIs(t, err, repository.ErrInvalidID)

		_, err = repo.Delete(ctx, "not-an-id")
		assert.ErrorIs(t, err, repository.ErrInvalidID)
	})
}

func ids(bookings []*entity.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}
