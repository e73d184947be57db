//go:build unit

package queries_test

import (
	"context"
	"testing"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/usecase/queries"
	"campsite-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingReadStore struct {
	byID   map[uuid.UUID]*queries.BookingView
	byUser map[uuid.UUID][]*queries.BookingView
	byCamp map[uuid.UUID][]*queries.BookingView
}

func (f *fakeBookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking view not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (f *fakeBookingReadStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return f.byUser[userID], nil
}

func (f *fakeBookingReadStore) ListByCampground(_ context.Context, campgroundID uuid.UUID) ([]*queries.BookingView, error) {
	return f.byCamp[campgroundID], nil
}

type fakeCampgroundReadStore struct {
	views map[uuid.UUID]*queries.CampgroundView
}

func (f *fakeCampgroundReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CampgroundView, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("campground view not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (f *fakeCampgroundReadStore) List(_ context.Context) ([]*queries.CampgroundView, error) {
	views := make([]*queries.CampgroundView, 0, len(f.views))
	for _, v := range f.views {
		views = append(views, v)
	}
	return views, nil
}

func TestBookingQueriesGetByID(t *testing.T) {
	view := builder.NewBookingBuilder().BuildView()

	bookings := &fakeBookingReadStore{byID: map[uuid.UUID]*queries.BookingView{view.ID: view}}
	uc := queries.NewBookingQueries(bookings, &fakeCampgroundReadStore{})

	cases := []struct {
		name  string
		actor booking.Actor
		errIs error
	}{
		{name: "guest sees own booking", actor: booking.Actor{ID: view.UserID}},
		{name: "campground owner sees it", actor: booking.Actor{ID: view.CampgroundOwnerID}},
		{name: "admin sees it", actor: booking.Actor{ID: uuid.New(), IsAdmin: true}},
		{name: "stranger is forbidden", actor: booking.Actor{ID: uuid.New()}, errIs: queries.ErrForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := uc.GetByID(context.Background(), c.actor, view.ID)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Empty(t, cmp.Diff(view, actual))
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}

	t.Run("unknown booking", func(t *testing.T) {
		_, err := uc.GetByID(context.Background(), booking.Actor{ID: view.UserID}, uuid.New())
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueriesListForCampground(t *testing.T) {
	b := builder.NewBookingBuilder()
	view := b.BuildView()

	cgView := &queries.CampgroundView{
		ID:               b.CampgroundID,
		Title:            b.CampgroundTitle,
		NightlyRateCents: b.NightlyRateCents,
		OwnerID:          b.OwnerID,
	}

	bookings := &fakeBookingReadStore{
		byCamp: map[uuid.UUID][]*queries.BookingView{b.CampgroundID: {view}},
	}
	campgrounds := &fakeCampgroundReadStore{
		views: map[uuid.UUID]*queries.CampgroundView{cgView.ID: cgView},
	}
	uc := queries.NewBookingQueries(bookings, campgrounds)

	t.Run("owner lists bookings", func(t *testing.T) {
		actual, err := uc.ListForCampground(context.Background(), booking.Actor{ID: b.OwnerID}, b.CampgroundID)
		require.NoError(t, err)
		require.Len(t, actual, 1)
		assert.Empty(t, cmp.Diff(view, actual[0]))
	})

	t.Run("admin lists bookings", func(t *testing.T) {
		actual, err := uc.ListForCampground(context.Background(), booking.Actor{ID: uuid.New(), IsAdmin: true}, b.CampgroundID)
		require.NoError(t, err)
		assert.Len(t, actual, 1)
	})

	t.Run("guest is forbidden", func(t *testing.T) {
		_, err := uc.ListForCampground(context.Background(), booking.Actor{ID: b.UserID}, b.CampgroundID)
		require.ErrorIs(t, err, queries.ErrForbidden)
	})

	t.Run("unknown campground", func(t *testing.T) {
		_, err := uc.ListForCampground(context.Background(), booking.Actor{ID: b.OwnerID}, uuid.New())
		require.ErrorIs(t, err, queries.ErrCampgroundNotFound)
	})
}

func TestBookingQueriesListForUser(t *testing.T) {
	view := builder.NewBookingBuilder().BuildView()

	bookings := &fakeBookingReadStore{
		byUser: map[uuid.UUID][]*queries.BookingView{view.UserID: {view}},
	}
	uc := queries.NewBookingQueries(bookings, &fakeCampgroundReadStore{})

	actual, err := uc.ListForUser(context.Background(), view.UserID)
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Empty(t, cmp.Diff(view, actual[0]))

	empty, err := uc.ListForUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCampgroundQueries(t *testing.T) {
	cgView := &queries.CampgroundView{
		ID:               uuid.New(),
		Title:            "Granite Basin",
		NightlyRateCents: 2000,
		OwnerID:          uuid.New(),
		OwnerUsername:    "ranger",
	}
	uc := queries.NewCampgroundQueries(&fakeCampgroundReadStore{
		views: map[uuid.UUID]*queries.CampgroundView{cgView.ID: cgView},
	})

	t.Run("get by id", func(t *testing.T) {
		actual, err := uc.GetByID(context.Background(), cgView.ID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(cgView, actual))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.GetByID(context.Background(), uuid.New())
		require.ErrorIs(t, err, queries.ErrCampgroundNotFound)
	})

	t.Run("list", func(t *testing.T) {
		actual, err := uc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, actual, 1)
	})
}
