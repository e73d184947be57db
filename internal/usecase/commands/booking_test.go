//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/domain/campground"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ---------------------------------------------------------------------------
// In-memory fakes for the write and read ports.
// ---------------------------------------------------------------------------

type fakeBookingRepo struct {
	bookings     map[uuid.UUID]*booking.Booking
	createErrs   []error // consumed per Create call, nil means success
	cancelErr    error
	overlapCount int
	createCalls  int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*booking.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.bookings[b.ID()] = b
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id uuid.UUID, reason string, cancelledAt time.Time) error {
	return f.cancelErr
}

func (f *fakeBookingRepo) CountConfirmedOverlapping(_ context.Context, _ uuid.UUID, _ booking.StayPeriod) (int, error) {
	return f.overlapCount, nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

type fakeCampgroundRepo struct {
	campgrounds map[uuid.UUID]*campground.Campground
}

func (f *fakeCampgroundRepo) FindByID(_ context.Context, id uuid.UUID) (*campground.Campground, error) {
	cg, ok := f.campgrounds[id]
	if !ok {
		return nil, infra.WrapRepoErr("campground not found", nil, infra.KindNotFound)
	}
	return cg, nil
}

type fakeBookingReads struct {
	repo *fakeBookingRepo
}

func (f *fakeBookingReads) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, ok := f.repo.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking view not found", nil, infra.KindNotFound)
	}
	return viewFromEntity(b), nil
}

func (f *fakeBookingReads) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.BookingView, error) {
	return nil, nil
}

func (f *fakeBookingReads) ListByCampground(_ context.Context, _ uuid.UUID) ([]*queries.BookingView, error) {
	return nil, nil
}

func viewFromEntity(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:                 b.ID(),
		CampgroundID:       b.CampgroundID(),
		UserID:             b.UserID(),
		CheckIn:            b.Stay().CheckIn(),
		CheckOut:           b.Stay().CheckOut(),
		Status:             b.Status().String(),
		Nights:             b.Nights(),
		TotalPriceCents:    b.TotalPrice().Cents(),
		CancellationReason: b.CancellationReason(),
		CancelledAt:        b.CancelledAt(),
		CreatedAt:          b.CreatedAt(),
	}
}

// ---------------------------------------------------------------------------

type BookingCommandsTestSuite struct {
	suite.Suite
	bookingRepo    *fakeBookingRepo
	campgroundRepo *fakeCampgroundRepo
	clock          *clock.MockClock
	uc             commands.BookingCommands

	userID       uuid.UUID
	ownerID      uuid.UUID
	campgroundID uuid.UUID
	now          time.Time
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.now = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s.userID = uuid.New()
	s.ownerID = uuid.New()
	s.campgroundID = uuid.New()

	cg, err := campground.NewCampground(s.campgroundID, "Granite Basin", 2000, s.ownerID)
	require.NoError(s.T(), err)

	s.bookingRepo = newFakeBookingRepo()
	s.campgroundRepo = &fakeCampgroundRepo{
		campgrounds: map[uuid.UUID]*campground.Campground{s.campgroundID: cg},
	}
	s.clock = clock.NewMockClock(s.now)
	s.uc = commands.NewBookingCommands(
		s.bookingRepo,
		s.campgroundRepo,
		&fakeBookingReads{repo: s.bookingRepo},
		s.clock,
	)
}

func (s *BookingCommandsTestSuite) day(n int) time.Time {
	return s.now.AddDate(0, 0, n)
}

func (s *BookingCommandsTestSuite) createParams(checkInDay, checkOutDay int) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		CampgroundID: s.campgroundID,
		CheckIn:      s.day(checkInDay),
		CheckOut:     s.day(checkOutDay),
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("prices the stay and confirms", func() {
		view, err := s.uc.CreateBooking(context.Background(), s.userID, s.createParams(10, 13))
		require.NoError(s.T(), err)

		assert.Equal(s.T(), "confirmed", view.Status)
		assert.Equal(s.T(), 3, view.Nights)
		assert.Equal(s.T(), int64(6000), view.TotalPriceCents)
		assert.Equal(s.T(), s.userID, view.UserID)
	})

	s.Run("rejects inverted range", func() {
		_, err := s.uc.CreateBooking(context.Background(), s.userID, s.createParams(13, 10))
		require.ErrorIs(s.T(), err, commands.ErrInvalidRange)
		assert.Zero(s.T(), s.bookingRepo.createCalls)
	})

	s.Run("rejects past check-in", func() {
		_, err := s.uc.CreateBooking(context.Background(), s.userID, s.createParams(-1, 2))
		require.ErrorIs(s.T(), err, commands.ErrPastDate)
	})

	s.Run("unknown campground", func() {
		params := s.createParams(10, 13)
		params.CampgroundID = uuid.New()

		_, err := s.uc.CreateBooking(context.Background(), s.userID, params)
		require.ErrorIs(s.T(), err, commands.ErrCampgroundNotFound)
	})

	s.Run("store conflict becomes dates unavailable without retry", func() {
		s.bookingRepo.createErrs = []error{
			infra.WrapRepoErr("overlap", nil, infra.KindConflict),
		}

		_, err := s.uc.CreateBooking(context.Background(), s.userID, s.createParams(10, 13))
		require.ErrorIs(s.T(), err, commands.ErrDatesUnavailable)
		assert.Equal(s.T(), 1, s.bookingRepo.createCalls)
	})

	s.Run("transient failure is retried then succeeds", func() {
		s.bookingRepo.createErrs = []error{
			infra.WrapRepoErr("serialization failure", nil, infra.KindUnavailable),
			nil,
		}

		view, err := s.uc.CreateBooking(context.Background(), s.userID, s.createParams(10, 13))
		require.NoError(s.T(), err)
		assert.Equal(s.T(), "confirmed", view.Status)
		assert.Equal(s.T(), 2, s.bookingRepo.createCalls)
	})

	s.Run("retries are bounded", func() {
		s.bookingRepo.createErrs = []error{
			infra.WrapRepoErr("down", nil, infra.KindUnavailable),
			infra.WrapRepoErr("down", nil, infra.KindUnavailable),
			infra.WrapRepoErr("down", nil, infra.KindUnavailable),
		}

		_, err := s.uc.CreateBooking(context.Background(), s.userID, s.createParams(10, 13))
		require.ErrorIs(s.T(), err, commands.ErrStoreUnavailable)
		assert.Equal(s.T(), 3, s.bookingRepo.createCalls)
	})

	s.Run("timeout surfaces as timeout", func() {
		s.bookingRepo.createErrs = []error{
			infra.WrapRepoErr("deadline", context.DeadlineExceeded, infra.KindTimeout),
		}

		_, err := s.uc.CreateBooking(context.Background(), s.userID, s.createParams(10, 13))
		require.ErrorIs(s.T(), err, commands.ErrTimeout)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	create := func() *queries.BookingView {
		view, err := s.uc.CreateBooking(context.Background(), s.userID, s.createParams(10, 13))
		require.NoError(s.T(), err)
		return view
	}

	s.Run("guest cancels own booking", func() {
		created := create()

		view, err := s.uc.CancelBooking(context.Background(), booking.Actor{ID: s.userID}, created.ID, "Change of plans")
		require.NoError(s.T(), err)

		assert.Equal(s.T(), "cancelled", view.Status)
		require.NotNil(s.T(), view.CancellationReason)
		assert.Equal(s.T(), "Change of plans", *view.CancellationReason)
		require.NotNil(s.T(), view.CancelledAt)
		assert.Equal(s.T(), s.now, *view.CancelledAt)
	})

	s.Run("empty reason defaults", func() {
		created := create()

		view, err := s.uc.CancelBooking(context.Background(), booking.Actor{ID: s.userID}, created.ID, "")
		require.NoError(s.T(), err)

		require.NotNil(s.T(), view.CancellationReason)
		assert.Equal(s.T(), booking.DefaultCancellationReason, *view.CancellationReason)
	})

	s.Run("campground owner may cancel", func() {
		created := create()

		_, err := s.uc.CancelBooking(context.Background(), booking.Actor{ID: s.ownerID}, created.ID, "Site flooded")
		require.NoError(s.T(), err)
	})

	s.Run("admin may cancel", func() {
		created := create()

		_, err := s.uc.CancelBooking(context.Background(), booking.Actor{ID: uuid.New(), IsAdmin: true}, created.ID, "")
		require.NoError(s.T(), err)
	})

	s.Run("stranger is forbidden", func() {
		created := create()

		_, err := s.uc.CancelBooking(context.Background(), booking.Actor{ID: uuid.New()}, created.ID, "")
		require.ErrorIs(s.T(), err, commands.ErrForbidden)
	})

	s.Run("unknown booking", func() {
		_, err := s.uc.CancelBooking(context.Background(), booking.Actor{ID: s.userID}, uuid.New(), "")
		require.ErrorIs(s.T(), err, commands.ErrBookingNotFound)
	})

	s.Run("double cancel", func() {
		created := create()
		actor := booking.Actor{ID: s.userID}

		_, err := s.uc.CancelBooking(context.Background(), actor, created.ID, "")
		require.NoError(s.T(), err)

		_, err = s.uc.CancelBooking(context.Background(), actor, created.ID, "")
		require.ErrorIs(s.T(), err, commands.ErrAlreadyCancelled)
	})

	s.Run("losing the cancel race maps to already cancelled", func() {
		created := create()
		s.bookingRepo.cancelErr = infra.WrapRepoErr("no row updated", nil, infra.KindConflict)

		_, err := s.uc.CancelBooking(context.Background(), booking.Actor{ID: s.userID}, created.ID, "")
		require.ErrorIs(s.T(), err, commands.ErrAlreadyCancelled)
	})
}

func (s *BookingCommandsTestSuite) TestCheckAvailability() {
	s.Run("no overlaps", func() {
		result, err := s.uc.CheckAvailability(context.Background(), s.campgroundID, s.day(10), s.day(13))
		require.NoError(s.T(), err)

		assert.True(s.T(), result.Available)
		assert.Zero(s.T(), result.ConflictCount)
	})

	s.Run("reports conflict count", func() {
		s.bookingRepo.overlapCount = 2

		result, err := s.uc.CheckAvailability(context.Background(), s.campgroundID, s.day(10), s.day(13))
		require.NoError(s.T(), err)

		assert.False(s.T(), result.Available)
		assert.Equal(s.T(), 2, result.ConflictCount)
	})

	s.Run("past ranges are still queryable", func() {
		_, err := s.uc.CheckAvailability(context.Background(), s.campgroundID, s.day(-10), s.day(-7))
		require.NoError(s.T(), err)
	})

	s.Run("inverted range", func() {
		_, err := s.uc.CheckAvailability(context.Background(), s.campgroundID, s.day(13), s.day(10))
		require.ErrorIs(s.T(), err, commands.ErrInvalidRange)
	})

	s.Run("unknown campground", func() {
		_, err := s.uc.CheckAvailability(context.Background(), uuid.New(), s.day(10), s.day(13))
		require.ErrorIs(s.T(), err, commands.ErrCampgroundNotFound)
	})
}
