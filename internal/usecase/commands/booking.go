package commands

import (
	"context"
	"errors"
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/metrics"
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/pkg/errs"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange       = errs.New("check-out must be after check-in")
	ErrPastDate           = errs.New("check-in cannot be in the past")
	ErrCampgroundNotFound = errs.New("campground not found")
	ErrDatesUnavailable   = errs.New("dates are not available")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrAlreadyCancelled   = errs.New("booking is already cancelled")
	ErrForbidden          = errs.New("permission denied")
	ErrTimeout            = errs.New("operation timed out")
	ErrStoreUnavailable   = errs.New("booking store unavailable")
)

// Transient store failures are retried a bounded number of times before
// surfacing ErrStoreUnavailable. Conflicts are never retried: losing a race
// is an answer, not a failure.
const (
	maxCreateRetries = 3
	retryBaseDelay   = 50 * time.Millisecond
)

type CreateBookingParams struct {
	CampgroundID uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
}

type AvailabilityResult struct {
	Available     bool
	ConflictCount int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, actor booking.Actor, bookingID uuid.UUID, reason string) (*queries.BookingView, error)
	CheckAvailability(ctx context.Context, campgroundID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	campgroundRepo CampgroundRepository
	bookingReads   queries.BookingReadStore
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	campgroundRepo CampgroundRepository,
	bookingReads queries.BookingReadStore,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		campgroundRepo: campgroundRepo,
		bookingReads:   bookingReads,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	userID uuid.UUID,
	params CreateBookingParams,
) (*queries.BookingView, error) {
	stay, err := booking.NewStayPeriod(params.CheckIn, params.CheckOut, c.clock.Now())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidRange):
			return nil, errs.Mark(err, ErrInvalidRange)
		case errors.Is(err, booking.ErrPastDate):
			return nil, errs.Mark(err, ErrPastDate)
		default:
			return nil, err
		}
	}

	cg, err := c.campgroundRepo.FindByID(ctx, params.CampgroundID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, c.mapStoreErr(err)
	}

	entity, err := booking.NewBooking(userID, cg.ID(), stay, booking.NewMoney(cg.NightlyRateCents()))
	if err != nil {
		return nil, err
	}

	if err := c.createWithRetry(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			metrics.IncBookingConflict()
			return nil, ErrDatesUnavailable
		}
		return nil, c.mapStoreErr(err)
	}

	metrics.IncBookingCreated()

	// Read-after-write: return the joined view the caller would query next.
	view, err := c.bookingReads.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, c.mapStoreErr(err)
	}

	return view, nil
}

func (c *bookingCommandsImpl) CancelBooking(
	ctx context.Context,
	actor booking.Actor,
	bookingID uuid.UUID,
	reason string,
) (*queries.BookingView, error) {
	entity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, c.mapStoreErr(err)
	}

	cg, err := c.campgroundRepo.FindByID(ctx, entity.CampgroundID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, c.mapStoreErr(err)
	}

	if !booking.CanCancel(actor, entity, cg) {
		return nil, ErrForbidden
	}

	if err := entity.Cancel(reason, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrAlreadyCancelled)
	}

	// The conditional update re-checks status at the store, so a concurrent
	// cancel resolves to one winner and one AlreadyCancelled.
	if err := c.bookingRepo.Cancel(ctx, bookingID, *entity.CancellationReason(), *entity.CancelledAt()); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrAlreadyCancelled
		}
		return nil, c.mapStoreErr(err)
	}

	metrics.IncBookingCancelled()

	view, err := c.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, c.mapStoreErr(err)
	}

	return view, nil
}

// CheckAvailability is the advisory read: results can go stale the moment
// they return. The authoritative check happens inside the conditional insert.
func (c *bookingCommandsImpl) CheckAvailability(
	ctx context.Context,
	campgroundID uuid.UUID,
	checkIn, checkOut time.Time,
) (*AvailabilityResult, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}

	if _, err := c.campgroundRepo.FindByID(ctx, campgroundID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, c.mapStoreErr(err)
	}

	stay := booking.ReconstructStayPeriod(checkIn, checkOut)
	count, err := c.bookingRepo.CountConfirmedOverlapping(ctx, campgroundID, stay)
	if err != nil {
		return nil, c.mapStoreErr(err)
	}

	return &AvailabilityResult{
		Available:     count == 0,
		ConflictCount: count,
	}, nil
}

func (c *bookingCommandsImpl) createWithRetry(ctx context.Context, entity *booking.Booking) error {
	var err error
	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBaseDelay * time.Duration(attempt)):
			}
		}

		err = c.bookingRepo.Create(ctx, entity)
		if err == nil || !infra.IsKind(err, infra.KindUnavailable) {
			return err
		}
	}
	return err
}

func (c *bookingCommandsImpl) mapStoreErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || infra.IsKind(err, infra.KindTimeout) {
		return errs.Mark(err, ErrTimeout)
	}
	return errs.Mark(err, ErrStoreUnavailable)
}
