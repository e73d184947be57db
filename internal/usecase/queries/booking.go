package queries

import (
	"context"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/domain/campground"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrCampgroundNotFound = errs.New("campground not found")
	ErrForbidden          = errs.New("permission denied")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor booking.Actor, id uuid.UUID) (*BookingView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListForCampground(ctx context.Context, actor booking.Actor, campgroundID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings    BookingReadStore
	campgrounds CampgroundReadStore
}

func NewBookingQueries(bookings BookingReadStore, campgrounds CampgroundReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings:    bookings,
		campgrounds: campgrounds,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor booking.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}

	// Same audience as cancellation: guest, campground owner, or admin.
	if !actor.IsAdmin && actor.ID != view.UserID && actor.ID != view.CampgroundOwnerID {
		return nil, ErrForbidden
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings for user")
	}

	return views, nil
}

func (q *bookingQueriesImpl) ListForCampground(ctx context.Context, actor booking.Actor, campgroundID uuid.UUID) ([]*BookingView, error) {
	cgView, err := q.campgrounds.FindByID(ctx, campgroundID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, errs.Wrap(err, "failed to load campground")
	}

	cg, err := campground.NewCampground(cgView.ID, cgView.Title, cgView.NightlyRateCents, cgView.OwnerID)
	if err != nil {
		return nil, errs.Wrap(err, "stored campground is invalid")
	}

	if !booking.CanViewCampgroundBookings(actor, cg) {
		return nil, ErrForbidden
	}

	views, err := q.bookings.ListByCampground(ctx, campgroundID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings for campground")
	}

	return views, nil
}
