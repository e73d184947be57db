package commands

import (
	"context"
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/domain/campground"

	"github.com/google/uuid"
)

// Write-side ports; implemented by internal/infra/repository.
type BookingRepository interface {
	// Create persists the booking iff no confirmed overlapping booking exists
	// for the same campground. Check and insert are a single atomic store
	// operation; losing a race surfaces as a Conflict kind.
	Create(ctx context.Context, b *booking.Booking) error
	Cancel(ctx context.Context, id uuid.UUID, reason string, cancelledAt time.Time) error
	CountConfirmedOverlapping(ctx context.Context, campgroundID uuid.UUID, stay booking.StayPeriod) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type CampgroundRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*campground.Campground, error)
}
