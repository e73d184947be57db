package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNegativeRate     = errors.New("nightly rate cannot be negative")
)

// DefaultCancellationReason is recorded when the guest cancels without giving
// a reason.
const DefaultCancellationReason = "Cancelled by user"

// Booking is the sole aggregate of the reservation core. Dates, nights and
// total price are frozen at creation; only the cancellation fields ever
// change, exactly once.
type Booking struct {
	id                 uuid.UUID
	userID             uuid.UUID
	campgroundID       uuid.UUID
	stay               StayPeriod
	status             Status
	nights             int
	totalPrice         Money
	cancellationReason *string
	cancelledAt        *time.Time
	createdAt          time.Time
}

// NewBooking prices the stay against the campground's nightly rate and
// returns a confirmed booking. It performs no conflict check; that belongs to
// the store-side conditional insert.
func NewBooking(userID, campgroundID uuid.UUID, stay StayPeriod, nightlyRate Money) (*Booking, error) {
	if nightlyRate.Cents() < 0 {
		return nil, ErrNegativeRate
	}

	nights := stay.Nights()
	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		campgroundID: campgroundID,
		stay:         stay,
		status:       StatusConfirmed,
		nights:       nights,
		totalPrice:   nightlyRate.MultiplyNights(nights),
	}, nil
}

func ReconstructBooking(
	id, userID, campgroundID uuid.UUID,
	stay StayPeriod,
	status Status,
	nights int,
	totalPrice Money,
	cancellationReason *string,
	cancelledAt *time.Time,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		userID:             userID,
		campgroundID:       campgroundID,
		stay:               stay,
		status:             status,
		nights:             nights,
		totalPrice:         totalPrice,
		cancellationReason: cancellationReason,
		cancelledAt:        cancelledAt,
		createdAt:          createdAt,
	}
}

// Cancel transitions Confirmed -> Cancelled and records reason and timestamp
// together. The transition is one-way; cancelling twice is an error, not a
// no-op, so the caller can tell the action had no effect.
func (b *Booking) Cancel(reason string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultCancellationReason
	}

	b.status = StatusCancelled
	b.cancellationReason = &reason
	b.cancelledAt = &now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) CampgroundID() uuid.UUID     { return b.campgroundID }
func (b *Booking) Stay() StayPeriod            { return b.stay }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Nights() int                 { return b.nights }
func (b *Booking) TotalPrice() Money           { return b.totalPrice }
func (b *Booking) CancellationReason() *string { return b.cancellationReason }
func (b *Booking) CancelledAt() *time.Time     { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
