package repository

import (
	"context"
	"errors"
	"time"

	"campsite-booking/internal/domain/booking"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// createBookingSQL inserts iff no confirmed booking overlaps the candidate
// interval. Check and insert are one statement, so two racing requests cannot
// both observe an empty calendar and both commit; the
// bookings_no_confirmed_overlap exclusion constraint backs this up at the
// storage level.
const createBookingSQL = `
INSERT INTO bookings (id, user_id, campground_id, check_in, check_out, status, nights, total_price_cents)
SELECT $1, $2, $3, $4, $5, 'confirmed', $6, $7
WHERE NOT EXISTS (
    SELECT 1 FROM bookings
    WHERE campground_id = $3
      AND status = 'confirmed'
      AND check_in < $5
      AND check_out > $4
)
RETURNING id
`

const cancelBookingSQL = `
UPDATE bookings
SET status = 'cancelled', cancellation_reason = $2, cancelled_at = $3
WHERE id = $1 AND status = 'confirmed'
`

const countOverlappingSQL = `
SELECT COUNT(*) FROM bookings
WHERE campground_id = $1
  AND status = 'confirmed'
  AND check_in < $3
  AND check_out > $2
`

const findBookingByIDSQL = `
SELECT id, user_id, campground_id, check_in, check_out, status, nights,
       total_price_cents, cancellation_reason, cancelled_at, created_at
FROM bookings
WHERE id = $1
`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(conn db.DBTX) *BookingRepository {
	return &BookingRepository{db: conn}
}

// Create persists a confirmed booking unless a conflicting confirmed booking
// already holds part of the interval, in which case it returns a Conflict
// kind and writes nothing.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.UserID(),
		b.CampgroundID(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.Nights(),
		b.TotalPrice().Cents(),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("dates are no longer available", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}

	return nil
}

// Cancel applies the Confirmed -> Cancelled transition conditionally; a zero
// row count means another request cancelled first.
func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID, reason string, cancelledAt time.Time) error {
	tag, err := r.db.Exec(ctx, cancelBookingSQL, id, reason, cancelledAt)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking is not in confirmed state", nil, infra.KindConflict)
	}

	return nil
}

func (r *BookingRepository) CountConfirmedOverlapping(ctx context.Context, campgroundID uuid.UUID, stay booking.StayPeriod) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, countOverlappingSQL, campgroundID, stay.CheckIn(), stay.CheckOut()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}

	return count, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, userID, campgroundID uuid.UUID
		checkIn, checkOut, createdAt    time.Time
		status                          string
		nights                          int
		totalPriceCents                 int64
		cancellationReason              *string
		cancelledAt                     *time.Time
	)

	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&bookingID, &userID, &campgroundID,
		&checkIn, &checkOut, &status, &nights,
		&totalPriceCents, &cancellationReason, &cancelledAt, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return booking.ReconstructBooking(
		bookingID, userID, campgroundID,
		booking.ReconstructStayPeriod(checkIn, checkOut),
		booking.Status(status),
		nights,
		booking.NewMoney(totalPriceCents),
		cancellationReason,
		cancelledAt,
		createdAt,
	), nil
}
