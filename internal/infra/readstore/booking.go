package readstore

import (
	"context"
	"errors"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingViewColumns = `
b.id, b.campground_id, c.title, c.owner_id, b.user_id, u.username,
b.check_in, b.check_out, b.status, b.nights, b.total_price_cents,
b.cancellation_reason, b.cancelled_at, b.created_at
`

const findBookingViewSQL = `
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN campgrounds c ON c.id = b.campground_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1
`

const listBookingsByUserSQL = `
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN campgrounds c ON c.id = b.campground_id
JOIN users u ON u.id = b.user_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC
`

const listBookingsByCampgroundSQL = `
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN campgrounds c ON c.id = b.campground_id
JOIN users u ON u.id = b.user_id
WHERE b.campground_id = $1
ORDER BY b.check_in ASC
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(conn db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: conn}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBookingView(r.db.QueryRow(ctx, findBookingViewSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}

	return view, nil
}

// ListByUser returns the caller's bookings, newest first.
func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, listBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

// ListByCampground returns a campground's bookings in check-in order, the
// shape the owner reads its calendar in.
func (r *BookingReadStore) ListByCampground(ctx context.Context, campgroundID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, listBookingsByCampgroundSQL, campgroundID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by campground", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.CampgroundID, &v.CampgroundTitle, &v.CampgroundOwnerID, &v.UserID, &v.Username,
		&v.CheckIn, &v.CheckOut, &v.Status, &v.Nights, &v.TotalPriceCents,
		&v.CancellationReason, &v.CancelledAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking views", err)
	}

	return views, nil
}
