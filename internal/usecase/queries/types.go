package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	CampgroundID       uuid.UUID  `json:"campground_id"`
	CampgroundTitle    string     `json:"campground_title"`
	CampgroundOwnerID  uuid.UUID  `json:"campground_owner_id"`
	UserID             uuid.UUID  `json:"user_id"`
	Username           string     `json:"username"`
	CheckIn            time.Time  `json:"check_in"`
	CheckOut           time.Time  `json:"check_out"`
	Status             string     `json:"status"`
	Nights             int        `json:"nights"`
	TotalPriceCents    int64      `json:"total_price_cents"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type CampgroundView struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	OwnerID          uuid.UUID `json:"owner_id"`
	OwnerUsername    string    `json:"owner_username"`
	CreatedAt        time.Time `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListByCampground(ctx context.Context, campgroundID uuid.UUID) ([]*BookingView, error)
}

type CampgroundReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CampgroundView, error)
	List(ctx context.Context) ([]*CampgroundView, error)
}
