package response

import (
	"log/slog"
	"time"

	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CampgroundID       uuid.UUID  `json:"campgroundId"`
	CampgroundTitle    string     `json:"campgroundTitle"`
	UserID             uuid.UUID  `json:"userId"`
	Username           string     `json:"username"`
	CheckIn            time.Time  `json:"checkIn"`
	CheckOut           time.Time  `json:"checkOut"`
	Status             string     `json:"status"`
	Nights             int        `json:"nights"`
	TotalPriceCents    int64      `json:"totalPriceCents"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type AvailabilityResponse struct {
	Available     bool `json:"available"`
	ConflictCount int  `json:"conflictingBookings"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to convert booking view", "error", err)
	}
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	responses := make([]*BookingResponse, len(views))
	for i, view := range views {
		responses[i] = FromBookingView(view)
	}
	return responses
}
