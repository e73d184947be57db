package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CampgroundID uuid.UUID `json:"campground_id" binding:"required"`
	CheckIn      time.Time `json:"check_in" binding:"required"`
	CheckOut     time.Time `json:"check_out" binding:"required"`
}

type CancelBookingRequest struct {
	CancellationReason string `json:"cancellation_reason"`
}

type CheckAvailabilityRequest struct {
	CampgroundID uuid.UUID `json:"campground_id" binding:"required"`
	CheckIn      time.Time `json:"check_in" binding:"required"`
	CheckOut     time.Time `json:"check_out" binding:"required"`
}
