//go:build unit || e2e

package builder

import (
	"time"

	dombooking "campsite-booking/internal/domain/booking"
	reqdto "campsite-booking/internal/handler/dto/request"
	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID           uuid.UUID
	Username         string
	CampgroundID     uuid.UUID
	CampgroundTitle  string
	OwnerID          uuid.UUID
	CheckIn          time.Time
	CheckOut         time.Time
	NightlyRateCents int64
	Now              time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		UserID:           uuid.New(),
		Username:         "camper",
		CampgroundID:     uuid.New(),
		CampgroundTitle:  "Granite Basin",
		OwnerID:          uuid.New(),
		CheckIn:          now.AddDate(0, 0, 10),
		CheckOut:         now.AddDate(0, 0, 13),
		NightlyRateCents: 2000,
		Now:              now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := dombooking.NewStayPeriod(b.CheckIn, b.CheckOut, b.Now)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.UserID, b.CampgroundID, stay, dombooking.NewMoney(b.NightlyRateCents))
}

func (b *BookingBuilder) BuildStay() (dombooking.StayPeriod, error) {
	return dombooking.NewStayPeriod(b.CheckIn, b.CheckOut, b.Now)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CampgroundID: b.CampgroundID,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	stay := dombooking.ReconstructStayPeriod(b.CheckIn, b.CheckOut)
	nights := stay.Nights()
	return &queries.BookingView{
		ID:                uuid.New(),
		CampgroundID:      b.CampgroundID,
		CampgroundTitle:   b.CampgroundTitle,
		CampgroundOwnerID: b.OwnerID,
		UserID:            b.UserID,
		Username:          b.Username,
		CheckIn:           b.CheckIn,
		CheckOut:          b.CheckOut,
		Status:            dombooking.StatusConfirmed.String(),
		Nights:            nights,
		TotalPriceCents:   b.NightlyRateCents * int64(nights),
		CreatedAt:         b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithCampgroundID(campgroundID uuid.UUID) *BookingBuilder {
	b.CampgroundID = campgroundID
	return b
}

func (b *BookingBuilder) WithOwnerID(ownerID uuid.UUID) *BookingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithNights(nights int) *BookingBuilder {
	b.CheckOut = b.CheckIn.AddDate(0, 0, nights)
	return b
}

func (b *BookingBuilder) WithNightlyRateCents(cents int64) *BookingBuilder {
	b.NightlyRateCents = cents
	return b
}
