package booking

import (
	"campsite-booking/internal/domain/campground"

	"github.com/google/uuid"
)

// Actor is the identity fact set supplied by the caller. The core trusts it.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

// CanCancel allows administrators, the campground owner, and the guest who
// made the booking.
func CanCancel(actor Actor, b *Booking, cg *campground.Campground) bool {
	return actor.IsAdmin || actor.ID == cg.OwnerID() || actor.ID == b.UserID()
}

// CanViewCampgroundBookings allows administrators and the campground owner.
func CanViewCampgroundBookings(actor Actor, cg *campground.Campground) bool {
	return actor.IsAdmin || actor.ID == cg.OwnerID()
}
