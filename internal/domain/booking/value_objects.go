package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRange = errors.New("check-out date must be after check-in date")
	ErrPastDate     = errors.New("check-in date cannot be in the past")
)

const nightHours = 24

// StayPeriod is the half-open interval [checkIn, checkOut). A checkout on day
// D and a new check-in on day D do not conflict, so back-to-back turnover is
// allowed.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time, now time.Time) (StayPeriod, error) {
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidRange
	}
	if checkIn.Before(now) {
		return StayPeriod{}, ErrPastDate
	}

	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayPeriod rebuilds a period from the store without the past-date
// check; persisted bookings naturally drift into the past.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

// Overlaps reports whether two half-open intervals intersect:
// a.checkIn < b.checkOut && b.checkIn < a.checkOut.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

// Nights is the ceiling of the stay length in whole days.
func (p StayPeriod) Nights() int {
	hours := p.checkOut.Sub(p.checkIn).Hours()
	nights := int(hours) / nightHours
	if hours > float64(nights*nightHours) {
		nights++
	}
	return nights
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(time.RFC3339), p.checkOut.Format(time.RFC3339))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) MultiplyNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
