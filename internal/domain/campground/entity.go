package campground

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle   = errors.New("campground title cannot be empty")
	ErrTitleTooLong = errors.New("campground title is too long (max 255 characters)")
	ErrNegativeRate = errors.New("nightly rate cannot be negative")
)

const MaxTitleLength = 255

// Campground is the bookable resource. The booking core only reads it: the
// nightly rate prices new stays and the owner identity feeds authorization.
// Lifecycle (create/edit/photos/geocoding) belongs to the listing side.
type Campground struct {
	id               uuid.UUID
	title            string
	nightlyRateCents int64
	ownerID          uuid.UUID
	createdAt        time.Time
}

func NewCampground(id uuid.UUID, title string, nightlyRateCents int64, ownerID uuid.UUID) (*Campground, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	// Zero is valid: free campgrounds price every stay at zero.
	if nightlyRateCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Campground{
		id:               id,
		title:            title,
		nightlyRateCents: nightlyRateCents,
		ownerID:          ownerID,
	}, nil
}

func (c *Campground) IsFree() bool {
	return c.nightlyRateCents == 0
}

func (c *Campground) ID() uuid.UUID           { return c.id }
func (c *Campground) Title() string           { return c.title }
func (c *Campground) NightlyRateCents() int64 { return c.nightlyRateCents }
func (c *Campground) OwnerID() uuid.UUID      { return c.ownerID }
func (c *Campground) CreatedAt() time.Time    { return c.createdAt }
