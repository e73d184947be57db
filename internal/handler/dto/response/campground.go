package response

import (
	"log/slog"
	"time"

	"campsite-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CampgroundResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	OwnerID          uuid.UUID `json:"ownerId"`
	OwnerUsername    string    `json:"ownerUsername"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromCampgroundView(view *queries.CampgroundView) *CampgroundResponse {
	var resp CampgroundResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to convert campground view", "error", err)
	}
	return &resp
}

func FromCampgroundViews(views []*queries.CampgroundView) []*CampgroundResponse {
	responses := make([]*CampgroundResponse, len(views))
	for i, view := range views {
		responses[i] = FromCampgroundView(view)
	}
	return responses
}
