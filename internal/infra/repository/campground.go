package repository

import (
	"context"
	"errors"

	"campsite-booking/internal/domain/campground"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findCampgroundByIDSQL = `
SELECT id, title, nightly_rate_cents, owner_id
FROM campgrounds
WHERE id = $1
`

type CampgroundRepository struct {
	db db.DBTX
}

func NewCampgroundRepository(conn db.DBTX) *CampgroundRepository {
	return &CampgroundRepository{db: conn}
}

func (r *CampgroundRepository) FindByID(ctx context.Context, id uuid.UUID) (*campground.Campground, error) {
	var (
		campgroundID, ownerID uuid.UUID
		title                 string
		nightlyRateCents      int64
	)

	err := r.db.QueryRow(ctx, findCampgroundByIDSQL, id).Scan(&campgroundID, &title, &nightlyRateCents, &ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("campground not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campground by ID", err)
	}

	return campground.NewCampground(campgroundID, title, nightlyRateCents, ownerID)
}
