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

const findCampgroundViewSQL = `
SELECT c.id, c.title, c.nightly_rate_cents, c.owner_id, o.username, c.created_at
FROM campgrounds c
JOIN users o ON o.id = c.owner_id
WHERE c.id = $1
`

const listCampgroundsSQL = `
SELECT c.id, c.title, c.nightly_rate_cents, c.owner_id, o.username, c.created_at
FROM campgrounds c
JOIN users o ON o.id = c.owner_id
ORDER BY c.title ASC
`

type CampgroundReadStore struct {
	db db.DBTX
}

func NewCampgroundReadStore(conn db.DBTX) *CampgroundReadStore {
	return &CampgroundReadStore{db: conn}
}

func (r *CampgroundReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CampgroundView, error) {
	var v queries.CampgroundView
	err := r.db.QueryRow(ctx, findCampgroundViewSQL, id).Scan(
		&v.ID, &v.Title, &v.NightlyRateCents, &v.OwnerID, &v.OwnerUsername, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("campground not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find campground view", err)
	}

	return &v, nil
}

func (r *CampgroundReadStore) List(ctx context.Context) ([]*queries.CampgroundView, error) {
	rows, err := r.db.Query(ctx, listCampgroundsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campgrounds", err)
	}
	defer rows.Close()

	views := []*queries.CampgroundView{}
	for rows.Next() {
		var v queries.CampgroundView
		if scanErr := rows.Scan(&v.ID, &v.Title, &v.NightlyRateCents, &v.OwnerID, &v.OwnerUsername, &v.CreatedAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan campground view", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read campground views", err)
	}

	return views, nil
}
