package queries

import (
	"context"

	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type CampgroundQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CampgroundView, error)
	List(ctx context.Context) ([]*CampgroundView, error)
}

type campgroundQueriesImpl struct {
	campgrounds CampgroundReadStore
}

func NewCampgroundQueries(campgrounds CampgroundReadStore) CampgroundQueries {
	return &campgroundQueriesImpl{campgrounds: campgrounds}
}

func (q *campgroundQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CampgroundView, error) {
	view, err := q.campgrounds.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampgroundNotFound
		}
		return nil, errs.Wrap(err, "failed to load campground")
	}

	return view, nil
}

func (q *campgroundQueriesImpl) List(ctx context.Context) ([]*CampgroundView, error) {
	views, err := q.campgrounds.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list campgrounds")
	}

	return views, nil
}
