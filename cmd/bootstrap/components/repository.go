package components

import (
	"campsite-booking/internal/infra/db"
	"campsite-booking/internal/infra/readstore"
	repo_impl "campsite-booking/internal/infra/repository"
	"campsite-booking/internal/usecase"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewCampgroundRepository,
			fx.As(new(commands.CampgroundRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewCampgroundReadStore,
			fx.As(new(queries.CampgroundReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
