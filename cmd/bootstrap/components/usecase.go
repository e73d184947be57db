package components

import (
	"campsite-booking/internal/pkg/clock"
	"campsite-booking/internal/usecase"
	"campsite-booking/internal/usecase/commands"
	"campsite-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
	func(uc usecase.AuthUseCase) usecase.TokenValidator { return uc },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCampgroundQueries,
	),
)
