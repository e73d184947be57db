package components

import (
	"campsite-booking/internal/handler"
	"campsite-booking/internal/handler/api"
	"campsite-booking/internal/handler/middleware"
	"campsite-booking/internal/metrics"
	"campsite-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCampgroundHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(
		metrics.Register,
		handler.NewRouter,
	),
)
