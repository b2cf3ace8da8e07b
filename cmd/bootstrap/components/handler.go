package components

import (
	"points-rewards/internal/handler"
	"points-rewards/internal/handler/api"
	"points-rewards/internal/handler/middleware"
	"points-rewards/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(db api.Pinger, cfg config.Config) *api.HealthHandler {
			return api.NewHealthHandler(db, cfg.Server.Version)
		},
		api.NewAuthHandler,
		api.NewRedemptionHandler,
		api.NewAccountHandler,
		api.NewBenefitHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
