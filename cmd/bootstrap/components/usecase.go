package components

import (
	"points-rewards/internal/pkg/clock"
	"points-rewards/internal/pkg/config"
	"points-rewards/internal/pkg/metrics"
	"points-rewards/internal/usecase"
	"points-rewards/internal/usecase/commands"
	"points-rewards/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(m *metrics.Metrics) commands.RedemptionMetrics { return m },
	func(cfg config.Config) commands.RedemptionConfig {
		return commands.RedemptionConfig{MaxLeaveDays: cfg.Redemption.MaxLeaveDays}
	},
	func(cfg config.Config) commands.BenefitConfig {
		return commands.BenefitConfig{MaxImageBytes: cfg.Storage.MaxImageBytes}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRedemptionUseCase,
		commands.NewAccountUseCase,
		commands.NewBenefitUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRedemptionQueries,
		queries.NewAccountQueries,
		queries.NewBenefitQueries,
		usecase.NewAuthUseCase,
	),
)
