package components

import (
	"points-rewards/internal/infra/readstore"
	"points-rewards/internal/infra/uow"
	"points-rewards/internal/usecase/queries"
	"points-rewards/internal/usecase/shared"

	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work;
// only the read stores are bound to the pool.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
		fx.Annotate(
			readstore.NewBenefitReadStore,
			fx.As(new(queries.BenefitReadStore)),
		),
		fx.Annotate(
			readstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionReadStore)),
		),
	),
)
