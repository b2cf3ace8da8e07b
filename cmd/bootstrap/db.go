package bootstrap

import (
	"context"

	"points-rewards/internal/handler/api"
	"points-rewards/internal/infra/db"
	"points-rewards/internal/infra/uow"
	"points-rewards/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
	PoolBindings,
)

// PoolBindings exposes the pool through the narrow interfaces the
// repositories, the unit of work and the health check depend on.
var PoolBindings = fx.Provide(
	func(pool *pgxpool.Pool) db.DBTX { return pool },
	func(pool *pgxpool.Pool) uow.TxBeginner { return pool },
	func(pool *pgxpool.Pool) api.Pinger { return pool },
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
