package bootstrap

import (
	"context"
	"log/slog"

	"points-rewards/internal/infra/storage"
	"points-rewards/internal/pkg/config"
	"points-rewards/internal/usecase/commands"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewImageStore,
	),
)

// NewImageStore returns nil when storage is disabled; benefit image
// uploads are then rejected.
func NewImageStore(lc fx.Lifecycle, cfg config.Config) (commands.ImageStore, error) {
	if !cfg.Storage.Enabled {
		slog.Warn("image storage disabled, benefit image uploads will be rejected")
		return nil, nil
	}

	store, err := storage.NewMinioImageStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsureBucket(ctx)
		},
	})
	return store, nil
}
