package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"daycare-waitlist/internal/infra/memstore"
	"daycare-waitlist/internal/infra/postgres"
	"daycare-waitlist/internal/pkg/config"
	"daycare-waitlist/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

const startupTimeout = 30 * time.Second

// NewUnitOfWork selects the backing store from STORE_DRIVER. The postgres pool is closed on shutdown.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		logger.Info("Using in-memory store")
		return memstore.New(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()
			return nil
		},
	})

	logger.Info("Using postgres store", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_retries", cfg.Store.MaxRetries)
	return postgres.NewPostgresUoW(pool, cfg.Store.MaxRetries), nil
}
