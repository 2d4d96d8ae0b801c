package bootstrap

import (
	"room-reservation-engine/cmd/bootstrap/components"
	"room-reservation-engine/internal/pkg/config"

	"go.uber.org/fx"
)

// ServerModule assembles the HTTP server. The store and lock drivers decide which
// infrastructure gets constructed at all.
func ServerModule(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		components.UseCaseModule,
		components.HandlerModule,
	}

	switch cfg.Store.Driver {
	case config.StoreMemory:
		opts = append(opts, components.MemoryPersistenceModule)
	default:
		opts = append(opts, DBModule, components.PostgresPersistenceModule)
	}

	switch cfg.Lock.Driver {
	case config.LockRedis:
		opts = append(opts, RedisModule, components.RedisLockModule)
	case config.LockNone:
		opts = append(opts, components.NoopLockModule)
	default:
		opts = append(opts, components.LocalLockModule)
	}

	return fx.Options(opts...)
}

// RelayModule assembles the outbox relay. It always runs against Postgres.
func RelayModule(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		DBModule,
		components.MessagingModule,
	)
}
