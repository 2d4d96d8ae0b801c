package components

import (
	"room-reservation-engine/internal/infra/lock"
	"room-reservation-engine/internal/pkg/config"
	"room-reservation-engine/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LocalLockModule = fx.Module("lock/local",
	fx.Provide(
		func(cfg config.Config) shared.RoomLocker {
			return lock.NewLocalLocker(cfg.Lock.WaitTimeout)
		},
	),
)

var RedisLockModule = fx.Module("lock/redis",
	fx.Provide(
		func(client redis.UniversalClient, cfg config.Config) shared.RoomLocker {
			return lock.NewRedisLocker(client, cfg.Lock.TTL, cfg.Lock.WaitTimeout)
		},
	),
)

var NoopLockModule = fx.Module("lock/none",
	fx.Provide(
		func() shared.RoomLocker { return lock.NoopLocker{} },
	),
)
