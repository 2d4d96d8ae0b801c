package bootstrap

import (
	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies a config loaded before the app is built, so that main can pick
// drivers from the same values the providers see.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(
			func(cfg config.Config) config.RabbitMQConfig { return cfg.RabbitMQ },
			func(cfg config.Config) reservation.Prefixes {
				return reservation.Prefixes{
					Reservation:  cfg.Reservation.IDPrefix,
					Cancellation: cfg.Reservation.CancellationIDPrefix,
				}
			},
		),
	)
}
