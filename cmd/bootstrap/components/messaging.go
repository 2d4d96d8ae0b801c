package components

import (
	"context"
	"log/slog"

	"room-reservation-engine/internal/infra/db"
	"room-reservation-engine/internal/infra/messaging"
	"room-reservation-engine/internal/infra/outbox"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/pkg/clock"
	"room-reservation-engine/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		clock.NewRealClock,
		NewPublisher,
		fx.Annotate(
			query.New,
			fx.As(new(outbox.OutboxQueries)),
		),
		func(p *messaging.Publisher) outbox.EventPublisher { return p },
		NewTxRunner,
		outbox.NewRelay,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.RabbitMQConfig, logger *slog.Logger) (*messaging.Publisher, error) {
	pub, err := messaging.NewPublisher(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	logger.Info("rabbitmq connected", "exchange", cfg.Exchange)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewTxRunner(pool *pgxpool.Pool) outbox.TxRunner {
	return outbox.TxRunnerFunc(func(ctx context.Context, fn func(q query.DBTX) error) error {
		return db.RunInTx(ctx, pool, func(tx pgx.Tx) error {
			return fn(tx)
		})
	})
}
