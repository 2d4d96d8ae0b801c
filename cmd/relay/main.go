package main

import (
	"context"
	"log/slog"
	"os"

	"room-reservation-engine/cmd/bootstrap"
	"room-reservation-engine/internal/infra/outbox"
	"room-reservation-engine/internal/pkg/config"

	"go.uber.org/fx"
)

func startRelay(lc fx.Lifecycle, relay *outbox.Relay, cfg config.RabbitMQConfig, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting outbox relay",
				"exchange", cfg.Exchange,
				"batch_size", cfg.BatchSize,
				"poll_interval", cfg.PollInterval)
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("outbox relay stopped")
			return nil
		},
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	app := fx.New(
		bootstrap.RelayModule(cfg),
		fx.Invoke(startRelay),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start relay", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop relay cleanly", "error", err)
	}
}
