package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"room-reservation-engine/cmd/bootstrap"
	"room-reservation-engine/internal/pkg/config"
	"room-reservation-engine/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"go.uber.org/fx"
)

// applySchema diffs the live database against the SQL files in MIGRATIONS_DIR and applies the
// difference. It needs the atlas binary on PATH and a dev database for normalization.
func applySchema(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	dir, err := filepath.Abs(cfg.Migrate.Dir)
	if err != nil {
		return errs.Wrap(err, "resolve migrations dir")
	}

	client, err := atlasexec.NewClient(dir, "atlas")
	if err != nil {
		return errs.Wrap(err, "atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          "file://" + dir,
		DevURL:      cfg.Migrate.DevURL,
		AutoApprove: true,
	})
	if err != nil {
		return errs.Wrap(err, "schema apply")
	}

	logger.Info("schema applied", "statements", len(res.Changes.Applied), "dir", dir)
	for _, stmt := range res.Changes.Applied {
		logger.Debug("applied", "sql", stmt)
	}
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var runErr error
	app := fx.New(
		bootstrap.ConfigModule(cfg),
		bootstrap.LoggerModule,
		fx.NopLogger,
		fx.Invoke(func(cfg config.Config, logger *slog.Logger) {
			runErr = applySchema(context.Background(), cfg, logger)
		}),
	)
	if err := app.Err(); err != nil {
		slog.Error("failed to build migrate app", "error", err)
		os.Exit(1)
	}
	if runErr != nil {
		slog.Error("migration failed", "error", runErr)
		os.Exit(1)
	}
}
