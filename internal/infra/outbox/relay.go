// Package outbox moves queued reservation_events rows to the message broker.
package outbox

import (
	"context"
	"log/slog"
	"time"

	"room-reservation-engine/internal/infra/messaging"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/pkg/clock"
	"room-reservation-engine/internal/pkg/config"
	"room-reservation-engine/internal/pkg/errs"
	"room-reservation-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const maxBackoff = 5 * time.Minute

type OutboxQueries interface {
	ClaimQueuedEvents(ctx context.Context, db query.DBTX, limit uint64) ([]query.EventRow, error)
	MarkEventSent(ctx context.Context, db query.DBTX, id uuid.UUID) error
	MarkEventFailed(ctx context.Context, db query.DBTX, arg query.MarkEventFailedParams) error
}

type EventPublisher interface {
	Publish(ctx context.Context, m messaging.Message) error
}

type TxRunner interface {
	InTx(ctx context.Context, fn func(db query.DBTX) error) error
}

type TxRunnerFunc func(ctx context.Context, fn func(db query.DBTX) error) error

func (f TxRunnerFunc) InTx(ctx context.Context, fn func(db query.DBTX) error) error {
	return f(ctx, fn)
}

type Relay struct {
	runner    TxRunner
	queries   OutboxQueries
	publisher EventPublisher
	clock     clock.Clock
	cfg       config.RabbitMQConfig
	logger    *slog.Logger
}

func NewRelay(
	runner TxRunner,
	queries OutboxQueries,
	publisher EventPublisher,
	clk clock.Clock,
	cfg config.RabbitMQConfig,
	logger *slog.Logger,
) *Relay {
	return &Relay{
		runner:    runner,
		queries:   queries,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run polls until ctx is done.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("outbox relay pass failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce claims one batch and returns how many rows were published.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.runner.InTx(ctx, func(db query.DBTX) error {
		batch := r.cfg.BatchSize
		if batch <= 0 {
			batch = 1
		}
		rows, err := r.queries.ClaimQueuedEvents(ctx, db, uint64(batch)) // #nosec G115 -- positive
		if err != nil {
			return err
		}

		for _, row := range rows {
			pubErr := r.publisher.Publish(ctx, messaging.Message{
				ID:         row.ID.String(),
				Kind:       row.Kind,
				Body:       row.Payload,
				OccurredAt: pgconv.TimeFromPgtype(row.OccurredAt),
			})
			if pubErr == nil {
				if err := r.queries.MarkEventSent(ctx, db, row.ID); err != nil {
					return err
				}
				sent++
				continue
			}

			// A cancelled context rolls back the claim without counting an attempt.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			attempts := int(row.Attempts) + 1
			giveUp := r.cfg.MaxAttempts > 0 && attempts >= r.cfg.MaxAttempts
			r.logger.Warn("event publish failed",
				"event_id", row.ID,
				"kind", row.Kind,
				"attempt", attempts,
				"give_up", giveUp,
				"broker", errs.Is(pubErr, errs.ErrPublishFailed),
				"error", pubErr.Error())

			if err := r.queries.MarkEventFailed(ctx, db, query.MarkEventFailedParams{
				ID:            row.ID,
				LastError:     pubErr.Error(),
				NextAttemptAt: pgconv.TimeToPgtype(r.clock.Now().Add(Backoff(attempts))),
				GiveUp:        giveUp,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if sent > 0 {
		r.logger.Info("outbox events published", "count", sent)
	}
	return sent, nil
}

// Backoff doubles from one second per failed attempt, capped at five minutes.
func Backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 20 {
		return maxBackoff
	}
	d := time.Second << (attempts - 1)
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}
