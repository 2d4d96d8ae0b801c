package query

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var eventColumns = []string{
	"id", "kind", "aggregate_id", "payload", "occurred_at", "status", "attempts", "last_error",
}

func scanEvent(row pgx.Row) (EventRow, error) {
	var e EventRow
	err := row.Scan(&e.ID, &e.Kind, &e.AggregateID, &e.Payload, &e.OccurredAt, &e.Status, &e.Attempts, &e.LastError)
	return e, err
}

func (q *Queries) InsertEvent(ctx context.Context, db DBTX, arg EventRow) error {
	_, err := q.exec(ctx, db, q.psql.Insert("reservation_events").
		Columns("id", "kind", "aggregate_id", "payload", "occurred_at", "status").
		Values(arg.ID, arg.Kind, arg.AggregateID, arg.Payload, arg.OccurredAt, EventStatusQueued))
	return err
}

// ClaimQueuedEvents locks up to limit due rows; rows locked by another relay are skipped.
func (q *Queries) ClaimQueuedEvents(ctx context.Context, db DBTX, limit uint64) ([]EventRow, error) {
	return collect(ctx, db, q.psql.Select(eventColumns...).
		From("reservation_events").
		Where(squirrel.Eq{"status": EventStatusQueued}).
		Where(squirrel.Expr("next_attempt_at <= now()")).
		OrderBy("occurred_at", "id").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED"), scanEvent)
}

func (q *Queries) MarkEventSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := q.exec(ctx, db, q.psql.Update("reservation_events").
		Set("status", EventStatusSent).
		Set("sent_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}))
	return err
}

type MarkEventFailedParams struct {
	ID            uuid.UUID
	LastError     string
	NextAttemptAt pgtype.Timestamptz
	GiveUp        bool
}

func (q *Queries) MarkEventFailed(ctx context.Context, db DBTX, arg MarkEventFailedParams) error {
	status := EventStatusQueued
	if arg.GiveUp {
		status = EventStatusFailed
	}
	_, err := q.exec(ctx, db, q.psql.Update("reservation_events").
		Set("status", status).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("last_error", arg.LastError).
		Set("next_attempt_at", arg.NextAttemptAt).
		Where(squirrel.Eq{"id": arg.ID}))
	return err
}
