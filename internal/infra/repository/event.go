package repository

import (
	"context"

	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/pkg/pgconv"
	"room-reservation-engine/internal/usecase/shared"
)

type EventWriteQueries interface {
	InsertEvent(ctx context.Context, db query.DBTX, arg query.EventRow) error
}

// EventRepository appends to the outbox table in the caller's transaction.
type EventRepository struct {
	queries EventWriteQueries
	db      query.DBTX
}

func NewEventRepository(queries EventWriteQueries, db query.DBTX) *EventRepository {
	return &EventRepository{queries: queries, db: db}
}

func (r *EventRepository) Append(ctx context.Context, e shared.Event) error {
	err := r.queries.InsertEvent(ctx, r.db, query.EventRow{
		ID:          e.ID,
		Kind:        e.Kind,
		AggregateID: e.AggregateID,
		Payload:     e.Payload,
		OccurredAt:  pgconv.TimeToPgtype(e.OccurredAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append "+e.Kind+" event", err)
	}
	return nil
}
