package repository

import (
	"context"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/infra/query"
)

type SequenceQueries interface {
	NextSequenceValue(ctx context.Context, db query.DBTX, entityClass string) (int64, error)
}

type SequenceRepository struct {
	queries SequenceQueries
	db      query.DBTX
}

func NewSequenceRepository(queries SequenceQueries, db query.DBTX) *SequenceRepository {
	return &SequenceRepository{queries: queries, db: db}
}

func (r *SequenceRepository) Next(ctx context.Context, class reservation.EntityClass) (int64, error) {
	seq, err := r.queries.NextSequenceValue(ctx, r.db, string(class))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate "+string(class)+" sequence", err)
	}
	return seq, nil
}
