package repository

import (
	"context"

	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/pkg/pgconv"
	"room-reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	GetIdempotencyKey(ctx context.Context, db query.DBTX, key, actorID uuid.UUID) (query.IdempotencyKeyRow, error)
	UpsertIdempotencyKey(ctx context.Context, db query.DBTX, arg query.IdempotencyKeyRow) error
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      query.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db query.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, actorID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, key, actorID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:         row.Key,
		ActorID:     row.ActorID,
		Endpoint:    row.Endpoint,
		RequestHash: row.RequestHash,
		Status:      row.Status,
		ResultID:    pgconv.StringPtrFromPgtype(row.ResultID),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

// Save stores rec unless a live record for the same key and actor exists, in which case it
// fails with KindDuplicateKey.
func (r *IdempotencyRepository) Save(ctx context.Context, rec shared.IdempotencyRecord) error {
	err := r.queries.UpsertIdempotencyKey(ctx, r.db, query.IdempotencyKeyRow{
		Key:         rec.Key,
		ActorID:     rec.ActorID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		Status:      rec.Status,
		ResultID:    pgconv.StringPtrToPgtype(rec.ResultID),
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("idempotency key already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to save idempotency key", err)
	}
	return nil
}
