package repository

import (
	"context"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/infra/repository/converter"
	"room-reservation-engine/internal/pkg/errs"
	"room-reservation-engine/internal/pkg/pgconv"
)

type CancellationWriteQueries interface {
	InsertCancellation(ctx context.Context, db query.DBTX, arg query.CancellationRow) error
	UpdateCancellationOutcome(ctx context.Context, db query.DBTX, arg query.UpdateCancellationOutcomeParams) (int64, error)
	GetCancellation(ctx context.Context, db query.DBTX, id string) (query.CancellationRow, error)
}

var errCancellationRowMissing = errs.New("cancellation row missing")

type CancellationRepository struct {
	queries CancellationWriteQueries
	db      query.DBTX
}

func NewCancellationRepository(queries CancellationWriteQueries, db query.DBTX) *CancellationRepository {
	return &CancellationRepository{queries: queries, db: db}
}

func (r *CancellationRepository) Create(ctx context.Context, c *reservation.Cancellation) error {
	row, err := converter.CancellationToRow(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cancellation", err, infra.KindDBFailure)
	}
	if err := r.queries.InsertCancellation(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr("failed to record cancellation", err)
	}
	return nil
}

func (r *CancellationRepository) UpdateOutcome(ctx context.Context, c *reservation.Cancellation) error {
	ids := c.ResultingIDs()
	if ids == nil {
		ids = []string{}
	}
	n, err := r.queries.UpdateCancellationOutcome(ctx, r.db, query.UpdateCancellationOutcomeParams{
		ID:                      c.ID().String(),
		Outcome:                 string(c.Outcome()),
		ResultingReservationIDs: ids,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update cancellation outcome", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("cancellation not found", errCancellationRowMissing, infra.KindNotFound)
	}
	return nil
}

func (r *CancellationRepository) FindByID(ctx context.Context, id string) (*reservation.Cancellation, error) {
	row, err := r.queries.GetCancellation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cancellation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cancellation", err)
	}
	c, err := converter.CancellationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cancellation", err, infra.KindDBFailure)
	}
	return c, nil
}
