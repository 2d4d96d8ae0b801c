package readstore

import (
	"context"

	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/infra/repository/converter"
	"room-reservation-engine/internal/pkg/pgconv"
	"room-reservation-engine/internal/usecase/queries"
)

type CancellationViewQueries interface {
	GetCancellation(ctx context.Context, db query.DBTX, id string) (query.CancellationRow, error)
	ListCancellationsByReservation(ctx context.Context, db query.DBTX, reservationID string) ([]query.CancellationRow, error)
}

type CancellationReadStore struct {
	queries CancellationViewQueries
	db      query.DBTX
}

func NewCancellationReadStore(queries CancellationViewQueries, db query.DBTX) *CancellationReadStore {
	return &CancellationReadStore{queries: queries, db: db}
}

func (r *CancellationReadStore) FindByID(ctx context.Context, id string) (*queries.CancellationView, error) {
	row, err := r.queries.GetCancellation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cancellation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cancellation", err)
	}
	return rowToCancellationView(row)
}

func (r *CancellationReadStore) ListByReservation(ctx context.Context, reservationID string) ([]*queries.CancellationView, error) {
	rows, err := r.queries.ListCancellationsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cancellations", err)
	}
	result := make([]*queries.CancellationView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToCancellationView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func rowToCancellationView(row query.CancellationRow) (*queries.CancellationView, error) {
	c, err := converter.CancellationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode cancellation", err, infra.KindDBFailure)
	}
	return queries.CancellationViewFromDomain(c), nil
}
