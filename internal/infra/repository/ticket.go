package repository

import (
	"context"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/infra/repository/converter"
	"room-reservation-engine/internal/pkg/pgconv"
)

type TicketWriteQueries interface {
	InsertTicket(ctx context.Context, db query.DBTX, arg query.TicketRow) error
	GetTicketByReservation(ctx context.Context, db query.DBTX, reservationID string) (query.TicketRow, error)
}

type TicketRepository struct {
	queries TicketWriteQueries
	db      query.DBTX
}

func NewTicketRepository(queries TicketWriteQueries, db query.DBTX) *TicketRepository {
	return &TicketRepository{queries: queries, db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *reservation.Ticket) error {
	if err := r.queries.InsertTicket(ctx, r.db, converter.TicketToRow(t)); err != nil {
		return infra.WrapRepoErr("failed to issue ticket", err)
	}
	return nil
}

func (r *TicketRepository) FindByReservationID(ctx context.Context, reservationID string) (*reservation.Ticket, error) {
	row, err := r.queries.GetTicketByReservation(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}
	return converter.TicketFromRow(row), nil
}
