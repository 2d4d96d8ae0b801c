package query

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var ticketColumns = []string{"id", "reservation_id", "owner_id", "issued_at"}

func scanTicket(row pgx.Row) (TicketRow, error) {
	var t TicketRow
	err := row.Scan(&t.ID, &t.ReservationID, &t.OwnerID, &t.IssuedAt)
	return t, err
}

func (q *Queries) InsertTicket(ctx context.Context, db DBTX, arg TicketRow) error {
	_, err := q.exec(ctx, db, q.psql.Insert("tickets").
		Columns(ticketColumns...).
		Values(arg.ID, arg.ReservationID, arg.OwnerID, arg.IssuedAt))
	return err
}

func (q *Queries) GetTicketByReservation(ctx context.Context, db DBTX, reservationID string) (TicketRow, error) {
	row, err := q.queryRow(ctx, db, q.psql.Select(ticketColumns...).
		From("tickets").
		Where(squirrel.Eq{"reservation_id": reservationID}))
	if err != nil {
		return TicketRow{}, err
	}
	return scanTicket(row)
}
