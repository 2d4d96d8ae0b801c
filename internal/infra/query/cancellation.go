package query

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var cancellationColumns = []string{
	"id", "seq", "reservation_id", "reason", "requested_by", "mode", "outcome",
	"requested_slots", "resulting_reservation_ids", "created_at",
}

func scanCancellation(row pgx.Row) (CancellationRow, error) {
	var c CancellationRow
	err := row.Scan(
		&c.ID, &c.Seq, &c.ReservationID, &c.Reason, &c.RequestedBy, &c.Mode, &c.Outcome,
		&c.RequestedSlots, &c.ResultingReservationIDs, &c.CreatedAt,
	)
	return c, err
}

func (q *Queries) InsertCancellation(ctx context.Context, db DBTX, arg CancellationRow) error {
	_, err := q.exec(ctx, db, q.psql.Insert("cancellations").
		Columns(cancellationColumns...).
		Values(
			arg.ID, arg.Seq, arg.ReservationID, arg.Reason, arg.RequestedBy, arg.Mode, arg.Outcome,
			arg.RequestedSlots, arg.ResultingReservationIDs, arg.CreatedAt,
		))
	return err
}

type UpdateCancellationOutcomeParams struct {
	ID                      string
	Outcome                 string
	ResultingReservationIDs []string
}

func (q *Queries) UpdateCancellationOutcome(ctx context.Context, db DBTX, arg UpdateCancellationOutcomeParams) (int64, error) {
	return q.exec(ctx, db, q.psql.Update("cancellations").
		Set("outcome", arg.Outcome).
		Set("resulting_reservation_ids", arg.ResultingReservationIDs).
		Where(squirrel.Eq{"id": arg.ID}))
}

func (q *Queries) GetCancellation(ctx context.Context, db DBTX, id string) (CancellationRow, error) {
	row, err := q.queryRow(ctx, db, q.psql.Select(cancellationColumns...).
		From("cancellations").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return CancellationRow{}, err
	}
	return scanCancellation(row)
}

func (q *Queries) ListCancellationsByReservation(ctx context.Context, db DBTX, reservationID string) ([]CancellationRow, error) {
	return collect(ctx, db, q.psql.Select(cancellationColumns...).
		From("cancellations").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("seq"), scanCancellation)
}
