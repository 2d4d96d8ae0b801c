package query

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var liveStatuses = []string{"pending", "confirmed"}

var reservationColumns = []string{
	"id", "seq", "owner_id", "catalog_id", "room_id",
	"start_date", "end_date", "start_time", "end_time",
	"purpose", "attendees", "status", "created_at", "updated_at",
}

func scanReservation(row pgx.Row) (ReservationRow, error) {
	var r ReservationRow
	err := row.Scan(
		&r.ID, &r.Seq, &r.OwnerID, &r.CatalogID, &r.RoomID,
		&r.StartDate, &r.EndDate, &r.StartTime, &r.EndTime,
		&r.Purpose, &r.Attendees, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) InsertReservation(ctx context.Context, db DBTX, arg ReservationRow) error {
	_, err := q.exec(ctx, db, q.psql.Insert("reservations").
		Columns(reservationColumns...).
		Values(
			arg.ID, arg.Seq, arg.OwnerID, arg.CatalogID, arg.RoomID,
			arg.StartDate, arg.EndDate, arg.StartTime, arg.EndTime,
			arg.Purpose, arg.Attendees, arg.Status, arg.CreatedAt, arg.UpdatedAt,
		))
	return err
}

type UpdateReservationParams struct {
	ID        string
	StartTime pgtype.Time
	EndTime   pgtype.Time
	Status    string
	UpdatedAt pgtype.Timestamptz
}

// UpdateReservation returns the number of rows touched; zero means the id is unknown.
func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	return q.exec(ctx, db, q.psql.Update("reservations").
		Set("start_time", arg.StartTime).
		Set("end_time", arg.EndTime).
		Set("status", arg.Status).
		Set("updated_at", arg.UpdatedAt).
		Where(squirrel.Eq{"id": arg.ID}))
}

func (q *Queries) GetReservation(ctx context.Context, db DBTX, id string) (ReservationRow, error) {
	row, err := q.queryRow(ctx, db, q.psql.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return ReservationRow{}, err
	}
	return scanReservation(row)
}

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id string) (ReservationRow, error) {
	row, err := q.queryRow(ctx, db, q.psql.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE"))
	if err != nil {
		return ReservationRow{}, err
	}
	return scanReservation(row)
}

func (q *Queries) ListReservationsByIDs(ctx context.Context, db DBTX, ids []string) ([]ReservationRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return collect(ctx, db, q.psql.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("seq"), scanReservation)
}

type ListLiveForRoomParams struct {
	CatalogID string
	RoomID    string
	From      pgtype.Date
	To        pgtype.Date
}

// ListLiveReservationsForRoom pre-filters overlap candidates by room and date range only; the
// time-of-day test is left to the caller.
func (q *Queries) ListLiveReservationsForRoom(ctx context.Context, db DBTX, arg ListLiveForRoomParams) ([]ReservationRow, error) {
	return collect(ctx, db, q.psql.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"catalog_id": arg.CatalogID,
			"room_id":    arg.RoomID,
			"status":     liveStatuses,
		}).
		Where(squirrel.LtOrEq{"start_date": arg.To}).
		Where(squirrel.GtOrEq{"end_date": arg.From}).
		OrderBy("seq"), scanReservation)
}

type ListReservationsParams struct {
	OwnerID   *uuid.UUID
	CatalogID string
	RoomID    string
	Date      *pgtype.Date
	Status    *string
	AfterSeq  int64
	Limit     uint64
}

func (q *Queries) ListReservations(ctx context.Context, db DBTX, arg ListReservationsParams) ([]ReservationRow, error) {
	b := q.psql.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Gt{"seq": arg.AfterSeq})

	if arg.OwnerID != nil {
		b = b.Where(squirrel.Eq{"owner_id": *arg.OwnerID})
	}
	if arg.CatalogID != "" {
		b = b.Where(squirrel.Eq{"catalog_id": arg.CatalogID})
	}
	if arg.RoomID != "" {
		b = b.Where(squirrel.Eq{"room_id": arg.RoomID})
	}
	if arg.Date != nil {
		b = b.Where(squirrel.LtOrEq{"start_date": *arg.Date}).
			Where(squirrel.GtOrEq{"end_date": *arg.Date})
	}
	if arg.Status != nil {
		b = b.Where(squirrel.Eq{"status": *arg.Status})
	}

	return collect(ctx, db, b.OrderBy("seq").Limit(arg.Limit), scanReservation)
}

// LockRoom takes a transaction-scoped advisory lock keyed by the room.
func (q *Queries) LockRoom(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key)
	return err
}
