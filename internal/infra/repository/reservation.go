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

type ReservationWriteQueries interface {
	InsertReservation(ctx context.Context, db query.DBTX, arg query.ReservationRow) error
	UpdateReservation(ctx context.Context, db query.DBTX, arg query.UpdateReservationParams) (int64, error)
	GetReservation(ctx context.Context, db query.DBTX, id string) (query.ReservationRow, error)
	GetReservationForUpdate(ctx context.Context, db query.DBTX, id string) (query.ReservationRow, error)
	ListReservationsByIDs(ctx context.Context, db query.DBTX, ids []string) ([]query.ReservationRow, error)
	ListLiveReservationsForRoom(ctx context.Context, db query.DBTX, arg query.ListLiveForRoomParams) ([]query.ReservationRow, error)
}

var errReservationRowMissing = errs.New("reservation row missing")

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.InsertReservation(ctx, r.db, converter.ReservationToRow(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", errReservationRowMissing, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	return r.toDomain(row, err)
}

func (r *ReservationRepository) toDomain(row query.ReservationRow, err error) (*reservation.Reservation, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) FindByIDs(ctx context.Context, ids []string) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by id", err)
	}
	out, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *ReservationRepository) ListLiveForRoom(ctx context.Context, room reservation.Room, from, to reservation.Date) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListLiveReservationsForRoom(ctx, r.db, query.ListLiveForRoomParams{
		CatalogID: room.CatalogID(),
		RoomID:    room.RoomID(),
		From:      pgconv.DateToPgtype(from.Time()),
		To:        pgconv.DateToPgtype(to.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live reservations", err)
	}
	out, err := converter.ReservationsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return out, nil
}
