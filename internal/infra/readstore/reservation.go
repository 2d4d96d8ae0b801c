package readstore

import (
	"context"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/infra/repository/converter"
	"room-reservation-engine/internal/pkg/pgconv"
	"room-reservation-engine/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservation(ctx context.Context, db query.DBTX, id string) (query.ReservationRow, error)
	ListReservations(ctx context.Context, db query.DBTX, arg query.ListReservationsParams) ([]query.ReservationRow, error)
	GetTicketByReservation(ctx context.Context, db query.DBTX, reservationID string) (query.TicketRow, error)
	ListLiveReservationsForRoom(ctx context.Context, db query.DBTX, arg query.ListLiveForRoomParams) ([]query.ReservationRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      query.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db query.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id string) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rowToReservationView(row)
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	params := query.ListReservationsParams{
		OwnerID:   filter.OwnerID,
		CatalogID: filter.CatalogID,
		RoomID:    filter.RoomID,
		AfterSeq:  filter.AfterSeq,
		Limit:     uint64(max(filter.Limit, 0)), // #nosec G115 -- non-negative
	}
	if filter.Date != nil {
		d := pgconv.DateToPgtype(filter.Date.Time())
		params.Date = &d
	}
	if filter.Status != nil {
		s := filter.Status.String()
		params.Status = &s
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToReservationView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *ReservationReadStore) FindTicket(ctx context.Context, reservationID string) (*queries.TicketView, error) {
	row, err := r.queries.GetTicketByReservation(ctx, r.db, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket", err)
	}
	return queries.TicketViewFromDomain(converter.TicketFromRow(row)), nil
}

func (r *ReservationReadStore) ListLiveOnDate(ctx context.Context, room reservation.Room, date reservation.Date) ([]*reservation.Reservation, error) {
	day := pgconv.DateToPgtype(date.Time())
	rows, err := r.queries.ListLiveReservationsForRoom(ctx, r.db, query.ListLiveForRoomParams{
		CatalogID: room.CatalogID(),
		RoomID:    room.RoomID(),
		From:      day,
		To:        day,
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

func rowToReservationView(row query.ReservationRow) (*queries.ReservationView, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err, infra.KindDBFailure)
	}
	return queries.ReservationViewFromDomain(res), nil
}

