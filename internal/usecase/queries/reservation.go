package queries

import (
	"context"
	"strings"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrTicketNotFound      = errs.New("ticket not found")
	ErrReservationAccess   = errs.New("reservation access denied")
	ErrInvalidFilter       = errs.New("invalid filter")
)

type ReservationFilter struct {
	OwnerID   *uuid.UUID
	CatalogID string
	RoomID    string
	Date      *reservation.Date
	Status    *reservation.Status
	AfterSeq  int64
	Limit     int
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id string) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	FindTicket(ctx context.Context, reservationID string) (*TicketView, error)
	ListLiveOnDate(ctx context.Context, room reservation.Room, date reservation.Date) ([]*reservation.Reservation, error)
}

type ListReservationsInput struct {
	CatalogID string
	RoomID    string
	Date      string
	Status    string
	Mine      bool
	After     string
	Limit     int
}

// OpeningHours bounds availability answers to [Open, Close).
type OpeningHours struct {
	Open  int
	Close int
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id string) (*ReservationView, error)
	List(ctx context.Context, actor user.Actor, in ListReservationsInput) ([]*ReservationView, *Cursor, error)
	GetTicket(ctx context.Context, actor user.Actor, reservationID string) (*TicketView, error)
	Availability(ctx context.Context, catalogID, roomID, date string) (*AvailabilityView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	hours OpeningHours
}

func NewReservationQueries(store ReservationReadStore, hours OpeningHours) ReservationQueries {
	return &reservationQueriesImpl{store: store, hours: hours}
}

// Viewers only ever see their own reservations; operators and admins see everything.
func canRead(actor user.Actor, ownerID uuid.UUID) bool {
	return actor.Role.AtLeast(user.RoleOperator) || actor.ID == ownerID
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id string) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !canRead(actor, view.OwnerID) {
		return nil, ErrReservationAccess
	}

	ticket, err := q.store.FindTicket(ctx, id)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	view.Ticket = ticket
	return view, nil
}

func (q *reservationQueriesImpl) GetTicket(ctx context.Context, actor user.Actor, reservationID string) (*TicketView, error) {
	ticket, err := q.store.FindTicket(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if !canRead(actor, ticket.OwnerID) {
		return nil, ErrReservationAccess
	}
	return ticket, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor user.Actor, in ListReservationsInput) ([]*ReservationView, *Cursor, error) {
	filter, err := q.buildFilter(actor, in)
	if err != nil {
		return nil, nil, err
	}

	limit := filter.Limit
	filter.Limit = limit + 1
	rows, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.Seq)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reservationQueriesImpl) buildFilter(actor user.Actor, in ListReservationsInput) (ReservationFilter, error) {
	filter := ReservationFilter{
		CatalogID: strings.TrimSpace(in.CatalogID),
		RoomID:    strings.TrimSpace(in.RoomID),
		Limit:     ValidateLimit(in.Limit),
	}

	if in.Mine || !actor.Role.AtLeast(user.RoleOperator) {
		owner := actor.ID
		filter.OwnerID = &owner
	}
	if in.Date != "" {
		d, err := reservation.ParseDate(in.Date)
		if err != nil {
			return ReservationFilter{}, errs.Wrap(ErrInvalidFilter, "date must be YYYY-MM-DD")
		}
		filter.Date = &d
	}
	if in.Status != "" {
		s, err := reservation.ParseStatus(in.Status)
		if err != nil {
			return ReservationFilter{}, errs.Wrap(ErrInvalidFilter, "unknown status "+in.Status)
		}
		filter.Status = &s
	}
	if in.After != "" {
		seq, err := DecodeAfterCursor(in.After)
		if err != nil {
			return ReservationFilter{}, errs.Wrap(ErrInvalidCursor, err.Error())
		}
		filter.AfterSeq = seq
	}
	return filter, nil
}

func (q *reservationQueriesImpl) Availability(ctx context.Context, catalogID, roomID, date string) (*AvailabilityView, error) {
	room, err := reservation.NewRoom(catalogID, roomID)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidFilter, "catalog and room are required")
	}
	day, err := reservation.ParseDate(date)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidFilter, "date must be YYYY-MM-DD")
	}

	live, err := q.store.ListLiveOnDate(ctx, room, day)
	if err != nil {
		return nil, err
	}

	free := reservation.FreeRanges(live, day, q.hours.Open, q.hours.Close)
	return &AvailabilityView{
		CatalogID: room.CatalogID(),
		RoomID:    room.RoomID(),
		Date:      day.String(),
		OpenHour:  q.hours.Open,
		CloseHour: q.hours.Close,
		Free:      HourRangeViews(free),
	}, nil
}
