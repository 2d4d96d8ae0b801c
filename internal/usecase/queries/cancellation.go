package queries

import (
	"context"

	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/pkg/errs"
)

var ErrCancellationNotFound = errs.New("cancellation not found")

type CancellationReadStore interface {
	FindByID(ctx context.Context, id string) (*CancellationView, error)
	ListByReservation(ctx context.Context, reservationID string) ([]*CancellationView, error)
}

type CancellationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id string) (*CancellationView, error)
	ListByReservation(ctx context.Context, actor user.Actor, reservationID string) ([]*CancellationView, error)
}

type cancellationQueriesImpl struct {
	store        CancellationReadStore
	reservations ReservationReadStore
}

func NewCancellationQueries(store CancellationReadStore, reservations ReservationReadStore) CancellationQueries {
	return &cancellationQueriesImpl{store: store, reservations: reservations}
}

func (q *cancellationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id string) (*CancellationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCancellationNotFound
		}
		return nil, err
	}
	if err := q.authorize(ctx, actor, view.ReservationID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *cancellationQueriesImpl) ListByReservation(ctx context.Context, actor user.Actor, reservationID string) ([]*CancellationView, error) {
	if err := q.authorize(ctx, actor, reservationID); err != nil {
		return nil, err
	}
	return q.store.ListByReservation(ctx, reservationID)
}

func (q *cancellationQueriesImpl) authorize(ctx context.Context, actor user.Actor, reservationID string) error {
	res, err := q.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return err
	}
	if !canRead(actor, res.OwnerID) {
		return ErrReservationAccess
	}
	return nil
}
