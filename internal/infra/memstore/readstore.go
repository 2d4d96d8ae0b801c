package memstore

import (
	"context"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/usecase/queries"
)

// ReservationReads serves the query side from the committed state.
type ReservationReads struct{ store *Store }

func (s *Store) ReservationReads() *ReservationReads { return &ReservationReads{store: s} }

func (r *ReservationReads) FindByID(_ context.Context, id string) (*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.current.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return queries.ReservationViewFromDomain(res), nil
}

func (r *ReservationReads) List(_ context.Context, f queries.ReservationFilter) ([]*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*reservation.Reservation, 0)
	for _, res := range r.store.current.reservations {
		if matches(res, f) {
			matched = append(matched, res)
		}
	}
	sortBySeq(matched)
	if f.Limit >= 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	out := make([]*queries.ReservationView, 0, len(matched))
	for _, res := range matched {
		out = append(out, queries.ReservationViewFromDomain(res))
	}
	return out, nil
}

func matches(res *reservation.Reservation, f queries.ReservationFilter) bool {
	switch {
	case res.ID().Seq() <= f.AfterSeq:
		return false
	case f.OwnerID != nil && res.OwnerID() != *f.OwnerID:
		return false
	case f.CatalogID != "" && res.Room().CatalogID() != f.CatalogID:
		return false
	case f.RoomID != "" && res.Room().RoomID() != f.RoomID:
		return false
	case f.Date != nil && !res.Window().CoversDate(*f.Date):
		return false
	case f.Status != nil && res.Status() != *f.Status:
		return false
	}
	return true
}

func (r *ReservationReads) FindTicket(_ context.Context, reservationID string) (*queries.TicketView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.current.tickets[reservationID]
	if !ok {
		return nil, notFound("ticket")
	}
	return queries.TicketViewFromDomain(t), nil
}

func (r *ReservationReads) ListLiveOnDate(_ context.Context, room reservation.Room, date reservation.Date) ([]*reservation.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.current.liveOnRoom(room, date, date), nil
}

type CancellationReads struct{ store *Store }

func (s *Store) CancellationReads() *CancellationReads { return &CancellationReads{store: s} }

func (r *CancellationReads) FindByID(_ context.Context, id string) (*queries.CancellationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.current.cancellations[id]
	if !ok {
		return nil, notFound("cancellation")
	}
	return queries.CancellationViewFromDomain(c), nil
}

func (r *CancellationReads) ListByReservation(_ context.Context, reservationID string) ([]*queries.CancellationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*reservation.Cancellation, 0)
	for _, c := range r.store.current.cancellations {
		if c.ReservationID() == reservationID {
			matched = append(matched, c)
		}
	}
	sortCancellations(matched)

	out := make([]*queries.CancellationView, 0, len(matched))
	for _, c := range matched {
		out = append(out, queries.CancellationViewFromDomain(c))
	}
	return out, nil
}
