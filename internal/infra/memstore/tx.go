package memstore

import (
	"context"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx implements every repository of shared.Tx over the staged state.
type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Reservations() shared.ReservationRepository   { return reservationRepo{t} }
func (t *memTx) Tickets() shared.TicketRepository             { return ticketRepo{t} }
func (t *memTx) Cancellations() shared.CancellationRepository { return cancellationRepo{t} }
func (t *memTx) Sequences() shared.SequenceRepository         { return sequenceRepo{t} }
func (t *memTx) Events() shared.EventRepository               { return eventRepo{t} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t} }

// LockRoom is a no-op: the store mutex already serializes every writer.
func (t *memTx) LockRoom(context.Context, reservation.Room) error { return nil }

type reservationRepo struct{ tx *memTx }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	id := res.ID().String()
	if _, exists := r.tx.st.reservations[id]; exists {
		return infra.WrapRepoErr("reservation "+id+" exists", errKeyConflict, infra.KindDuplicateKey)
	}
	if err := r.tx.st.checkExclusive(res); err != nil {
		return err
	}
	r.tx.st.reservations[id] = res.Clone()
	return nil
}

func (r reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	id := res.ID().String()
	if _, ok := r.tx.st.reservations[id]; !ok {
		return notFound("reservation")
	}
	if err := r.tx.st.checkExclusive(res); err != nil {
		return err
	}
	r.tx.st.reservations[id] = res.Clone()
	return nil
}

func (r reservationRepo) FindByID(_ context.Context, id string) (*reservation.Reservation, error) {
	res, ok := r.tx.st.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return res.Clone(), nil
}

func (r reservationRepo) FindByIDForUpdate(ctx context.Context, id string) (*reservation.Reservation, error) {
	return r.FindByID(ctx, id)
}

func (r reservationRepo) FindByIDs(_ context.Context, ids []string) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(ids))
	for _, id := range ids {
		if res, ok := r.tx.st.reservations[id]; ok {
			out = append(out, res.Clone())
		}
	}
	sortBySeq(out)
	return out, nil
}

func (r reservationRepo) ListLiveForRoom(_ context.Context, room reservation.Room, from, to reservation.Date) ([]*reservation.Reservation, error) {
	return r.tx.st.liveOnRoom(room, from, to), nil
}

type ticketRepo struct{ tx *memTx }

func (r ticketRepo) Create(_ context.Context, t *reservation.Ticket) error {
	if _, exists := r.tx.st.tickets[t.ReservationID()]; exists {
		return infra.WrapRepoErr("ticket exists for "+t.ReservationID(), errKeyConflict, infra.KindDuplicateKey)
	}
	r.tx.st.tickets[t.ReservationID()] = t
	return nil
}

func (r ticketRepo) FindByReservationID(_ context.Context, reservationID string) (*reservation.Ticket, error) {
	t, ok := r.tx.st.tickets[reservationID]
	if !ok {
		return nil, notFound("ticket")
	}
	return t, nil
}

type cancellationRepo struct{ tx *memTx }

func (r cancellationRepo) Create(_ context.Context, c *reservation.Cancellation) error {
	id := c.ID().String()
	if _, exists := r.tx.st.cancellations[id]; exists {
		return infra.WrapRepoErr("cancellation "+id+" exists", errKeyConflict, infra.KindDuplicateKey)
	}
	r.tx.st.cancellations[id] = copyCancellation(c)
	return nil
}

func (r cancellationRepo) UpdateOutcome(_ context.Context, c *reservation.Cancellation) error {
	id := c.ID().String()
	if _, ok := r.tx.st.cancellations[id]; !ok {
		return notFound("cancellation")
	}
	r.tx.st.cancellations[id] = copyCancellation(c)
	return nil
}

func (r cancellationRepo) FindByID(_ context.Context, id string) (*reservation.Cancellation, error) {
	c, ok := r.tx.st.cancellations[id]
	if !ok {
		return nil, notFound("cancellation")
	}
	return copyCancellation(c), nil
}

func copyCancellation(c *reservation.Cancellation) *reservation.Cancellation {
	return reservation.ReconstructCancellation(
		c.ID(), c.ReservationID(), c.Reason(), c.RequestedBy(), c.Mode(), c.Outcome(),
		append([]reservation.Slot(nil), c.Slots()...),
		append([]string{}, c.ResultingIDs()...),
		c.CreatedAt(),
	)
}

// sequenceRepo draws from the store-wide counters, which are not rolled back with the
// transaction. A failed write leaves a gap; values stay strictly increasing.
type sequenceRepo struct{ tx *memTx }

func (r sequenceRepo) Next(_ context.Context, class reservation.EntityClass) (int64, error) {
	counter, ok := r.tx.store.counters[class]
	if !ok {
		return 0, infra.WrapRepoErr("unknown entity class "+string(class), errRowMissing, infra.KindDBFailure)
	}
	return counter.Add(1), nil
}

type eventRepo struct{ tx *memTx }

func (r eventRepo) Append(_ context.Context, e shared.Event) error {
	r.tx.st.events = append(r.tx.st.events, e)
	return nil
}

type idempotencyRepo struct{ tx *memTx }

func (r idempotencyRepo) Get(_ context.Context, key, actorID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.tx.st.idempotency[idempotencyID{key: key, actor: actorID}]
	if !ok || !rec.ExpiresAt.After(r.tx.store.clock.Now()) {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}

func (r idempotencyRepo) Save(_ context.Context, rec shared.IdempotencyRecord) error {
	id := idempotencyID{key: rec.Key, actor: rec.ActorID}
	if prev, ok := r.tx.st.idempotency[id]; ok && prev.ExpiresAt.After(r.tx.store.clock.Now()) {
		return infra.WrapRepoErr("idempotency key already in use", errKeyConflict, infra.KindDuplicateKey)
	}
	r.tx.st.idempotency[id] = rec
	return nil
}
