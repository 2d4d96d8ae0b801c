// Package memstore keeps the whole reservation state in process memory. Every write
// transaction holds one store-wide mutex and works on a copy of the state that replaces the
// live state only on success.
package memstore

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/pkg/clock"
	"room-reservation-engine/internal/pkg/errs"
	"room-reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errRowMissing  = errs.New("row missing")
	errOverlap     = errs.New("live window overlaps another reservation on the room")
	errKeyConflict = errs.New("duplicate key")
)

type idempotencyID struct {
	key   uuid.UUID
	actor uuid.UUID
}

type state struct {
	reservations  map[string]*reservation.Reservation
	tickets       map[string]*reservation.Ticket // by reservation id
	cancellations map[string]*reservation.Cancellation
	idempotency   map[idempotencyID]shared.IdempotencyRecord
	events        []shared.Event
}

func newState() *state {
	return &state{
		reservations:  map[string]*reservation.Reservation{},
		tickets:       map[string]*reservation.Ticket{},
		cancellations: map[string]*reservation.Cancellation{},
		idempotency:   map[idempotencyID]shared.IdempotencyRecord{},
	}
}

// clone copies the maps; stored values are never mutated in place, so sharing them is safe.
func (s *state) clone() *state {
	c := &state{
		reservations:  make(map[string]*reservation.Reservation, len(s.reservations)),
		tickets:       make(map[string]*reservation.Ticket, len(s.tickets)),
		cancellations: make(map[string]*reservation.Cancellation, len(s.cancellations)),
		idempotency:   make(map[idempotencyID]shared.IdempotencyRecord, len(s.idempotency)),
		events:        append([]shared.Event(nil), s.events...),
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.tickets {
		c.tickets[k] = v
	}
	for k, v := range s.cancellations {
		c.cancellations[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	return c
}

type Store struct {
	mu       sync.RWMutex
	current  *state
	counters map[reservation.EntityClass]*atomic.Int64
	clock    clock.Clock
	prefixes reservation.Prefixes
}

func New(clk clock.Clock, prefixes reservation.Prefixes) *Store {
	return &Store{
		current: newState(),
		counters: map[reservation.EntityClass]*atomic.Int64{
			reservation.ClassReservation:  {},
			reservation.ClassCancellation: {},
		},
		clock:    clk,
		prefixes: prefixes,
	}
}

// Seed loads pre-existing reservations and moves the reservation counter past the latest
// identifier among them.
func (s *Store) Seed(reservations ...*reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest := ""
	var latestSeq int64
	for _, r := range reservations {
		s.current.reservations[r.ID().String()] = r.Clone()
		if r.ID().Seq() > latestSeq {
			latestSeq = r.ID().Seq()
			latest = r.ID().String()
		}
	}
	prefix := s.prefixes.For(reservation.ClassReservation)
	next := reservation.NextIdentifier(prefix, latest)
	counter := s.counters[reservation.ClassReservation]
	if seen := next.Seq() - 1; seen > counter.Load() {
		counter.Store(seen)
	}
}

// Events returns the outbox contents in append order.
func (s *Store) Events() []shared.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]shared.Event(nil), s.current.events...)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	staged := s.current.clone()
	if err := fn(ctx, &memTx{store: s, st: staged}); err != nil {
		return err
	}
	s.current = staged
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return commandReads{store: s}
}

type commandReads struct {
	store *Store
}

func (r commandReads) ReservationByID(_ context.Context, id string) (*shared.ReservationSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.current.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return &shared.ReservationSnapshot{
		ID:        res.ID().String(),
		OwnerID:   res.OwnerID(),
		CatalogID: res.Room().CatalogID(),
		RoomID:    res.Room().RoomID(),
		Status:    res.Status().String(),
	}, nil
}

func notFound(entity string) error {
	return infra.WrapRepoErr(entity+" not found", errRowMissing, infra.KindNotFound)
}

func sortBySeq(list []*reservation.Reservation) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID().Seq() < list[j].ID().Seq() })
}

// liveOnRoom lists live reservations on room whose dates touch [from, to], ordered by seq.
func (s *state) liveOnRoom(room reservation.Room, from, to reservation.Date) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if !r.IsLive() || r.Room() != room {
			continue
		}
		w := r.Window()
		if w.StartDate().After(to) || w.EndDate().Before(from) {
			continue
		}
		out = append(out, r.Clone())
	}
	sortBySeq(out)
	return out
}

// checkExclusive stands in for the database exclusion constraint.
func (s *state) checkExclusive(r *reservation.Reservation) error {
	if !r.IsLive() {
		return nil
	}
	w := r.Window()
	candidates := s.liveOnRoom(r.Room(), w.StartDate(), w.EndDate())
	if _, found := reservation.FindConflict(candidates, r.Room(), w, r.ID().String()); found {
		return infra.WrapRepoErr("reservation overlaps", errOverlap, infra.KindExclusionViolated)
	}
	return nil
}

func sortCancellations(list []*reservation.Cancellation) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID().Seq() < list[j].ID().Seq() })
}
