package shared

import (
	"context"

	"room-reservation-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Tickets() TicketRepository
	Cancellations() CancellationRepository
	Sequences() SequenceRepository
	Events() EventRepository
	Idempotency() IdempotencyRepository
	// LockRoom blocks other writers on the room until the transaction ends.
	LockRoom(ctx context.Context, room reservation.Room) error
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id string) (*ReservationSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// Update persists status, window and updated_at.
	Update(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id string) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id string) (*reservation.Reservation, error)
	FindByIDs(ctx context.Context, ids []string) ([]*reservation.Reservation, error)
	// ListLiveForRoom returns live reservations on room whose date range touches [from, to].
	ListLiveForRoom(ctx context.Context, room reservation.Room, from, to reservation.Date) ([]*reservation.Reservation, error)
}

type TicketRepository interface {
	Create(ctx context.Context, t *reservation.Ticket) error
	FindByReservationID(ctx context.Context, reservationID string) (*reservation.Ticket, error)
}

type CancellationRepository interface {
	Create(ctx context.Context, c *reservation.Cancellation) error
	UpdateOutcome(ctx context.Context, c *reservation.Cancellation) error
	FindByID(ctx context.Context, id string) (*reservation.Cancellation, error)
}

// SequenceRepository hands out the next counter value for an entity class. Values are strictly
// increasing per class among committed transactions.
type SequenceRepository interface {
	Next(ctx context.Context, class reservation.EntityClass) (int64, error)
}

type EventRepository interface {
	Append(ctx context.Context, e Event) error
}

type IdempotencyRepository interface {
	Get(ctx context.Context, key, actorID uuid.UUID) (*IdempotencyRecord, error)
	Save(ctx context.Context, rec IdempotencyRecord) error
}

// RoomLocker serializes writers on one room across processes. Release must be called exactly
// once when Acquire succeeds.
type RoomLocker interface {
	Acquire(ctx context.Context, key string) (release func(context.Context) error, err error)
}
