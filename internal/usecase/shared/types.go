package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID        string
	OwnerID   uuid.UUID
	CatalogID string
	RoomID    string
	Status    string
}

const (
	IdempotencyCompleted = "completed"
)

type IdempotencyRecord struct {
	Key         uuid.UUID
	ActorID     uuid.UUID
	Endpoint    string
	RequestHash string
	Status      string
	ResultID    *string
	ExpiresAt   time.Time
}

// Event kinds recorded in the outbox.
const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
	EventReservationSplit         = "reservation.split"
	EventReservationCancelled     = "reservation.cancelled"
)

type Event struct {
	ID          uuid.UUID
	Kind        string
	AggregateID string
	Payload     []byte
	OccurredAt  time.Time
}
