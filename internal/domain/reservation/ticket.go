package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is the receipt issued with every reservation. It is never mutated.
type Ticket struct {
	id            uuid.UUID
	reservationID string
	ownerID       uuid.UUID
	issuedAt      time.Time
}

func NewTicket(id uuid.UUID, r *Reservation, now time.Time) *Ticket {
	return &Ticket{
		id:            id,
		reservationID: r.ID().String(),
		ownerID:       r.OwnerID(),
		issuedAt:      now,
	}
}

func ReconstructTicket(id uuid.UUID, reservationID string, ownerID uuid.UUID, issuedAt time.Time) *Ticket {
	return &Ticket{
		id:            id,
		reservationID: reservationID,
		ownerID:       ownerID,
		issuedAt:      issuedAt,
	}
}

func (t *Ticket) ID() uuid.UUID         { return t.id }
func (t *Ticket) ReservationID() string { return t.reservationID }
func (t *Ticket) OwnerID() uuid.UUID    { return t.ownerID }
func (t *Ticket) IssuedAt() time.Time   { return t.issuedAt }
