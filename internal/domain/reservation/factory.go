package reservation

import (
	"room-reservation-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory stamps allocated counter values and the current time onto new aggregates.
type Factory struct {
	Clock    clock.Clock
	Prefixes Prefixes
}

func NewFactory(clock clock.Clock, prefixes Prefixes) *Factory {
	return &Factory{
		Clock:    clock,
		Prefixes: prefixes,
	}
}

func (f *Factory) Identifier(class EntityClass, seq int64) Identifier {
	return NewIdentifier(f.Prefixes.For(class), seq)
}

func (f *Factory) CreateReservation(seq int64, d Draft) (*Reservation, error) {
	return NewReservation(f.Identifier(ClassReservation, seq), d, f.Clock.Now())
}

func (f *Factory) CreateFragment(original *Reservation, seq int64, hours HourRange) *Reservation {
	return original.Fragment(f.Identifier(ClassReservation, seq), hours, f.Clock.Now())
}

func (f *Factory) IssueTicket(r *Reservation) *Ticket {
	return NewTicket(uuid.New(), r, f.Clock.Now())
}

func (f *Factory) CreateCancellation(seq int64, req CancellationRequest) (*Cancellation, error) {
	return NewCancellation(f.Identifier(ClassCancellation, seq), req, f.Clock.Now())
}
