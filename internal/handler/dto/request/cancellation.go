package request

import (
	"room-reservation-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

// SlotRequest names the hours to release. A missing "to" releases a single hour.
type SlotRequest struct {
	From string  `json:"from" binding:"required"`
	To   *string `json:"to,omitempty"`
}

type CancelRequest struct {
	Reason string        `json:"reason" binding:"required,max=500"`
	Mode   string        `json:"mode" binding:"omitempty,oneof=full partial"`
	Slots  []SlotRequest `json:"slots" binding:"omitempty,dive"`
}

func (r CancelRequest) ToInput(reservationID string, key *uuid.UUID) commands.CancelInput {
	slots := make([]commands.SlotInput, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, commands.SlotInput{From: s.From, To: s.To})
	}
	return commands.CancelInput{
		ReservationID:  reservationID,
		Reason:         r.Reason,
		Mode:           r.Mode,
		Slots:          slots,
		IdempotencyKey: key,
	}
}
