package response

import (
	"time"

	"room-reservation-engine/internal/usecase/commands"
	"room-reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CancellationResponse struct {
	ID                      string         `json:"id"`
	ReservationID           string         `json:"reservationId"`
	Reason                  string         `json:"reason"`
	RequestedBy             uuid.UUID      `json:"requestedBy"`
	Mode                    string         `json:"mode"`
	Outcome                 string         `json:"outcome"`
	RequestedSlots          []SlotResponse `json:"requestedSlots"`
	ResultingReservationIDs []string       `json:"resultingReservationIds"`
	CreatedAt               time.Time      `json:"createdAt"`
}

// CancelResponse carries the audit record, the original reservation as it now stands and any
// reservations split off from it.
type CancelResponse struct {
	Cancellation *CancellationResponse  `json:"cancellation"`
	Reservation  *ReservationResponse   `json:"reservation"`
	Fragments    []*ReservationResponse `json:"fragments"`
	Replayed     bool                   `json:"replayed"`
}

func FromCancellationView(v *queries.CancellationView) *CancellationResponse {
	if v == nil {
		return nil
	}
	var resp CancellationResponse
	_ = copier.Copy(&resp, v)
	if resp.RequestedSlots == nil {
		resp.RequestedSlots = []SlotResponse{}
	}
	if resp.ResultingReservationIDs == nil {
		resp.ResultingReservationIDs = []string{}
	}
	return &resp
}

func FromCancellationViews(vs []*queries.CancellationView) []*CancellationResponse {
	out := make([]*CancellationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromCancellationView(v))
	}
	return out
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		Cancellation: FromCancellationView(r.Cancellation),
		Reservation:  FromReservationView(r.Reservation),
		Fragments:    FromReservationViews(r.Fragments),
		Replayed:     r.Replayed,
	}
}
