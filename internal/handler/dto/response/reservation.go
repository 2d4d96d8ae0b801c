package response

import (
	"time"

	"room-reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TicketResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID string    `json:"reservationId"`
	OwnerID       uuid.UUID `json:"ownerId"`
	IssuedAt      time.Time `json:"issuedAt"`
}

type ReservationResponse struct {
	ID        string          `json:"id"`
	OwnerID   uuid.UUID       `json:"ownerId"`
	CatalogID string          `json:"catalogId"`
	RoomID    string          `json:"roomId"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Purpose   string          `json:"purpose"`
	Attendees int             `json:"attendees"`
	Status    string          `json:"status"`
	Ticket    *TicketResponse `json:"ticket,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   *string                `json:"nextCursor,omitempty"`
}

type HourRangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type AvailabilityResponse struct {
	CatalogID string              `json:"catalogId"`
	RoomID    string              `json:"roomId"`
	Date      string              `json:"date"`
	OpenHour  int                 `json:"openHour"`
	CloseHour int                 `json:"closeHour"`
	Free      []HourRangeResponse `json:"free"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	if v == nil {
		return nil
	}
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	resp.Ticket = FromTicketView(v.Ticket)
	return &resp
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromReservationView(v))
	}
	return out
}

func FromReservationList(vs []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: FromReservationViews(vs)}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	if v == nil {
		return nil
	}
	var resp TicketResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, v)
	if resp.Free == nil {
		resp.Free = []HourRangeResponse{}
	}
	return &resp
}
