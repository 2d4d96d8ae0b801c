package queries

import (
	"time"

	"room-reservation-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID        string      `json:"id"`
	Seq       int64       `json:"-"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	CatalogID string      `json:"catalog_id"`
	RoomID    string      `json:"room_id"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
	Purpose   string      `json:"purpose"`
	Attendees int         `json:"attendees"`
	Status    string      `json:"status"`
	Ticket    *TicketView `json:"ticket,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type TicketView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID string    `json:"reservation_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	IssuedAt      time.Time `json:"issued_at"`
}

type SlotView struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CancellationView struct {
	ID                      string     `json:"id"`
	ReservationID           string     `json:"reservation_id"`
	Reason                  string     `json:"reason"`
	RequestedBy             uuid.UUID  `json:"requested_by"`
	Mode                    string     `json:"mode"`
	Outcome                 string     `json:"outcome"`
	RequestedSlots          []SlotView `json:"requested_slots"`
	ResultingReservationIDs []string   `json:"resulting_reservation_ids"`
	CreatedAt               time.Time  `json:"created_at"`
}

type HourRangeView struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type AvailabilityView struct {
	CatalogID string          `json:"catalog_id"`
	RoomID    string          `json:"room_id"`
	Date      string          `json:"date"`
	OpenHour  int             `json:"open_hour"`
	CloseHour int             `json:"close_hour"`
	Free      []HourRangeView `json:"free"`
}

func ReservationViewFromDomain(r *reservation.Reservation) *ReservationView {
	w := r.Window()
	return &ReservationView{
		ID:        r.ID().String(),
		Seq:       r.ID().Seq(),
		OwnerID:   r.OwnerID(),
		CatalogID: r.Room().CatalogID(),
		RoomID:    r.Room().RoomID(),
		StartDate: w.StartDate().String(),
		EndDate:   w.EndDate().String(),
		StartTime: w.StartTime().String(),
		EndTime:   w.EndTime().String(),
		Purpose:   r.Purpose(),
		Attendees: r.Attendees(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func TicketViewFromDomain(t *reservation.Ticket) *TicketView {
	if t == nil {
		return nil
	}
	return &TicketView{
		ID:            t.ID(),
		ReservationID: t.ReservationID(),
		OwnerID:       t.OwnerID(),
		IssuedAt:      t.IssuedAt(),
	}
}

func CancellationViewFromDomain(c *reservation.Cancellation) *CancellationView {
	slots := make([]SlotView, 0, len(c.Slots()))
	for _, s := range c.Slots() {
		slots = append(slots, SlotView{From: s.From.String(), To: s.To.String()})
	}
	ids := append([]string{}, c.ResultingIDs()...)
	return &CancellationView{
		ID:                      c.ID().String(),
		ReservationID:           c.ReservationID(),
		Reason:                  c.Reason(),
		RequestedBy:             c.RequestedBy(),
		Mode:                    string(c.Mode()),
		Outcome:                 string(c.Outcome()),
		RequestedSlots:          slots,
		ResultingReservationIDs: ids,
		CreatedAt:               c.CreatedAt(),
	}
}

func HourRangeViews(ranges []reservation.HourRange) []HourRangeView {
	out := make([]HourRangeView, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, HourRangeView{From: r.StartTime().String(), To: r.EndTime().String()})
	}
	return out
}
