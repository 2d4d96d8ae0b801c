package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRow struct {
	ID        string
	Seq       int64
	OwnerID   uuid.UUID
	CatalogID string
	RoomID    string
	StartDate pgtype.Date
	EndDate   pgtype.Date
	StartTime pgtype.Time
	EndTime   pgtype.Time
	Purpose   string
	Attendees int32
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type TicketRow struct {
	ID            uuid.UUID
	ReservationID string
	OwnerID       uuid.UUID
	IssuedAt      pgtype.Timestamptz
}

// SlotJSON is the element shape of cancellations.requested_slots.
type SlotJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CancellationRow struct {
	ID                      string
	Seq                     int64
	ReservationID           string
	Reason                  string
	RequestedBy             uuid.UUID
	Mode                    string
	Outcome                 string
	RequestedSlots          []byte
	ResultingReservationIDs []string
	CreatedAt               pgtype.Timestamptz
}

type IdempotencyKeyRow struct {
	Key         uuid.UUID
	ActorID     uuid.UUID
	Endpoint    string
	RequestHash string
	Status      string
	ResultID    pgtype.Text
	ExpiresAt   pgtype.Timestamptz
}

const (
	EventStatusQueued = "queued"
	EventStatusSent   = "sent"
	EventStatusFailed = "failed"
)

type EventRow struct {
	ID          uuid.UUID
	Kind        string
	AggregateID string
	Payload     []byte
	OccurredAt  pgtype.Timestamptz
	Status      string
	Attempts    int32
	LastError   pgtype.Text
}
