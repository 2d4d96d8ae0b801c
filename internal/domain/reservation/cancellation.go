package reservation

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CancelMode string

const (
	ModeFull    CancelMode = "full"
	ModePartial CancelMode = "partial"
)

func ParseCancelMode(s string) (CancelMode, error) {
	switch m := CancelMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeFull, ModePartial:
		return m, nil
	default:
		return "", ErrInvalidCancelMode
	}
}

// Slot identifies one hour to release by its start. To is recorded for the audit trail only.
type Slot struct {
	From TimeOfDay
	To   TimeOfDay
}

// NewSlot defaults To to one hour after From.
func NewSlot(from TimeOfDay, to *TimeOfDay) Slot {
	if to != nil {
		return Slot{From: from, To: *to}
	}
	end := from.Hour() + 1
	if end > 24 {
		end = 24
	}
	return Slot{From: from, To: AtHour(end)}
}

type CancellationRequest struct {
	ReservationID string
	Reason        string
	RequestedBy   uuid.UUID
	Mode          CancelMode
	Slots         []Slot
}

// Cancellation is the audit record of one cancel call. Mode is what was asked for, Outcome is
// what the resolver did.
type Cancellation struct {
	id            Identifier
	reservationID string
	reason        string
	requestedBy   uuid.UUID
	mode          CancelMode
	outcome       CancelMode
	slots         []Slot
	resultingIDs  []string
	createdAt     time.Time
}

func NewCancellation(id Identifier, req CancellationRequest, now time.Time) (*Cancellation, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	if req.Mode != ModeFull && req.Mode != ModePartial {
		return nil, ErrInvalidCancelMode
	}
	slots := make([]Slot, len(req.Slots))
	copy(slots, req.Slots)

	return &Cancellation{
		id:            id,
		reservationID: req.ReservationID,
		reason:        reason,
		requestedBy:   req.RequestedBy,
		mode:          req.Mode,
		outcome:       req.Mode,
		slots:         slots,
		resultingIDs:  []string{},
		createdAt:     now,
	}, nil
}

func ReconstructCancellation(
	id Identifier,
	reservationID, reason string,
	requestedBy uuid.UUID,
	mode, outcome CancelMode,
	slots []Slot,
	resultingIDs []string,
	createdAt time.Time,
) *Cancellation {
	return &Cancellation{
		id:            id,
		reservationID: reservationID,
		reason:        reason,
		requestedBy:   requestedBy,
		mode:          mode,
		outcome:       outcome,
		slots:         slots,
		resultingIDs:  resultingIDs,
		createdAt:     createdAt,
	}
}

// Resolve records how the request was actually applied.
func (c *Cancellation) Resolve(outcome CancelMode, resultingIDs []string) {
	c.outcome = outcome
	c.resultingIDs = append([]string{}, resultingIDs...)
}

func (c *Cancellation) ID() Identifier         { return c.id }
func (c *Cancellation) ReservationID() string  { return c.reservationID }
func (c *Cancellation) Reason() string         { return c.reason }
func (c *Cancellation) RequestedBy() uuid.UUID { return c.requestedBy }
func (c *Cancellation) Mode() CancelMode       { return c.mode }
func (c *Cancellation) Outcome() CancelMode    { return c.outcome }
func (c *Cancellation) Slots() []Slot          { return c.slots }
func (c *Cancellation) ResultingIDs() []string { return c.resultingIDs }
func (c *Cancellation) CreatedAt() time.Time   { return c.createdAt }
