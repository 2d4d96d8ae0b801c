package reservation

import (
	"strings"
	"time"

	"room-reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingRoom          = errs.New("catalog and room identifiers are required")
	ErrInvalidDate          = errs.New("invalid date")
	ErrInvalidTime          = errs.New("invalid time of day")
	ErrInvalidDateRange     = errs.New("start date must not be after end date")
	ErrInvalidTimeRange     = errs.New("start time must be before end time")
	ErrNegativeAttendees    = errs.New("attendees cannot be negative")
	ErrMissingOwner         = errs.New("owner is required")
	ErrInvalidStatus        = errs.New("invalid reservation status")
	ErrTransitionNotAllowed = errs.New("status transition not allowed")
	ErrMalformedIdentifier  = errs.New("malformed identifier")
	ErrReasonRequired       = errs.New("cancellation reason is required")
	ErrInvalidCancelMode    = errs.New("invalid cancellation mode")
	ErrNotLive              = errs.New("reservation is not pending or confirmed")
)

type Draft struct {
	OwnerID   uuid.UUID
	Room      Room
	Window    Window
	Purpose   string
	Attendees int
}

type Reservation struct {
	id        Identifier
	ownerID   uuid.UUID
	room      Room
	window    Window
	purpose   string
	attendees int
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// Validate checks everything NewReservation needs except the identifier. Attendees are not
// checked against capacity.
func (d Draft) Validate() error {
	if d.OwnerID == uuid.Nil {
		return ErrMissingOwner
	}
	if d.Room.CatalogID() == "" || d.Room.RoomID() == "" {
		return ErrMissingRoom
	}
	if d.Window.StartDate().IsZero() || !d.Window.StartTime().Before(d.Window.EndTime()) {
		return ErrInvalidTimeRange
	}
	if d.Attendees < 0 {
		return ErrNegativeAttendees
	}
	return nil
}

// NewReservation builds a pending reservation.
func NewReservation(id Identifier, d Draft, now time.Time) (*Reservation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &Reservation{
		id:        id,
		ownerID:   d.OwnerID,
		room:      d.Room,
		window:    d.Window,
		purpose:   strings.TrimSpace(d.Purpose),
		attendees: d.Attendees,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id Identifier,
	ownerID uuid.UUID,
	room Room,
	window Window,
	purpose string,
	attendees int,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		ownerID:   ownerID,
		room:      room,
		window:    window,
		purpose:   purpose,
		attendees: attendees,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() Identifier       { return r.id }
func (r *Reservation) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Reservation) Room() Room           { return r.room }
func (r *Reservation) Window() Window       { return r.window }
func (r *Reservation) Purpose() string      { return r.purpose }
func (r *Reservation) Attendees() int       { return r.attendees }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsLive() bool {
	return r.status.IsLive()
}

func (r *Reservation) IsOwnedBy(actorID uuid.UUID) bool {
	return r.ownerID == actorID
}

// ChangeStatus applies a validated transition and returns the previous status.
func (r *Reservation) ChangeStatus(to Status, policy TransitionPolicy, now time.Time) (Status, error) {
	from := r.status
	if err := ValidateTransition(from, to, policy); err != nil {
		return from, err
	}
	r.status = to
	r.updatedAt = now
	return from, nil
}

// Cancel is the terminal transition used by the cancellation resolver.
func (r *Reservation) Cancel(now time.Time) error {
	if !r.IsLive() {
		return ErrNotLive
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// ShrinkTo replaces the time-of-day with a whole-hour range; status and dates are untouched.
func (r *Reservation) ShrinkTo(hours HourRange, now time.Time) {
	r.window = r.window.withHours(hours)
	r.updatedAt = now
}

// Fragment copies owner, room, dates, purpose, attendees and status into a new reservation
// covering hours.
func (r *Reservation) Fragment(id Identifier, hours HourRange, now time.Time) *Reservation {
	return &Reservation{
		id:        id,
		ownerID:   r.ownerID,
		room:      r.room,
		window:    r.window.withHours(hours),
		purpose:   r.purpose,
		attendees: r.attendees,
		status:    r.status,
		createdAt: now,
		updatedAt: now,
	}
}

// Clone returns an independent copy.
func (r *Reservation) Clone() *Reservation {
	c := *r
	return &c
}
