package commands

import (
	"fmt"

	"room-reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// Sentinels for errors.Is; the typed errors below carry the payload for errors.As.
var (
	ErrValidation = errs.New("validation failed")
	ErrConflict   = errs.New("reservation conflict")
	ErrNotFound   = errs.New("not found")
	ErrForbidden  = errs.New("forbidden")
)

type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConflictError names the live reservation that blocks the request. ReservationID is empty
// when the exclusion constraint fired without telling us which row.
type ConflictError struct {
	ReservationID string
	Reason        string
}

func (e *ConflictError) Error() string {
	if e.ReservationID == "" {
		return "conflict: " + e.Reason
	}
	return fmt.Sprintf("conflict with %s: %s", e.ReservationID, e.Reason)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type AuthorizationError struct {
	ActorID       uuid.UUID
	ReservationID string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("actor %s may not modify reservation %s", e.ActorID, e.ReservationID)
}

func (e *AuthorizationError) Is(target error) bool { return target == ErrForbidden }

const (
	ReasonSlotUnavailable = "slot unavailable"
	ReasonKeyReused       = "idempotency key reused"
)
