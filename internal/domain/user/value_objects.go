package user

import "room-reservation-engine/internal/pkg/errs"

var (
	ErrInvalidRole    = errs.New("invalid role")
	ErrMissingActorID = errs.New("actor id is required")
)
