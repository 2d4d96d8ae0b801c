package api

import (
	"errors"
	"log/slog"
	"net/http"

	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/handler/httperr"
	"room-reservation-engine/internal/handler/middleware"
	"room-reservation-engine/internal/pkg/errs"
	"room-reservation-engine/internal/usecase/commands"
	"room-reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgSlotUnavailable = "Slot unavailable, choose another time"
	msgInvalidRequest  = "Invalid request"
	msgUnauthorized    = "Unauthorized"
)

var errNoActor = errs.New("authenticated actor missing from context")

// respondError maps usecase errors onto HTTP statuses. Anything unrecognised is a 500 with the
// cause kept on the context for the request log.
func respondError(c *gin.Context, err error) {
	var (
		validation *commands.ValidationError
		conflict   *commands.ConflictError
		notFound   *commands.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validation.Error(), gin.H{
			"field":  validation.Field,
			"reason": validation.Reason,
		})
	case errors.As(err, &conflict):
		msg := msgSlotUnavailable
		if conflict.Reason != commands.ReasonSlotUnavailable {
			msg = "Conflict: " + conflict.Reason
		}
		var detail any
		if conflict.ReservationID != "" {
			detail = gin.H{"conflictingReservationId": conflict.ReservationID}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, msg, detail)
	case errors.As(err, &notFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFound.Error(), nil)
	case errors.Is(err, commands.ErrForbidden), errors.Is(err, queries.ErrReservationAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, queries.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, queries.ErrTicketNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
	case errors.Is(err, queries.ErrCancellationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cancellation not found", nil)
	case errors.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case errors.Is(err, queries.ErrInvalidFilter):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		slog.Error("unhandled request error",
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// actorFrom aborts with 401 when RequireAuth did not run for the route.
func actorFrom(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, msgUnauthorized, nil)
	}
	return actor, ok
}

// idempotencyKey reads the optional Idempotency-Key header. A present but malformed key is an
// error; an absent one is nil.
func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
