package api

import (
	"net/http"

	reqdto "room-reservation-engine/internal/handler/dto/request"
	resdto "room-reservation-engine/internal/handler/dto/response"
	"room-reservation-engine/internal/handler/httperr"
	"room-reservation-engine/internal/usecase/commands"
	"room-reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CancellationHandler struct {
	cmds commands.CancellationCommands
	q    queries.CancellationQueries
}

func NewCancellationHandler(cmds commands.CancellationCommands, q queries.CancellationQueries) *CancellationHandler {
	return &CancellationHandler{cmds: cmds, q: q}
}

// @Summary Cancel reservation
// @Description Full cancel, or partial cancel of hour slots. Surviving hours are split into
// @Description new reservations. Replaying an Idempotency-Key returns the stored outcome.
// @Tags cancellations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param Idempotency-Key header string false "UUID identifying this cancel request"
// @Param request body reqdto.CancelRequest true "Cancel request"
// @Success 201 {object} resdto.CancelResponse
// @Success 200 {object} resdto.CancelResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancellations [post]
func (h *CancellationHandler) Cancel(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return
	}
	var req reqdto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), actor, req.ToInput(c.Param("id"), key))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/cancellations/"+result.Cancellation.ID)
	c.JSON(status, resdto.FromCancelResult(result))
}

// @Summary List cancellations of a reservation
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.CancellationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/cancellations [get]
func (h *CancellationHandler) ListByReservation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	views, err := h.q.ListByReservation(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellationViews(views))
}

// @Summary Get cancellation
// @Tags cancellations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cancellation ID (e.g. CXL-01)"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cancellations/{id} [get]
func (h *CancellationHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancellationView(view))
}
