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

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a room for a daily time window over a date range. Pending on creation.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+view.ID)
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Viewers may only read their own reservations.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID (e.g. RSV-01)"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Keyset-paginated in allocation order. Viewers only see their own.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param catalogId query string false "Catalog"
// @Param roomId query string false "Room"
// @Param date query string false "Day the reservation must cover (YYYY-MM-DD)"
// @Param status query string false "pending, confirmed, rejected or cancelled"
// @Param mine query bool false "Only the caller's reservations"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), actor, q.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

// @Summary Get ticket
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/ticket [get]
func (h *ReservationHandler) GetTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	ticket, err := h.q.GetTicket(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketView(ticket))
}

// @Summary Set reservation status
// @Description Operators and admins only. Setting the current status again is a no-op.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/status [patch]
func (h *ReservationHandler) SetStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	view, err := h.cmds.SetStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
