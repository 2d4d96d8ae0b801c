package api

import (
	"net/http"

	reqdto "room-reservation-engine/internal/handler/dto/request"
	resdto "room-reservation-engine/internal/handler/dto/response"
	"room-reservation-engine/internal/handler/httperr"
	"room-reservation-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.ReservationQueries
}

func NewAvailabilityHandler(q queries.ReservationQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Room availability
// @Description Free hour ranges for one day within opening hours.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param catalogId path string true "Catalog"
// @Param roomId path string true "Room"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/catalogs/{catalogId}/rooms/{roomId}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date is required", nil)
		return
	}
	view, err := h.q.Availability(c.Request.Context(), c.Param("catalogId"), c.Param("roomId"), q.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
