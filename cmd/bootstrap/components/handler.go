package components

import (
	"room-reservation-engine/internal/handler"
	"room-reservation-engine/internal/handler/api"
	"room-reservation-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func() *gin.Engine { return gin.New() },
		api.NewReservationHandler,
		api.NewCancellationHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	reservations *api.ReservationHandler,
	cancellations *api.CancellationHandler,
	availability *api.AvailabilityHandler,
	auth *middleware.AuthMiddleware,
) handler.Handlers {
	return handler.Handlers{
		Reservations:  reservations,
		Cancellations: cancellations,
		Availability:  availability,
		Auth:          auth,
	}
}
