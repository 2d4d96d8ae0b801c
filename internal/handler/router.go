package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/handler/api"
	"room-reservation-engine/internal/handler/middleware"
	"room-reservation-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservations  *api.ReservationHandler
	Cancellations *api.CancellationHandler
	Availability  *api.AvailabilityHandler
	Auth          *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		operatorOnly := []gin.HandlerFunc{h.Auth.RequireRoleAtLeast(user.RoleOperator)}

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservations.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservations.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
			{Method: http.MethodGet, Path: "/:id/ticket", Handler: h.Reservations.GetTicket},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservations.SetStatus, Mw: operatorOnly},
			{Method: http.MethodPost, Path: "/:id/cancellations", Handler: h.Cancellations.Cancel},
			{Method: http.MethodGet, Path: "/:id/cancellations", Handler: h.Cancellations.ListByReservation},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/cancellations/:id", Handler: h.Cancellations.Get},
			{Method: http.MethodGet, Path: "/catalogs/:catalogId/rooms/:roomId/availability", Handler: h.Availability.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
