//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/handler/api"
	"room-reservation-engine/internal/handler/middleware"
	resdto "room-reservation-engine/internal/handler/dto/response"
	"room-reservation-engine/internal/usecase/commands"
	"room-reservation-engine/internal/usecase/queries"
	"room-reservation-engine/tests/common/builder"
	"room-reservation-engine/tests/common/httptest"
	"room-reservation-engine/tests/common/testutil"
	commandsmock "room-reservation-engine/tests/mock/commands"
	queriesmock "room-reservation-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for RequireAuth: the bearer token is the role name.
func fakeAuth(actorID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, user.Actor{ID: actorID, Role: user.Role(role)})
		c.Next()
	}
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	actorID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.actorID = uuid.New()

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)
	a := api.NewAvailabilityHandler(s.mockQueries)

	g := s.router.Group("/api", fakeAuth(s.actorID))
	g.POST("/reservations", h.Create)
	g.GET("/reservations", h.List)
	g.GET("/reservations/:id", h.Get)
	g.GET("/reservations/:id/ticket", h.GetTicket)
	g.PATCH("/reservations/:id/status", h.SetStatus)
	g.GET("/catalogs/:catalogId/rooms/:roomId/availability", a.Get)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), user.Actor{ID: s.actorID, Role: user.RoleViewer}, reqBody.ToInput()).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "viewer")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("RSV-01", body.ID)
		s.Equal("pending", body.Status)
		s.Equal("09:00", body.StartTime)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/RSV-01"})
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []testCaseReservation{
			{name: "missing catalogId", mutate: testutil.Field("catalogId", nil), expectCode: http.StatusBadRequest},
			{name: "missing roomId", mutate: testutil.Field("roomId", nil), expectCode: http.StatusBadRequest},
			{name: "missing startDate", mutate: testutil.Field("startDate", nil), expectCode: http.StatusBadRequest},
			{name: "missing endTime", mutate: testutil.Field("endTime", nil), expectCode: http.StatusBadRequest},
			{name: "negative attendees", mutate: testutil.Field("attendees", -1), expectCode: http.StatusBadRequest},
			{name: "purpose too long", mutate: testutil.Field("purpose", strings.Repeat("x", 501)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "viewer")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "validation",
				err:        commands.NewValidationError("end_time", "must be after start_time"),
				expectCode: http.StatusBadRequest,
				expectMsg:  "invalid end_time",
			},
			{
				name:       "slot conflict",
				err:        &commands.ConflictError{ReservationID: "RSV-07", Reason: commands.ReasonSlotUnavailable},
				expectCode: http.StatusConflict,
				expectMsg:  "Slot unavailable, choose another time",
			},
			{
				name:       "room busy",
				err:        &commands.ConflictError{Reason: "room is busy, retry shortly"},
				expectCode: http.StatusConflict,
				expectMsg:  "room is busy",
			},
			{
				name:       "unexpected",
				err:        errors.New("connection reset"),
				expectCode: http.StatusInternalServerError,
				expectMsg:  "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "viewer")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestGet / TestGetTicket
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	view.Ticket = &queries.TicketView{ID: uuid.New(), ReservationID: view.ID, OwnerID: view.OwnerID}

	s.Run("success: includes the ticket", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), "RSV-01").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/RSV-01", nil, "viewer")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Ticket)
		s.Equal(view.Ticket.ID, body.Ticket.ID)
	})

	s.Run("error: 404 and 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), "RSV-404").Return(nil, queries.ErrReservationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/RSV-404", nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")

		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), "RSV-02").Return(nil, queries.ErrReservationAccess)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/RSV-02", nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *ReservationHandlerTestSuite) TestGetTicket() {
	ticket := &queries.TicketView{ID: uuid.New(), ReservationID: "RSV-01", OwnerID: s.actorID}

	s.mockQueries.EXPECT().GetTicket(gomock.Any(), gomock.Any(), "RSV-01").Return(ticket, nil)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/RSV-01/ticket", nil, "viewer")

	var body resdto.TicketResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(ticket.ID, body.ID)
	s.Equal("RSV-01", body.ReservationID)

	s.mockQueries.EXPECT().GetTicket(gomock.Any(), gomock.Any(), "RSV-09").Return(nil, queries.ErrTicketNotFound)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/RSV-09/ticket", nil, "viewer")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	first := builder.NewReservationBuilder().WithSeq(1).BuildView()
	second := builder.NewReservationBuilder().WithSeq(2).BuildView()

	s.Run("success: forwards filters and returns the next cursor", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), queries.ListReservationsInput{
				CatalogID: "hq",
				RoomID:    "orion",
				Date:      "2025-03-10",
				Status:    "pending",
				Mine:      true,
				Limit:     2,
			}).
			Return([]*queries.ReservationView{first, second}, &queries.Cursor{After: "djE6Mg"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/reservations?catalogId=hq&roomId=orion&date=2025-03-10&status=pending&mine=true&limit=2", nil, "operator")

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reservations, 2)
		s.Require().NotNil(body.NextCursor)
		s.Equal("djE6Mg", *body.NextCursor)
	})

	s.Run("error: 400 on out-of-range limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?limit=500", nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on a bad cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?after=zzz", nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestSetStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestSetStatus() {
	url := "/api/reservations/RSV-01/status"
	confirmed := builder.NewReservationBuilder().WithStatus("confirmed").BuildView()

	s.Run("success: returns the updated reservation", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), gomock.Any(), "RSV-01", "confirmed").Return(confirmed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "operator")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, "operator")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "forbidden", err: &commands.AuthorizationError{ActorID: s.actorID, ReservationID: "RSV-01"}, expectCode: http.StatusForbidden},
			{name: "not found", err: &commands.NotFoundError{Entity: "reservation", ID: "RSV-01"}, expectCode: http.StatusNotFound},
			{name: "transition", err: commands.NewValidationError("status", "transition not allowed"), expectCode: http.StatusBadRequest},
			{name: "re-admit conflict", err: &commands.ConflictError{ReservationID: "RSV-04", Reason: commands.ReasonSlotUnavailable}, expectCode: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetStatus(gomock.Any(), gomock.Any(), "RSV-01", "pending").Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"}, "operator")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *ReservationHandlerTestSuite) TestAvailability() {
	url := "/api/catalogs/hq/rooms/orion/availability"

	s.Run("success: returns free ranges", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), "hq", "orion", "2025-03-10").Return(&queries.AvailabilityView{
			CatalogID: "hq", RoomID: "orion", Date: "2025-03-10", OpenHour: 8, CloseHour: 22,
			Free: []queries.HourRangeView{{From: "08:00", To: "09:00"}, {From: "13:00", To: "22:00"}},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-03-10", nil, "viewer")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.HourRangeResponse{{From: "08:00", To: "09:00"}, {From: "13:00", To: "22:00"}}, body.Free)
	})

	s.Run("error: 400 without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date is required")
	})

	s.Run("error: 400 on a malformed date", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), "hq", "orion", "10/03/2025").Return(nil, queries.ErrInvalidFilter)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=10/03/2025", nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
