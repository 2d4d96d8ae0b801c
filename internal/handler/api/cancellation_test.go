//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"room-reservation-engine/internal/handler/api"
	resdto "room-reservation-engine/internal/handler/dto/response"
	"room-reservation-engine/internal/usecase/commands"
	"room-reservation-engine/internal/usecase/queries"
	"room-reservation-engine/tests/common/builder"
	"room-reservation-engine/tests/common/httptest"
	commandsmock "room-reservation-engine/tests/mock/commands"
	queriesmock "room-reservation-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CancellationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCancellationCommands
	mockQueries  *queriesmock.MockCancellationQueries
	actorID      uuid.UUID
}

func (s *CancellationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCancellationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCancellationQueries(s.mockCtrl)
	s.actorID = uuid.New()

	h := api.NewCancellationHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/api", fakeAuth(s.actorID))
	g.POST("/reservations/:id/cancellations", h.Cancel)
	g.GET("/reservations/:id/cancellations", h.ListByReservation)
	g.GET("/cancellations/:id", h.Get)
}

func (s *CancellationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCancellationHandlerSuite(t *testing.T) {
	suite.Run(t, new(CancellationHandlerTestSuite))
}

func (s *CancellationHandlerTestSuite) splitResult() *commands.CancelResult {
	shrunk := builder.NewReservationBuilder().WithTimes("09:00", "10:00").BuildView()
	fragment := builder.NewReservationBuilder().WithSeq(2).WithTimes("12:00", "13:00").BuildView()
	return &commands.CancelResult{
		Cancellation: &queries.CancellationView{
			ID:                      "CXL-01",
			ReservationID:           shrunk.ID,
			Reason:                  "Room needed for interviews",
			RequestedBy:             s.actorID,
			Mode:                    "partial",
			Outcome:                 "partial",
			RequestedSlots:          []queries.SlotView{{From: "10:00", To: "12:00"}},
			ResultingReservationIDs: []string{fragment.ID},
			CreatedAt:               time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		Reservation: shrunk,
		Fragments:   []*queries.ReservationView{fragment},
	}
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *CancellationHandlerTestSuite) TestCancel() {
	url := "/api/reservations/RSV-01/cancellations"
	to := "12:00"
	body := map[string]any{
		"reason": "Room needed for interviews",
		"slots":  []map[string]any{{"from": "10:00", "to": to}},
	}

	s.Run("success: 201 with fragments", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), gomock.Any(), commands.CancelInput{
				ReservationID: "RSV-01",
				Reason:        "Room needed for interviews",
				Slots:         []commands.SlotInput{{From: "10:00", To: &to}},
			}).
			Return(s.splitResult(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "viewer")

		var resp resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("CXL-01", resp.Cancellation.ID)
		s.Equal("partial", resp.Cancellation.Outcome)
		s.Equal([]string{"RSV-02"}, resp.Cancellation.ResultingReservationIDs)
		s.Equal("10:00", resp.Reservation.EndTime)
		s.Require().Len(resp.Fragments, 1)
		s.Equal("12:00", resp.Fragments[0].StartTime)
		s.False(resp.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/cancellations/CXL-01"})
	})

	s.Run("success: replayed key answers 200", func() {
		key := uuid.New()
		replay := s.splitResult()
		replay.Replayed = true
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, in commands.CancelInput) (*commands.CancelResult, error) {
				s.Require().NotNil(in.IdempotencyKey)
				s.Equal(key, *in.IdempotencyKey)
				return replay, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "viewer",
			map[string]string{"Idempotency-Key": key.String()})

		var resp resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.True(resp.Replayed)
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "viewer",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing reason", body: map[string]any{"mode": "full"}},
			{name: "unknown mode", body: map[string]any{"reason": "x", "mode": "half"}},
			{name: "slot without from", body: map[string]any{"reason": "x", "slots": []map[string]any{{"to": "10:00"}}}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "viewer")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "not live", err: commands.NewValidationError("status", "reservation is cancelled and holds no hours"), expectCode: http.StatusBadRequest, expectMsg: "invalid status"},
			{name: "not owner", err: &commands.AuthorizationError{ActorID: s.actorID, ReservationID: "RSV-01"}, expectCode: http.StatusForbidden, expectMsg: "Forbidden"},
			{name: "missing", err: &commands.NotFoundError{Entity: "reservation", ID: "RSV-01"}, expectCode: http.StatusNotFound, expectMsg: "not found"},
			{name: "key reused", err: &commands.ConflictError{Reason: commands.ReasonKeyReused}, expectCode: http.StatusConflict, expectMsg: "idempotency key reused"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "viewer")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestRead
// ================================================================================

func (s *CancellationHandlerTestSuite) TestRead() {
	view := s.splitResult().Cancellation

	s.Run("success: list by reservation", func() {
		s.mockQueries.EXPECT().ListByReservation(gomock.Any(), gomock.Any(), "RSV-01").
			Return([]*queries.CancellationView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/RSV-01/cancellations", nil, "viewer")

		var resp []resdto.CancellationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal([]resdto.SlotResponse{{From: "10:00", To: "12:00"}}, resp[0].RequestedSlots)
	})

	s.Run("success: get by id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), "CXL-01").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cancellations/CXL-01", nil, "viewer")

		var resp resdto.CancellationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(s.actorID, resp.RequestedBy)
	})

	s.Run("error: 404 on unknown cancellation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), "CXL-99").Return(nil, queries.ErrCancellationNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cancellations/CXL-99", nil, "viewer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cancellation not found")
	})
}
