//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/infra/lock"
	"room-reservation-engine/internal/infra/memstore"
	"room-reservation-engine/internal/pkg/clock"
	"room-reservation-engine/internal/usecase/commands"
	"room-reservation-engine/internal/usecase/shared"
	"room-reservation-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type engine struct {
	store         *memstore.Store
	clock         *clock.MockClock
	reservations  commands.ReservationCommands
	cancellations commands.CancellationCommands
}

func newEngine(t *testing.T, policy reservation.TransitionPolicy) *engine {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	store := memstore.New(clk, reservation.DefaultPrefixes())
	factory := reservation.NewFactory(clk, reservation.DefaultPrefixes())
	locker := lock.NewLocalLocker(time.Second)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &engine{
		store:         store,
		clock:         clk,
		reservations:  commands.NewReservationUseCase(store, locker, factory, policy, logger),
		cancellations: commands.NewCancellationUseCase(store, locker, factory, logger),
	}
}

func viewer() user.Actor   { return user.Actor{ID: uuid.New(), Role: user.RoleViewer} }
func operator() user.Actor { return user.Actor{ID: uuid.New(), Role: user.RoleOperator} }
func admin() user.Actor    { return user.Actor{ID: uuid.New(), Role: user.RoleAdmin} }

func createInput(start, end string) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CatalogID: "hq",
		RoomID:    "R1",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
		StartTime: start,
		EndTime:   end,
		Purpose:   "Design review",
		Attendees: 4,
	}
}

func eventKinds(events []shared.Event) []string {
	kinds := make([]string, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// =============================================================================
// Create
// =============================================================================

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctx context.Context
	eng *engine
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.eng = newEngine(s.T(), reservation.PolicyStrict)
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestCreate_IssuesIdentifierAndTicket() {
	owner := viewer()

	first, err := s.eng.reservations.Create(s.ctx, owner, createInput("09:00", "10:00"))
	s.Require().NoError(err)
	second, err := s.eng.reservations.Create(s.ctx, owner, createInput("10:00", "11:00"))
	s.Require().NoError(err)

	s.Equal("RSV-01", first.ID)
	s.Equal("RSV-02", second.ID)
	s.Equal(reservation.StatusPending.String(), first.Status)
	s.Equal(owner.ID, first.OwnerID)
	s.Require().NotNil(first.Ticket)
	s.Equal(first.ID, first.Ticket.ReservationID)
	s.Equal(owner.ID, first.Ticket.OwnerID)
	s.Equal([]string{shared.EventReservationCreated, shared.EventReservationCreated}, eventKinds(s.eng.store.Events()))
}

func (s *ReservationCommandsTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name   string
		mutate func(*commands.CreateReservationInput)
		field  string
	}{
		{"missing catalog", func(in *commands.CreateReservationInput) { in.CatalogID = "" }, "catalog_id"},
		{"missing room", func(in *commands.CreateReservationInput) { in.RoomID = " " }, "room_id"},
		{"bad start date", func(in *commands.CreateReservationInput) { in.StartDate = "10/03/2025" }, "start_date"},
		{"end date before start", func(in *commands.CreateReservationInput) { in.EndDate = "2025-03-09" }, "end_date"},
		{"bad start time", func(in *commands.CreateReservationInput) { in.StartTime = "9am" }, "start_time"},
		{"end before start", func(in *commands.CreateReservationInput) { in.EndTime = "08:00" }, "end_time"},
		{"empty window", func(in *commands.CreateReservationInput) { in.EndTime = in.StartTime }, "end_time"},
		{"negative attendees", func(in *commands.CreateReservationInput) { in.Attendees = -1 }, "attendees"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			in := createInput("09:00", "10:00")
			tc.mutate(&in)

			_, err := s.eng.reservations.Create(s.ctx, viewer(), in)

			var verr *commands.ValidationError
			s.Require().ErrorAs(err, &verr)
			s.Equal(tc.field, verr.Field)
			s.ErrorIs(err, commands.ErrValidation)
		})
	}
	s.Empty(s.eng.store.Events())
}

func (s *ReservationCommandsTestSuite) TestCreate_ConflictWithLiveReservation() {
	existing, err := s.eng.reservations.Create(s.ctx, viewer(), createInput("14:30", "15:30"))
	s.Require().NoError(err)

	_, err = s.eng.reservations.Create(s.ctx, viewer(), createInput("14:00", "15:00"))

	var conflict *commands.ConflictError
	s.Require().ErrorAs(err, &conflict)
	s.Equal(existing.ID, conflict.ReservationID)
	s.Equal(commands.ReasonSlotUnavailable, conflict.Reason)
	s.Len(s.eng.store.Events(), 1)
}

func (s *ReservationCommandsTestSuite) TestCreate_Adjacency() {
	testCases := []struct {
		name     string
		existing [2]string
		request  [2]string
		conflict bool
	}{
		{"touching after", [2]string{"09:00", "10:00"}, [2]string{"10:00", "11:00"}, false},
		{"touching before", [2]string{"10:00", "11:00"}, [2]string{"09:00", "10:00"}, false},
		{"contained", [2]string{"09:00", "12:00"}, [2]string{"10:00", "11:00"}, true},
		{"enclosing", [2]string{"10:00", "11:00"}, [2]string{"09:00", "12:00"}, true},
		{"one minute overlap", [2]string{"09:00", "10:01"}, [2]string{"10:00", "11:00"}, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			eng := newEngine(s.T(), reservation.PolicyStrict)
			_, err := eng.reservations.Create(s.ctx, viewer(), createInput(tc.existing[0], tc.existing[1]))
			s.Require().NoError(err)

			_, err = eng.reservations.Create(s.ctx, viewer(), createInput(tc.request[0], tc.request[1]))
			if tc.conflict {
				s.ErrorIs(err, commands.ErrConflict)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ReservationCommandsTestSuite) TestCreate_DifferentRoomOrDayDoesNotConflict() {
	_, err := s.eng.reservations.Create(s.ctx, viewer(), createInput("09:00", "12:00"))
	s.Require().NoError(err)

	otherRoom := createInput("09:00", "12:00")
	otherRoom.RoomID = "R2"
	_, err = s.eng.reservations.Create(s.ctx, viewer(), otherRoom)
	s.NoError(err)

	otherDay := createInput("09:00", "12:00")
	otherDay.StartDate, otherDay.EndDate = "2025-03-11", "2025-03-11"
	_, err = s.eng.reservations.Create(s.ctx, viewer(), otherDay)
	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestCreate_MultiDayWindowBlocksEveryDay() {
	multi := createInput("09:00", "10:00")
	multi.EndDate = "2025-03-12"
	_, err := s.eng.reservations.Create(s.ctx, viewer(), multi)
	s.Require().NoError(err)

	middle := createInput("09:30", "11:00")
	middle.StartDate, middle.EndDate = "2025-03-11", "2025-03-11"
	_, err = s.eng.reservations.Create(s.ctx, viewer(), middle)
	s.ErrorIs(err, commands.ErrConflict)
}

func (s *ReservationCommandsTestSuite) TestCreate_TerminalReservationFreesTheWindow() {
	res, err := s.eng.reservations.Create(s.ctx, viewer(), createInput("09:00", "10:00"))
	s.Require().NoError(err)
	_, err = s.eng.reservations.SetStatus(s.ctx, operator(), res.ID, "rejected")
	s.Require().NoError(err)

	_, err = s.eng.reservations.Create(s.ctx, viewer(), createInput("09:00", "10:00"))
	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestCreate_ConcurrentRequestsAdmitOne() {
	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.eng.reservations.Create(s.ctx, viewer(), createInput("09:00", "11:00"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, commands.ErrConflict):
				conflicts++
			default:
				assert.NoError(s.T(), err)
			}
		}()
	}
	wg.Wait()

	s.Equal(1, created)
	s.Equal(workers-1, conflicts)
}

// =============================================================================
// SetStatus
// =============================================================================

func (s *ReservationCommandsTestSuite) TestSetStatus_Transitions() {
	testCases := []struct {
		name    string
		policy  reservation.TransitionPolicy
		path    []string
		wantErr bool
	}{
		{"strict: pending to confirmed", reservation.PolicyStrict, []string{"confirmed"}, false},
		{"strict: confirmed back to pending", reservation.PolicyStrict, []string{"confirmed", "pending"}, false},
		{"strict: rejected to pending", reservation.PolicyStrict, []string{"rejected", "pending"}, false},
		{"strict: cancelled is terminal", reservation.PolicyStrict, []string{"cancelled", "pending"}, true},
		{"strict: rejected to confirmed", reservation.PolicyStrict, []string{"rejected", "confirmed"}, true},
		{"permissive: cancelled to confirmed", reservation.PolicyPermissive, []string{"cancelled", "confirmed"}, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			eng := newEngine(s.T(), tc.policy)
			res, err := eng.reservations.Create(s.ctx, viewer(), createInput("09:00", "10:00"))
			s.Require().NoError(err)

			for i, status := range tc.path {
				view, err := eng.reservations.SetStatus(s.ctx, operator(), res.ID, status)
				if i == len(tc.path)-1 && tc.wantErr {
					var verr *commands.ValidationError
					s.Require().ErrorAs(err, &verr)
					s.Equal("status", verr.Field)
					return
				}
				s.Require().NoError(err)
				s.Equal(status, view.Status)
			}
		})
	}
}

func (s *ReservationCommandsTestSuite) TestSetStatus_SameStatusWritesNothing() {
	res, err := s.eng.reservations.Create(s.ctx, viewer(), createInput("09:00", "10:00"))
	s.Require().NoError(err)

	view, err := s.eng.reservations.SetStatus(s.ctx, operator(), res.ID, "pending")

	s.Require().NoError(err)
	s.Equal("pending", view.Status)
	s.Equal([]string{shared.EventReservationCreated}, eventKinds(s.eng.store.Events()))
}

func (s *ReservationCommandsTestSuite) TestSetStatus_ReadmissionChecksConflicts() {
	eng := newEngine(s.T(), reservation.PolicyPermissive)
	first, err := eng.reservations.Create(s.ctx, viewer(), createInput("09:00", "11:00"))
	s.Require().NoError(err)
	_, err = eng.reservations.SetStatus(s.ctx, operator(), first.ID, "cancelled")
	s.Require().NoError(err)
	second, err := eng.reservations.Create(s.ctx, viewer(), createInput("10:00", "12:00"))
	s.Require().NoError(err)

	_, err = eng.reservations.SetStatus(s.ctx, operator(), first.ID, "pending")

	var conflict *commands.ConflictError
	s.Require().ErrorAs(err, &conflict)
	s.Equal(second.ID, conflict.ReservationID)
}

func (s *ReservationCommandsTestSuite) TestSetStatus_Errors() {
	res, err := s.eng.reservations.Create(s.ctx, viewer(), createInput("09:00", "10:00"))
	s.Require().NoError(err)

	testCases := []struct {
		name    string
		actor   user.Actor
		id      string
		status  string
		wantErr error
	}{
		{"viewer may not change status", viewer(), res.ID, "confirmed", commands.ErrForbidden},
		{"unknown status", admin(), res.ID, "archived", commands.ErrValidation},
		{"unknown reservation", admin(), "RSV-99", "confirmed", commands.ErrNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.eng.reservations.SetStatus(s.ctx, tc.actor, tc.id, tc.status)
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func TestCreate_SeededStoreContinuesNumbering(t *testing.T) {
	eng := newEngine(t, reservation.PolicyStrict)
	eng.store.Seed(
		builder.NewReservationBuilder().WithSeq(7).WithRoom("hq", "R9").MustBuildDomain(),
	)

	view, err := eng.reservations.Create(context.Background(), viewer(), createInput("09:00", "10:00"))

	require.NoError(t, err)
	assert.Equal(t, "RSV-08", view.ID)
}
