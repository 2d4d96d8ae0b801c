package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/pkg/errs"
	"room-reservation-engine/internal/usecase/queries"
	"room-reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	CatalogID string
	RoomID    string
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	Purpose   string
	Attendees int
}

type ReservationCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (*queries.ReservationView, error)
	SetStatus(ctx context.Context, actor user.Actor, id string, status string) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	locker  shared.RoomLocker
	factory *reservation.Factory
	policy  reservation.TransitionPolicy
	logger  *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	locker shared.RoomLocker,
	factory *reservation.Factory,
	policy reservation.TransitionPolicy,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:     uow,
		locker:  locker,
		factory: factory,
		policy:  policy,
		logger:  logger,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (*queries.ReservationView, error) {
	draft, err := parseDraft(actor, in)
	if err != nil {
		return nil, err
	}

	unlock, err := acquireRoom(ctx, uc.locker, uc.logger, draft.Room)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var view *queries.ReservationView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockRoom(ctx, draft.Room); err != nil {
			return err
		}
		if err := ensureNoConflict(ctx, tx, draft.Room, draft.Window, ""); err != nil {
			return err
		}

		seq, err := tx.Sequences().Next(ctx, reservation.ClassReservation)
		if err != nil {
			return err
		}
		res, err := uc.factory.CreateReservation(seq, draft)
		if err != nil {
			return toValidationError(err)
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return translateRepoErr(err, "reservation", res.ID().String())
		}

		ticket := uc.factory.IssueTicket(res)
		if err := tx.Tickets().Create(ctx, ticket); err != nil {
			return err
		}

		view = queries.ReservationViewFromDomain(res)
		view.Ticket = queries.TicketViewFromDomain(ticket)
		return appendEvent(ctx, tx, uc.factory, shared.EventReservationCreated, res.ID().String(), eventPayload{
			Reservation: view,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("reservation created",
		"reservation_id", view.ID,
		"room", draft.Room.Key(),
		"owner_id", actor.ID)
	return view, nil
}

func (uc *reservationUseCaseImpl) SetStatus(ctx context.Context, actor user.Actor, id string, status string) (*queries.ReservationView, error) {
	to, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, NewValidationError("status", "must be one of pending, confirmed, rejected, cancelled")
	}
	if !actor.Role.AtLeast(user.RoleOperator) {
		return nil, &AuthorizationError{ActorID: actor.ID, ReservationID: id}
	}

	snap, err := uc.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, "reservation", id)
	}

	// Re-admitting a window must not race with creates on the same room.
	if to.IsLive() && !reservation.Status(snap.Status).IsLive() {
		room, err := reservation.NewRoom(snap.CatalogID, snap.RoomID)
		if err != nil {
			return nil, err
		}
		unlock, err := acquireRoom(ctx, uc.locker, uc.logger, room)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	var (
		view *queries.ReservationView
		from reservation.Status
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return translateRepoErr(err, "reservation", id)
		}
		from = res.Status()
		if err := reservation.ValidateTransition(from, to, uc.policy); err != nil {
			return toValidationError(err)
		}

		if to.IsLive() && !from.IsLive() {
			if err := tx.LockRoom(ctx, res.Room()); err != nil {
				return err
			}
			if err := ensureNoConflict(ctx, tx, res.Room(), res.Window(), res.ID().String()); err != nil {
				return err
			}
		}

		if _, err := res.ChangeStatus(to, uc.policy, uc.factory.Clock.Now()); err != nil {
			return toValidationError(err)
		}

		view = queries.ReservationViewFromDomain(res)
		if ticket, err := tx.Tickets().FindByReservationID(ctx, id); err == nil {
			view.Ticket = queries.TicketViewFromDomain(ticket)
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if from == to {
			return nil
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return translateRepoErr(err, "reservation", id)
		}
		return appendEvent(ctx, tx, uc.factory, shared.EventReservationStatusChanged, id, eventPayload{
			Reservation:    view,
			PreviousStatus: from.String(),
			ChangedBy:      actor.ID.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	if from != to {
		uc.logger.Info("reservation status changed",
			"reservation_id", id,
			"from", from.String(),
			"to", to.String(),
			"actor_id", actor.ID)
	}
	return view, nil
}

func parseDraft(actor user.Actor, in CreateReservationInput) (reservation.Draft, error) {
	room, err := reservation.NewRoom(in.CatalogID, in.RoomID)
	if err != nil {
		if in.CatalogID == "" {
			return reservation.Draft{}, NewValidationError("catalog_id", "is required")
		}
		return reservation.Draft{}, NewValidationError("room_id", "is required")
	}

	startDate, err := reservation.ParseDate(in.StartDate)
	if err != nil {
		return reservation.Draft{}, NewValidationError("start_date", "must be YYYY-MM-DD")
	}
	endDate, err := reservation.ParseDate(in.EndDate)
	if err != nil {
		return reservation.Draft{}, NewValidationError("end_date", "must be YYYY-MM-DD")
	}
	startTime, err := reservation.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return reservation.Draft{}, NewValidationError("start_time", "must be HH:MM or HH:MM:SS")
	}
	endTime, err := reservation.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return reservation.Draft{}, NewValidationError("end_time", "must be HH:MM or HH:MM:SS")
	}

	window, err := reservation.NewWindow(startDate, endDate, startTime, endTime)
	if err != nil {
		return reservation.Draft{}, toValidationError(err)
	}

	draft := reservation.Draft{
		OwnerID:   actor.ID,
		Room:      room,
		Window:    window,
		Purpose:   in.Purpose,
		Attendees: in.Attendees,
	}
	if err := draft.Validate(); err != nil {
		return reservation.Draft{}, toValidationError(err)
	}
	return draft, nil
}

func ensureNoConflict(ctx context.Context, tx shared.Tx, room reservation.Room, w reservation.Window, excludeID string) error {
	existing, err := tx.Reservations().ListLiveForRoom(ctx, room, w.StartDate(), w.EndDate())
	if err != nil {
		return err
	}
	if hit, found := reservation.FindConflict(existing, room, w, excludeID); found {
		return &ConflictError{ReservationID: hit.ID().String(), Reason: ReasonSlotUnavailable}
	}
	return nil
}

func acquireRoom(ctx context.Context, locker shared.RoomLocker, logger *slog.Logger, room reservation.Room) (func(), error) {
	release, err := locker.Acquire(ctx, room.Key())
	if err != nil {
		if errors.Is(err, errs.ErrRoomLockUnavailable) {
			return nil, &ConflictError{Reason: "room is busy, retry shortly"}
		}
		return nil, err
	}
	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("room lock release failed", "room", room.Key(), "error", err.Error())
		}
	}, nil
}

var domainFields = []struct {
	err   error
	field string
}{
	{reservation.ErrMissingRoom, "room_id"},
	{reservation.ErrInvalidDate, "start_date"},
	{reservation.ErrInvalidDateRange, "end_date"},
	{reservation.ErrInvalidTime, "start_time"},
	{reservation.ErrInvalidTimeRange, "end_time"},
	{reservation.ErrNegativeAttendees, "attendees"},
	{reservation.ErrMissingOwner, "owner_id"},
	{reservation.ErrInvalidStatus, "status"},
	{reservation.ErrTransitionNotAllowed, "status"},
	{reservation.ErrNotLive, "status"},
	{reservation.ErrReasonRequired, "reason"},
	{reservation.ErrInvalidCancelMode, "mode"},
	{reservation.ErrMalformedIdentifier, "id"},
}

// toValidationError maps domain rule violations onto the request field they concern. Errors
// that are not domain rule violations pass through.
func toValidationError(err error) error {
	for _, f := range domainFields {
		if errors.Is(err, f.err) {
			return NewValidationError(f.field, err.Error())
		}
	}
	return err
}

func translateRepoErr(err error, entity, id string) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return &NotFoundError{Entity: entity, ID: id}
	case infra.IsKind(err, infra.KindExclusionViolated):
		return &ConflictError{Reason: ReasonSlotUnavailable}
	default:
		return err
	}
}

type eventPayload struct {
	Reservation    *queries.ReservationView   `json:"reservation,omitempty"`
	PreviousStatus string                     `json:"previous_status,omitempty"`
	ChangedBy      string                     `json:"changed_by,omitempty"`
	Cancellation   *queries.CancellationView  `json:"cancellation,omitempty"`
	Fragments      []*queries.ReservationView `json:"fragments,omitempty"`
}

func appendEvent(ctx context.Context, tx shared.Tx, f *reservation.Factory, kind, aggregateID string, p eventPayload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "marshal event payload")
	}
	return tx.Events().Append(ctx, shared.Event{
		ID:          uuid.New(),
		Kind:        kind,
		AggregateID: aggregateID,
		Payload:     body,
		OccurredAt:  f.Clock.Now(),
	})
}
