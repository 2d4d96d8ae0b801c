package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/domain/user"
	"room-reservation-engine/internal/infra"
	"room-reservation-engine/internal/pkg/patch"
	"room-reservation-engine/internal/usecase/queries"
	"room-reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	cancelEndpoint = "POST /reservations/:id/cancellations"
	idempotencyTTL = 24 * time.Hour
)

type SlotInput struct {
	From string
	To   *string
}

type CancelInput struct {
	ReservationID string
	Reason        string
	// Mode may be empty: partial when slots are given, full otherwise.
	Mode           string
	Slots          []SlotInput
	IdempotencyKey *uuid.UUID
}

type CancelResult struct {
	Cancellation *queries.CancellationView
	Reservation  *queries.ReservationView
	Fragments    []*queries.ReservationView
	Replayed     bool
}

type CancellationCommands interface {
	Cancel(ctx context.Context, actor user.Actor, in CancelInput) (*CancelResult, error)
}

type cancellationUseCaseImpl struct {
	uow     shared.UnitOfWork
	locker  shared.RoomLocker
	factory *reservation.Factory
	logger  *slog.Logger
}

func NewCancellationUseCase(
	uow shared.UnitOfWork,
	locker shared.RoomLocker,
	factory *reservation.Factory,
	logger *slog.Logger,
) CancellationCommands {
	return &cancellationUseCaseImpl{
		uow:     uow,
		locker:  locker,
		factory: factory,
		logger:  logger,
	}
}

func (uc *cancellationUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, in CancelInput) (*CancelResult, error) {
	req, err := parseCancellationRequest(actor, in)
	if err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(req)

	snap, err := uc.uow.CommandReads().ReservationByID(ctx, req.ReservationID)
	if err != nil {
		return nil, translateRepoErr(err, "reservation", req.ReservationID)
	}
	room, err := reservation.NewRoom(snap.CatalogID, snap.RoomID)
	if err != nil {
		return nil, err
	}
	unlock, err := acquireRoom(ctx, uc.locker, uc.logger, room)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var result *CancelResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, req.ReservationID)
		if err != nil {
			return translateRepoErr(err, "reservation", req.ReservationID)
		}
		if !actor.CanManage(res.OwnerID()) {
			return &AuthorizationError{ActorID: actor.ID, ReservationID: req.ReservationID}
		}

		if in.IdempotencyKey != nil {
			replayed, err := uc.replayIfSeen(ctx, tx, *in.IdempotencyKey, actor.ID, requestHash)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = replayed
				return nil
			}
		}

		if !res.IsLive() {
			return NewValidationError("status", "reservation is "+res.Status().String()+" and holds no hours")
		}

		result, err = uc.resolve(ctx, tx, res, req)
		if err != nil {
			return err
		}

		if in.IdempotencyKey != nil {
			resultID := result.Cancellation.ID
			err := tx.Idempotency().Save(ctx, shared.IdempotencyRecord{
				Key:         *in.IdempotencyKey,
				ActorID:     actor.ID,
				Endpoint:    cancelEndpoint,
				RequestHash: requestHash,
				Status:      shared.IdempotencyCompleted,
				ResultID:    &resultID,
				ExpiresAt:   uc.factory.Clock.Now().Add(idempotencyTTL),
			})
			if err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return &ConflictError{Reason: ReasonKeyReused}
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		uc.logger.Info("reservation cancelled",
			"reservation_id", req.ReservationID,
			"cancellation_id", result.Cancellation.ID,
			"mode", result.Cancellation.Mode,
			"outcome", result.Cancellation.Outcome,
			"fragments", len(result.Fragments),
			"actor_id", actor.ID)
	}
	return result, nil
}

// resolve persists the audit record first, then either cancels the reservation outright or
// shrinks it to its first surviving hour range and splits the rest off into new reservations.
func (uc *cancellationUseCaseImpl) resolve(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	req reservation.CancellationRequest,
) (*CancelResult, error) {
	seq, err := tx.Sequences().Next(ctx, reservation.ClassCancellation)
	if err != nil {
		return nil, err
	}
	record, err := uc.factory.CreateCancellation(seq, req)
	if err != nil {
		return nil, toValidationError(err)
	}
	if err := tx.Cancellations().Create(ctx, record); err != nil {
		return nil, err
	}

	now := uc.factory.Clock.Now()
	plan := reservation.PlanSplit(res.Window(), req.Slots)
	outcome := req.Mode
	var fragments []*queries.ReservationView

	if req.Mode == reservation.ModeFull || len(req.Slots) == 0 || plan.CancelsAll() {
		outcome = reservation.ModeFull
		if err := res.Cancel(now); err != nil {
			return nil, toValidationError(err)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return nil, translateRepoErr(err, "reservation", res.ID().String())
		}
	} else {
		original := res.Clone()
		primary, _ := plan.Primary()
		res.ShrinkTo(primary, now)
		// The shrink must land before the fragments are inserted, or they would overlap the
		// original's old window.
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return nil, translateRepoErr(err, "reservation", res.ID().String())
		}

		for _, hours := range plan.Fragments() {
			seq, err := tx.Sequences().Next(ctx, reservation.ClassReservation)
			if err != nil {
				return nil, err
			}
			frag := uc.factory.CreateFragment(original, seq, hours)
			if err := tx.Reservations().Create(ctx, frag); err != nil {
				return nil, translateRepoErr(err, "reservation", frag.ID().String())
			}
			ticket := uc.factory.IssueTicket(frag)
			if err := tx.Tickets().Create(ctx, ticket); err != nil {
				return nil, err
			}
			view := queries.ReservationViewFromDomain(frag)
			view.Ticket = queries.TicketViewFromDomain(ticket)
			fragments = append(fragments, view)
		}
	}

	ids := make([]string, 0, len(fragments))
	for _, f := range fragments {
		ids = append(ids, f.ID)
	}
	record.Resolve(outcome, ids)
	if err := tx.Cancellations().UpdateOutcome(ctx, record); err != nil {
		return nil, err
	}

	result := &CancelResult{
		Cancellation: queries.CancellationViewFromDomain(record),
		Reservation:  queries.ReservationViewFromDomain(res),
		Fragments:    fragments,
	}
	if err := attachTicket(ctx, tx, result.Reservation); err != nil {
		return nil, err
	}

	kind := shared.EventReservationCancelled
	if outcome == reservation.ModePartial {
		kind = shared.EventReservationSplit
	}
	err = appendEvent(ctx, tx, uc.factory, kind, res.ID().String(), eventPayload{
		Reservation:  result.Reservation,
		Cancellation: result.Cancellation,
		Fragments:    fragments,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// replayIfSeen returns the stored outcome for a key this actor already used. A nil result
// with a nil error means the key is new.
func (uc *cancellationUseCaseImpl) replayIfSeen(
	ctx context.Context,
	tx shared.Tx,
	key, actorID uuid.UUID,
	requestHash string,
) (*CancelResult, error) {
	rec, err := tx.Idempotency().Get(ctx, key, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if rec.RequestHash != requestHash || rec.ResultID == nil {
		return nil, &ConflictError{Reason: ReasonKeyReused}
	}

	record, err := tx.Cancellations().FindByID(ctx, *rec.ResultID)
	if err != nil {
		return nil, translateRepoErr(err, "cancellation", *rec.ResultID)
	}
	res, err := tx.Reservations().FindByID(ctx, record.ReservationID())
	if err != nil {
		return nil, translateRepoErr(err, "reservation", record.ReservationID())
	}
	frags, err := tx.Reservations().FindByIDs(ctx, record.ResultingIDs())
	if err != nil {
		return nil, err
	}

	result := &CancelResult{
		Cancellation: queries.CancellationViewFromDomain(record),
		Reservation:  queries.ReservationViewFromDomain(res),
		Replayed:     true,
	}
	if err := attachTicket(ctx, tx, result.Reservation); err != nil {
		return nil, err
	}
	for _, f := range frags {
		view := queries.ReservationViewFromDomain(f)
		if err := attachTicket(ctx, tx, view); err != nil {
			return nil, err
		}
		result.Fragments = append(result.Fragments, view)
	}
	return result, nil
}

func attachTicket(ctx context.Context, tx shared.Tx, view *queries.ReservationView) error {
	ticket, err := tx.Tickets().FindByReservationID(ctx, view.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	view.Ticket = queries.TicketViewFromDomain(ticket)
	return nil
}

func parseCancellationRequest(actor user.Actor, in CancelInput) (reservation.CancellationRequest, error) {
	id := strings.TrimSpace(in.ReservationID)
	if id == "" {
		return reservation.CancellationRequest{}, NewValidationError("reservation_id", "is required")
	}
	if strings.TrimSpace(in.Reason) == "" {
		return reservation.CancellationRequest{}, NewValidationError("reason", "is required")
	}

	slots := make([]reservation.Slot, 0, len(in.Slots))
	for i, s := range in.Slots {
		from, err := reservation.ParseTimeOfDay(s.From)
		if err != nil {
			return reservation.CancellationRequest{}, NewValidationError(fmt.Sprintf("slots[%d].from", i), "must be HH:MM")
		}
		var to *reservation.TimeOfDay
		if raw := strings.TrimSpace(patch.Coalesce(s.To, "")); raw != "" {
			parsed, err := reservation.ParseTimeOfDay(raw)
			if err != nil {
				return reservation.CancellationRequest{}, NewValidationError(fmt.Sprintf("slots[%d].to", i), "must be HH:MM")
			}
			to = &parsed
		}
		slots = append(slots, reservation.NewSlot(from, to))
	}

	mode := reservation.ModeFull
	if len(slots) > 0 {
		mode = reservation.ModePartial
	}
	if strings.TrimSpace(in.Mode) != "" {
		parsed, err := reservation.ParseCancelMode(in.Mode)
		if err != nil {
			return reservation.CancellationRequest{}, NewValidationError("mode", "must be full or partial")
		}
		mode = parsed
	}

	return reservation.CancellationRequest{
		ReservationID: id,
		Reason:        in.Reason,
		RequestedBy:   actor.ID,
		Mode:          mode,
		Slots:         slots,
	}, nil
}

func calculateRequestHash(req reservation.CancellationRequest) string {
	slots := make([]string, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, s.From.String()+"-"+s.To.String())
	}
	data, _ := json.Marshal(struct {
		ReservationID string   `json:"reservation_id"`
		Reason        string   `json:"reason"`
		Mode          string   `json:"mode"`
		Slots         []string `json:"slots"`
	}{req.ReservationID, strings.TrimSpace(req.Reason), string(req.Mode), slots})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
