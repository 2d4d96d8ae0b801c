package converter

import (
	"encoding/json"
	"math"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/pkg/errs"
	"room-reservation-engine/internal/pkg/pgconv"
)

func ReservationToRow(res *reservation.Reservation) query.ReservationRow {
	w := res.Window()
	attendees := res.Attendees()
	if attendees > math.MaxInt32 {
		attendees = math.MaxInt32
	}
	return query.ReservationRow{
		ID:        res.ID().String(),
		Seq:       res.ID().Seq(),
		OwnerID:   res.OwnerID(),
		CatalogID: res.Room().CatalogID(),
		RoomID:    res.Room().RoomID(),
		StartDate: pgconv.DateToPgtype(w.StartDate().Time()),
		EndDate:   pgconv.DateToPgtype(w.EndDate().Time()),
		StartTime: pgconv.SecondsToPgtypeTime(w.StartTime().Seconds()),
		EndTime:   pgconv.SecondsToPgtypeTime(w.EndTime().Seconds()),
		Purpose:   res.Purpose(),
		Attendees: int32(attendees), // #nosec G115 -- clamped above
		Status:    res.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) query.UpdateReservationParams {
	w := res.Window()
	return query.UpdateReservationParams{
		ID:        res.ID().String(),
		StartTime: pgconv.SecondsToPgtypeTime(w.StartTime().Seconds()),
		EndTime:   pgconv.SecondsToPgtypeTime(w.EndTime().Seconds()),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromRow(row query.ReservationRow) (*reservation.Reservation, error) {
	room, err := reservation.NewRoom(row.CatalogID, row.RoomID)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation "+row.ID)
	}
	window, err := WindowFromRow(row)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation "+row.ID)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation "+row.ID)
	}
	return reservation.ReconstructReservation(
		reservation.ReconstructIdentifier(row.ID, row.Seq),
		row.OwnerID,
		room,
		window,
		row.Purpose,
		int(row.Attendees),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func WindowFromRow(row query.ReservationRow) (reservation.Window, error) {
	start, err := reservation.TimeOfDayFromSeconds(pgconv.SecondsFromPgtypeTime(row.StartTime))
	if err != nil {
		return reservation.Window{}, err
	}
	end, err := reservation.TimeOfDayFromSeconds(pgconv.SecondsFromPgtypeTime(row.EndTime))
	if err != nil {
		return reservation.Window{}, err
	}
	return reservation.NewWindow(
		reservation.DateOf(pgconv.DateFromPgtype(row.StartDate)),
		reservation.DateOf(pgconv.DateFromPgtype(row.EndDate)),
		start, end,
	)
}

func ReservationsFromRows(rows []query.ReservationRow) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func TicketToRow(t *reservation.Ticket) query.TicketRow {
	return query.TicketRow{
		ID:            t.ID(),
		ReservationID: t.ReservationID(),
		OwnerID:       t.OwnerID(),
		IssuedAt:      pgconv.TimeToPgtype(t.IssuedAt()),
	}
}

func TicketFromRow(row query.TicketRow) *reservation.Ticket {
	return reservation.ReconstructTicket(row.ID, row.ReservationID, row.OwnerID, pgconv.TimeFromPgtype(row.IssuedAt))
}

func CancellationToRow(c *reservation.Cancellation) (query.CancellationRow, error) {
	slots := make([]query.SlotJSON, 0, len(c.Slots()))
	for _, s := range c.Slots() {
		slots = append(slots, query.SlotJSON{From: s.From.String(), To: s.To.String()})
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return query.CancellationRow{}, errs.Wrap(err, "marshal requested slots")
	}
	return query.CancellationRow{
		ID:                      c.ID().String(),
		Seq:                     c.ID().Seq(),
		ReservationID:           c.ReservationID(),
		Reason:                  c.Reason(),
		RequestedBy:             c.RequestedBy(),
		Mode:                    string(c.Mode()),
		Outcome:                 string(c.Outcome()),
		RequestedSlots:          raw,
		ResultingReservationIDs: nonNil(c.ResultingIDs()),
		CreatedAt:               pgconv.TimeToPgtype(c.CreatedAt()),
	}, nil
}

func CancellationFromRow(row query.CancellationRow) (*reservation.Cancellation, error) {
	var raw []query.SlotJSON
	if len(row.RequestedSlots) > 0 {
		if err := json.Unmarshal(row.RequestedSlots, &raw); err != nil {
			return nil, errs.Wrap(err, "stored cancellation "+row.ID)
		}
	}
	slots := make([]reservation.Slot, 0, len(raw))
	for _, s := range raw {
		from, err := reservation.ParseTimeOfDay(s.From)
		if err != nil {
			return nil, errs.Wrap(err, "stored cancellation "+row.ID)
		}
		to, err := reservation.ParseTimeOfDay(s.To)
		if err != nil {
			return nil, errs.Wrap(err, "stored cancellation "+row.ID)
		}
		slots = append(slots, reservation.Slot{From: from, To: to})
	}

	mode, err := reservation.ParseCancelMode(row.Mode)
	if err != nil {
		return nil, errs.Wrap(err, "stored cancellation "+row.ID)
	}
	var outcome reservation.CancelMode
	if row.Outcome != "" {
		if outcome, err = reservation.ParseCancelMode(row.Outcome); err != nil {
			return nil, errs.Wrap(err, "stored cancellation "+row.ID)
		}
	}

	return reservation.ReconstructCancellation(
		reservation.ReconstructIdentifier(row.ID, row.Seq),
		row.ReservationID,
		row.Reason,
		row.RequestedBy,
		mode,
		outcome,
		slots,
		nonNil(row.ResultingReservationIDs),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
