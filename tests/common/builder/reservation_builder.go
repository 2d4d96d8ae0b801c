//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation-engine/internal/domain/reservation"
	reqdto "room-reservation-engine/internal/handler/dto/request"
	"room-reservation-engine/internal/infra/query"
	"room-reservation-engine/internal/pkg/pgconv"
	"room-reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Seq       int64
	OwnerID   uuid.UUID
	CatalogID string
	RoomID    string
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	Purpose   string
	Attendees int
	Status    reservation.Status
	Now       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Seq:       1,
		OwnerID:   uuid.New(),
		CatalogID: "hq",
		RoomID:    "orion",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-10",
		StartTime: "09:00",
		EndTime:   "13:00",
		Purpose:   "Quarterly planning",
		Attendees: 6,
		Status:    reservation.StatusPending,
		Now:       time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithSeq(seq int64) *ReservationBuilder {
	r.Seq = seq
	return r
}

func (r *ReservationBuilder) WithRoom(catalogID, roomID string) *ReservationBuilder {
	r.CatalogID = catalogID
	r.RoomID = roomID
	return r
}

func (r *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	r.StartDate = start
	r.EndDate = end
	return r
}

func (r *ReservationBuilder) WithTimes(start, end string) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithOwner(ownerID uuid.UUID) *ReservationBuilder {
	r.OwnerID = ownerID
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDraft() (reservation.Draft, error) {
	room, err := reservation.NewRoom(r.CatalogID, r.RoomID)
	if err != nil {
		return reservation.Draft{}, err
	}
	startDate, err := reservation.ParseDate(r.StartDate)
	if err != nil {
		return reservation.Draft{}, err
	}
	endDate, err := reservation.ParseDate(r.EndDate)
	if err != nil {
		return reservation.Draft{}, err
	}
	startTime, err := reservation.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return reservation.Draft{}, err
	}
	endTime, err := reservation.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return reservation.Draft{}, err
	}
	window, err := reservation.NewWindow(startDate, endDate, startTime, endTime)
	if err != nil {
		return reservation.Draft{}, err
	}
	return reservation.Draft{
		OwnerID:   r.OwnerID,
		Room:      room,
		Window:    window,
		Purpose:   r.Purpose,
		Attendees: r.Attendees,
	}, nil
}

func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	draft, err := r.BuildDraft()
	if err != nil {
		return nil, err
	}
	res, err := reservation.NewReservation(reservation.NewIdentifier("RSV", r.Seq), draft, r.Now)
	if err != nil {
		return nil, err
	}
	if r.Status != reservation.StatusPending {
		res = reservation.ReconstructReservation(
			res.ID(), res.OwnerID(), res.Room(), res.Window(), res.Purpose(), res.Attendees(),
			r.Status, res.CreatedAt(), res.UpdatedAt(),
		)
	}
	return res, nil
}

// MustBuildDomain is for fixtures whose fields are known to be valid.
func (r *ReservationBuilder) MustBuildDomain() *reservation.Reservation {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CatalogID: r.CatalogID,
		RoomID:    r.RoomID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Purpose:   r.Purpose,
		Attendees: r.Attendees,
	}
}

func (r *ReservationBuilder) BuildRow() query.ReservationRow {
	res := r.MustBuildDomain()
	return query.ReservationRow{
		ID:        res.ID().String(),
		Seq:       res.ID().Seq(),
		OwnerID:   res.OwnerID(),
		CatalogID: res.Room().CatalogID(),
		RoomID:    res.Room().RoomID(),
		StartDate: pgconv.DateToPgtype(res.Window().StartDate().Time()),
		EndDate:   pgconv.DateToPgtype(res.Window().EndDate().Time()),
		StartTime: pgconv.SecondsToPgtypeTime(res.Window().StartTime().Seconds()),
		EndTime:   pgconv.SecondsToPgtypeTime(res.Window().EndTime().Seconds()),
		Purpose:   res.Purpose(),
		Attendees: int32(res.Attendees()),
		Status:    res.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	res := r.MustBuildDomain()
	return queries.ReservationViewFromDomain(res)
}
