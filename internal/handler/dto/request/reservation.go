package request

import (
	"strings"

	"room-reservation-engine/internal/usecase/commands"
	"room-reservation-engine/internal/usecase/queries"
)

type CreateReservationRequest struct {
	CatalogID string `json:"catalogId" binding:"required"`
	RoomID    string `json:"roomId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Purpose   string `json:"purpose" binding:"max=500"`
	Attendees int    `json:"attendees" binding:"min=0"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CatalogID: strings.TrimSpace(r.CatalogID),
		RoomID:    strings.TrimSpace(r.RoomID),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Purpose:   strings.TrimSpace(r.Purpose),
		Attendees: r.Attendees,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed rejected cancelled"`
}

type ListReservationsQuery struct {
	CatalogID string `form:"catalogId"`
	RoomID    string `form:"roomId"`
	Date      string `form:"date"`
	Status    string `form:"status"`
	Mine      bool   `form:"mine"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After     string `form:"after"`
}

func (q ListReservationsQuery) ToInput() queries.ListReservationsInput {
	return queries.ListReservationsInput{
		CatalogID: q.CatalogID,
		RoomID:    q.RoomID,
		Date:      q.Date,
		Status:    q.Status,
		Mine:      q.Mine,
		After:     q.After,
		Limit:     q.Limit,
	}
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required"`
}
