package http

import (
	"time"

	"github.com/smartcampus/room-booking-backend/internal/booking"
	"github.com/smartcampus/room-booking-backend/internal/pkg/request"
)

// CreateBookingBody is the payload for POST /bookings.
type CreateBookingBody struct {
	RoomID    string    `json:"roomId" binding:"required,uuid"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Purpose   string    `json:"purpose" binding:"required"`
}

// UpdateStatusBody is the payload for PATCH /bookings/:id/status.
// Admins may only approve or reject; cancellation is a separate
// user-facing operation.
type UpdateStatusBody struct {
	Status       string `json:"status" binding:"required,oneof=approved rejected"`
	AdminComment string `json:"adminComment"`
}

// SearchQuery holds the filters for GET /bookings/search.
type SearchQuery struct {
	request.ListParams
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled"`
	RoomType string `form:"roomType" binding:"omitempty,oneof=classroom lab other"`
	RoomID   string `form:"roomId" binding:"omitempty,uuid"`
	UserID   string `form:"userId" binding:"omitempty,uuid"`
	FromDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// CalendarQuery holds the parameters for GET /bookings/calendar.
type CalendarQuery struct {
	Year   int    `form:"year" binding:"required,min=2000,max=2200"`
	Month  int    `form:"month" binding:"required,min=1,max=12"`
	RoomID string `form:"resourceId" binding:"omitempty,uuid"`
}

// AvailabilityQuery holds the parameters for GET /bookings/availability.
type AvailabilityQuery struct {
	RoomID string `form:"resourceId" binding:"required,uuid"`
	Date   string `form:"date" binding:"required,datetime=2006-01-02"`
}

// RoomTag identifies a room inside a booking response.
type RoomTag struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// UserTag identifies a user inside a booking response. Name is joined in
// by the repository on reads; the create path returns only the id.
type UserTag struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// BookingResponse is the booking shape returned by the API.
type BookingResponse struct {
	ID           string    `json:"id"`
	Room         RoomTag   `json:"room"`
	User         UserTag   `json:"user"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Purpose      string    `json:"purpose"`
	Status       string    `json:"status"`
	AdminComment string    `json:"adminComment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		Room:         RoomTag{ID: b.RoomID, Name: b.RoomName, Location: b.RoomLocation, Type: b.RoomType},
		User:         UserTag{ID: b.UserID, Name: b.UserName},
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Purpose:      b.Purpose,
		Status:       string(b.Status),
		AdminComment: b.AdminComment,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func NewBookingResponses(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = NewBookingResponse(b)
	}
	return out
}
