package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartcampus/room-booking-backend/internal/auth"
	"github.com/smartcampus/room-booking-backend/internal/booking"
	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
	"github.com/smartcampus/room-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// POST /bookings
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Validation("roomId, startTime, endTime and purpose are required"))
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:    auth.GetUserID(c),
		RoomID:    body.RoomID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Purpose:   body.Purpose,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, "Booking request created", NewBookingResponse(b))
}

// GET /bookings/my-bookings
func (h *Handler) MyBookings(c *gin.Context) {
	bookings, err := h.service.ListForUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "User bookings fetched", NewBookingResponses(bookings))
}

// GET /bookings/all?status= (admin)
func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context(), booking.Status(c.Query("status")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "All bookings fetched", NewBookingResponses(bookings))
}

// PATCH /bookings/:id/status (admin)
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.Validation("invalid booking id"))
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, booking.ErrInvalidStatus)
		return
	}

	ctx := c.Request.Context()

	var b *booking.Booking
	var err error
	switch booking.Status(body.Status) {
	case booking.StatusApproved:
		b, err = h.service.Approve(ctx, id, body.AdminComment)
	case booking.StatusRejected:
		b, err = h.service.Reject(ctx, id, body.AdminComment)
	default:
		err = booking.ErrInvalidStatus
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Booking "+body.Status+" successfully", NewBookingResponse(b))
}

// PATCH /bookings/:id/cancel
func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.Validation("invalid booking id"))
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Booking cancelled", NewBookingResponse(b))
}

// GET /bookings/search
func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation("invalid search parameters"))
		return
	}

	filter := booking.Filter{
		Status:   booking.Status(q.Status),
		RoomType: q.RoomType,
		RoomID:   q.RoomID,
		UserID:   q.UserID,
		Page:     q.Page,
		Limit:    q.Limit,
	}
	if q.FromDate != "" {
		t, _ := time.Parse("2006-01-02", q.FromDate)
		filter.DateFrom = &t
	}
	if q.ToDate != "" {
		t, _ := time.Parse("2006-01-02", q.ToDate)
		filter.DateTo = &t
	}

	bookings, total, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	page := response.NewPageResponse(NewBookingResponses(bookings), q.Page, q.Limit, total)
	response.JSON(c, http.StatusOK, "Bookings fetched", page)
}

// GET /bookings/calendar?year=&month=&resourceId=
func (h *Handler) Calendar(c *gin.Context) {
	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation("year and month are required"))
		return
	}

	entries, err := h.service.Calendar(c.Request.Context(), q.Year, q.Month, q.RoomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Calendar fetched", entries)
}

// GET /bookings/availability?resourceId=&date=
func (h *Handler) Availability(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation("resourceId and date are required"))
		return
	}

	date, _ := time.Parse("2006-01-02", q.Date)

	availability, err := h.service.Availability(c.Request.Context(), q.RoomID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Availability fetched", availability)
}

// GET /bookings/dashboard (admin)
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Dashboard stats fetched", stats)
}

// GET /bookings/my-stats
func (h *Handler) MyStats(c *gin.Context) {
	stats, err := h.service.MyStats(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "My booking stats fetched", stats)
}
