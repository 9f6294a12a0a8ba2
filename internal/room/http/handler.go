package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
	"github.com/smartcampus/room-booking-backend/internal/pkg/request"
	"github.com/smartcampus/room-booking-backend/internal/pkg/response"
	"github.com/smartcampus/room-booking-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

// POST /rooms (admin)
func (h *Handler) Create(c *gin.Context) {
	var body CreateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Validation("name, capacity and location are required"))
		return
	}

	rm, err := h.service.Create(c.Request.Context(), room.CreateRequest{
		Name:     body.Name,
		Type:     room.Type(body.Type),
		Capacity: body.Capacity,
		Features: toFeatures(body.Features),
		Location: body.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, "Room created successfully", NewRoomResponse(rm))
}

// GET /rooms
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, 0, len(rooms))
	for _, rm := range rooms {
		items = append(items, NewRoomResponse(rm))
	}

	response.JSON(c, http.StatusOK, "Rooms fetched successfully", items)
}

// GET /rooms/:id
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid room id"))
		return
	}

	rm, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Room fetched successfully", NewRoomResponse(rm))
}

// PATCH /rooms/:id (admin)
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid room id"))
		return
	}

	var body UpdateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Validation("invalid request body"))
		return
	}

	req := room.UpdateRequest{
		Name:     body.Name,
		Capacity: body.Capacity,
		Location: body.Location,
	}
	if body.Type != nil {
		t := room.Type(*body.Type)
		req.Type = &t
	}
	if body.Features != nil {
		f := toFeatures(*body.Features)
		req.Features = &f
	}

	rm, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Room updated successfully", NewRoomResponse(rm))
}

// PATCH /rooms/:id/deactivate (admin)
func (h *Handler) Deactivate(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid room id"))
		return
	}

	rm, err := h.service.Deactivate(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Room deactivated", NewRoomResponse(rm))
}
