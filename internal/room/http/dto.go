package http

import (
	"time"

	"github.com/smartcampus/room-booking-backend/internal/room"
)

// CreateRoomBody is the payload for POST /rooms.
type CreateRoomBody struct {
	Name     string   `json:"name" binding:"required"`
	Type     string   `json:"type" binding:"omitempty,oneof=classroom lab other"`
	Capacity int      `json:"capacity" binding:"required,min=1"`
	Features []string `json:"features" binding:"omitempty,dive,oneof=projector ac"`
	Location string   `json:"location" binding:"required"`
}

// UpdateRoomBody is the payload for PATCH /rooms/:id.
type UpdateRoomBody struct {
	Name     *string   `json:"name"`
	Type     *string   `json:"type" binding:"omitempty,oneof=classroom lab other"`
	Capacity *int      `json:"capacity" binding:"omitempty,min=1"`
	Features *[]string `json:"features" binding:"omitempty,dive,oneof=projector ac"`
	Location *string   `json:"location"`
}

// RoomResponse is the room shape returned by the API.
type RoomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Capacity  int       `json:"capacity"`
	Features  []string  `json:"features"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	features := make([]string, 0, len(rm.Features))
	for _, f := range rm.Features {
		features = append(features, string(f))
	}

	return RoomResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Type:      string(rm.Type),
		Capacity:  rm.Capacity,
		Features:  features,
		Location:  rm.Location,
		IsActive:  rm.IsActive,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func toFeatures(in []string) []room.Feature {
	out := make([]room.Feature, len(in))
	for i, f := range in {
		out[i] = room.Feature(f)
	}
	return out
}
