package room

import (
	"net/http"
	"time"

	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrInactive        = apperror.New(http.StatusNotFound, "room is not active")
	ErrNameTaken       = apperror.New(http.StatusConflict, "a room with this name already exists")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name is required")
	ErrEmptyLocation   = apperror.New(http.StatusBadRequest, "location is required")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be at least 1")
	ErrInvalidType     = apperror.New(http.StatusBadRequest, "invalid room type")
	ErrInvalidFeature  = apperror.New(http.StatusBadRequest, "invalid room feature")
)

// Type classifies a bookable room.
type Type string

const (
	TypeClassroom Type = "classroom"
	TypeLab       Type = "lab"
	TypeOther     Type = "other"
)

// Feature is an amenity a room offers.
type Feature string

const (
	FeatureProjector Feature = "projector"
	FeatureAC        Feature = "ac"
)

var (
	ValidTypes    = []Type{TypeClassroom, TypeLab, TypeOther}
	ValidFeatures = []Feature{FeatureProjector, FeatureAC}
)

// Room represents a bookable physical asset. Rooms are never hard-deleted;
// deactivation removes them from booking without touching history.
type Room struct {
	ID        string // UUID
	Name      string // unique
	Type      Type
	Capacity  int
	Features  []Feature
	Location  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
