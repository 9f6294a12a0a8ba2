package booking

import (
	"net/http"
	"time"

	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot is already booked for this room")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot book a room in the past")
	ErrPurposeRequired  = apperror.New(http.StatusBadRequest, "purpose is required")
	ErrRoomUnavailable  = apperror.New(http.StatusNotFound, "room not found or inactive")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "you can cancel only your own bookings")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidMonth     = apperror.New(http.StatusBadRequest, "month must be between 1 and 12")
	ErrInvalidTransit   = apperror.New(http.StatusBadRequest, "booking status does not allow this transition")
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// AllStatuses lists every lifecycle state, in reporting order.
var AllStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled}

// transitions encodes the state machine. rejected and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

// CanTransitionTo reports whether the state machine permits moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// IsActive reports whether the status counts toward conflict checks.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Booking is a reservation of a room for a half-open time interval
// [StartTime, EndTime). Name fields are joined in by the repository for
// read views and are not authoritative.
type Booking struct {
	ID           string
	UserID       string
	UserName     string
	UserEmail    string
	RoomID       string
	RoomName     string
	RoomLocation string
	RoomType     string
	StartTime    time.Time
	EndTime      time.Time
	Purpose      string
	Status       Status
	AdminComment string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Filter narrows ledger listings. Zero values mean "no constraint".
type Filter struct {
	UserID   string
	RoomID   string
	RoomType string
	Status   Status

	// Inclusive calendar-date bounds on StartTime (search semantics).
	DateFrom *time.Time
	DateTo   *time.Time

	// Half-open window on StartTime (calendar semantics).
	StartFrom *time.Time
	StartTo   *time.Time

	// ActiveOnly restricts to pending/approved bookings.
	ActiveOnly bool

	// SortAsc orders by start_time ascending instead of the default descending.
	SortAsc bool

	// Page/Limit paginate when Limit > 0; otherwise the full set is returned.
	Page  int
	Limit int
}
