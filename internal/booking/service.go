package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/smartcampus/room-booking-backend/internal/notify"
	"github.com/smartcampus/room-booking-backend/internal/room"
)

type CreateRequest struct {
	UserID    string
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
	Purpose   string
}

// Service is the booking ledger: it owns the state machine and invokes the
// conflict engine on create and on approval.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	Approve(ctx context.Context, id, adminComment string) (*Booking, error)
	Reject(ctx context.Context, id, adminComment string) (*Booking, error)
	Cancel(ctx context.Context, id, requesterID string, isAdmin bool) (*Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*Booking, error)
	ListAll(ctx context.Context, status Status) ([]*Booking, error)
	Search(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Read-side projections (projection.go).
	Availability(ctx context.Context, roomID string, date time.Time) (*DayAvailability, error)
	Calendar(ctx context.Context, year, month int, roomID string) ([]CalendarEntry, error)

	// Reporting (stats.go).
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	MyStats(ctx context.Context, userID string) (*UserStats, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	notifier    notify.Notifier

	// now is a hook for tests; production uses time.Now.
	now func() time.Time
}

func NewService(repo Repository, roomService room.Service, notifier notify.Notifier) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if strings.TrimSpace(req.Purpose) == "" {
		return nil, ErrPurposeRequired
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	if req.StartTime.Before(s.now()) {
		return nil, ErrStartTimePast
	}

	rm, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		// Only a missing room maps to 404; a storage outage keeps its
		// own retryable code.
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}
	if !rm.IsActive {
		return nil, ErrRoomUnavailable
	}

	hasConflict, err := s.repo.HasOverlap(ctx, req.RoomID, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	if hasConflict {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		UserID:    req.UserID,
		RoomID:    req.RoomID,
		StartTime: req.StartTime.UTC(),
		EndTime:   req.EndTime.UTC(),
		Purpose:   strings.TrimSpace(req.Purpose),
		Status:    StatusPending,
	}

	// A concurrent create racing past the check above loses at the
	// storage layer and comes back as ErrTimeConflict.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	b.RoomName = rm.Name
	b.RoomLocation = rm.Location
	b.RoomType = string(rm.Type)
	return b, nil
}

func (s *service) Approve(ctx context.Context, id, adminComment string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransitionTo(StatusApproved) {
		return nil, ErrInvalidTransit
	}

	// Time may have passed since creation; another booking could have been
	// approved for an overlapping slot. Re-check, excluding our own interval.
	hasConflict, err := s.repo.HasOverlap(ctx, b.RoomID, b.StartTime, b.EndTime, b.ID)
	if err != nil {
		return nil, err
	}
	if hasConflict {
		return nil, ErrTimeConflict
	}

	b.Status = StatusApproved
	if adminComment != "" {
		b.AdminComment = adminComment
	}

	if err := s.repo.UpdateStatus(ctx, b); err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, b)
	return b, nil
}

func (s *service) Reject(ctx context.Context, id, adminComment string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// No conflict re-check: rejecting frees the slot.
	if !b.Status.CanTransitionTo(StatusRejected) {
		return nil, ErrInvalidTransit
	}

	b.Status = StatusRejected
	if adminComment != "" {
		b.AdminComment = adminComment
	}

	if err := s.repo.UpdateStatus(ctx, b); err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, b)
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id, requesterID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.UserID != requesterID && !isAdmin {
		return nil, ErrNotOwner
	}
	if !b.Status.CanTransitionTo(StatusCancelled) {
		return nil, ErrInvalidTransit
	}

	b.Status = StatusCancelled

	if err := s.repo.UpdateStatus(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]*Booking, error) {
	bookings, _, err := s.repo.List(ctx, Filter{UserID: userID})
	return bookings, err
}

func (s *service) ListAll(ctx context.Context, status Status) ([]*Booking, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	bookings, _, err := s.repo.List(ctx, Filter{Status: status})
	return bookings, err
}

func (s *service) Search(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, ErrInvalidStatus
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	// DateTo is an inclusive calendar date: stretch it to the end of that day.
	if filter.DateTo != nil {
		end := filter.DateTo.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.DateTo = &end
	}
	return s.repo.List(ctx, filter)
}

// notifyStatusChange dispatches a best-effort email to the booking owner.
// It never blocks the caller and its failure never rolls back the
// transition; the ledger is the system of record, not the notification.
func (s *service) notifyStatusChange(ctx context.Context, b *Booking) {
	if s.notifier == nil || b.UserEmail == "" {
		return
	}

	subject := fmt.Sprintf("Your booking for %s has been %s", b.RoomName, b.Status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your booking for <b>%s</b> (%s – %s) is now <b>%s</b>.</p>",
		b.UserName, b.RoomName,
		b.StartTime.Format(time.RFC1123), b.EndTime.Format(time.RFC1123),
		b.Status,
	)
	if b.AdminComment != "" {
		body += fmt.Sprintf("<p>Admin comment: %s</p>", b.AdminComment)
	}

	go func(ctx context.Context) {
		if err := s.notifier.Send(ctx, b.UserEmail, subject, body); err != nil {
			log.Printf("booking %s: notification to %s failed: %v", b.ID, b.UserEmail, err)
		}
	}(context.WithoutCancel(ctx))
}
