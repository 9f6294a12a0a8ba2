package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/smartcampus/room-booking-backend/internal/room"
)

// memRepo is an in-memory Repository used by the service tests. It mirrors
// the storage semantics, including the exclusion-constraint behavior of
// rejecting inserts that overlap an active booking.
type memRepo struct {
	mu       sync.Mutex
	seq      int
	bookings []*Booking

	// failWith, when set, makes every call fail as if storage were down.
	failWith error
}

func newMemRepo() *memRepo {
	return &memRepo{}
}

func (r *memRepo) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return r.failWith
	}

	// Same arbiter as the bookings_no_overlap constraint.
	for _, existing := range r.bookings {
		if existing.RoomID == b.RoomID && existing.Status.IsActive() &&
			Overlaps(existing.StartTime, existing.EndTime, b.StartTime, b.EndTime) {
			return ErrTimeConflict
		}
	}

	r.seq++
	b.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.seq)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt

	clone := *b
	r.bookings = append(r.bookings, &clone)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*Booking
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.RoomID != "" && b.RoomID != filter.RoomID {
			continue
		}
		if filter.RoomType != "" && b.RoomType != filter.RoomType {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.ActiveOnly && !b.Status.IsActive() {
			continue
		}
		if filter.DateFrom != nil && b.StartTime.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && b.StartTime.After(*filter.DateTo) {
			continue
		}
		if filter.StartFrom != nil && b.StartTime.Before(*filter.StartFrom) {
			continue
		}
		if filter.StartTo != nil && !b.StartTime.Before(*filter.StartTo) {
			continue
		}
		clone := *b
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		if filter.SortAsc {
			return matched[i].StartTime.Before(matched[j].StartTime)
		}
		return matched[j].StartTime.Before(matched[i].StartTime)
	})

	total := len(matched)
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		offset := (page - 1) * filter.Limit
		if offset > total {
			offset = total
		}
		end := offset + filter.Limit
		if end > total {
			end = total
		}
		matched = matched[offset:end]
	}
	return matched, total, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.ID == b.ID {
			existing.Status = b.Status
			existing.AdminComment = b.AdminComment
			existing.UpdatedAt = time.Now().UTC()
			b.UpdatedAt = existing.UpdatedAt
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepo) HasOverlap(_ context.Context, roomID string, start, end time.Time, excludeBookingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return false, r.failWith
	}

	for _, b := range r.bookings {
		if b.RoomID != roomID || !b.Status.IsActive() {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if Overlaps(b.StartTime, b.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) ListIntersecting(_ context.Context, roomID string, from, to time.Time) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.RoomID != roomID || !b.Status.IsActive() {
			continue
		}
		if Overlaps(b.StartTime, b.EndTime, from, to) {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *memRepo) CountByStatus(_ context.Context, userID string) (map[Status]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[Status]int)
	for _, b := range r.bookings {
		if userID != "" && b.UserID != userID {
			continue
		}
		counts[b.Status]++
	}
	return counts, nil
}

func (r *memRepo) CountStartingBetween(_ context.Context, from time.Time, to *time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, b := range r.bookings {
		if b.StartTime.Before(from) {
			continue
		}
		if to != nil && !b.StartTime.Before(*to) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *memRepo) TopRooms(_ context.Context, limit int) ([]RoomCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byRoom := make(map[string]*RoomCount)
	for _, b := range r.bookings {
		rc, ok := byRoom[b.RoomID]
		if !ok {
			rc = &RoomCount{RoomID: b.RoomID, RoomName: b.RoomName, Location: b.RoomLocation}
			byRoom[b.RoomID] = rc
		}
		rc.TotalBookings++
	}

	out := make([]RoomCount, 0, len(byRoom))
	for _, rc := range byRoom {
		out = append(out, *rc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalBookings != out[j].TotalBookings {
			return out[i].TotalBookings > out[j].TotalBookings
		}
		return out[i].RoomName < out[j].RoomName
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) PeakHours(_ context.Context, limit int) ([]HourCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byHour := make(map[int]int)
	for _, b := range r.bookings {
		byHour[b.StartTime.Hour()]++
	}

	out := make([]HourCount, 0, len(byHour))
	for h, n := range byHour {
		out = append(out, HourCount{Hour: h, Bookings: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bookings != out[j].Bookings {
			return out[i].Bookings > out[j].Bookings
		}
		return out[i].Hour < out[j].Hour
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// memRoomService is a minimal room.Service backed by a map.
type memRoomService struct {
	rooms map[string]*room.Room

	// getErr, when set, makes GetByID fail as if storage were down.
	getErr error
}

func newMemRoomService(rooms ...*room.Room) *memRoomService {
	m := make(map[string]*room.Room, len(rooms))
	for _, rm := range rooms {
		m[rm.ID] = rm
	}
	return &memRoomService{rooms: m}
}

func (s *memRoomService) Create(_ context.Context, _ room.CreateRequest) (*room.Room, error) {
	panic("not used in booking tests")
}

func (s *memRoomService) GetByID(_ context.Context, id string) (*room.Room, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if rm, ok := s.rooms[id]; ok {
		return rm, nil
	}
	return nil, room.ErrNotFound
}

func (s *memRoomService) ListActive(_ context.Context) ([]*room.Room, error) {
	panic("not used in booking tests")
}

func (s *memRoomService) Update(_ context.Context, _ string, _ room.UpdateRequest) (*room.Room, error) {
	panic("not used in booking tests")
}

func (s *memRoomService) Deactivate(_ context.Context, _ string) (*room.Room, error) {
	panic("not used in booking tests")
}

// recordingNotifier captures notification sends on a channel so tests can
// wait for the detached goroutine.
type recordingNotifier struct {
	sent chan notification
}

type notification struct {
	To      string
	Subject string
	Body    string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan notification, 8)}
}

func (n *recordingNotifier) Send(_ context.Context, to, subject, body string) error {
	n.sent <- notification{To: to, Subject: subject, Body: body}
	return nil
}
