package booking

import (
	"context"
	"time"
)

// BookedSlot is one occupied interval in a day's availability view.
type BookedSlot struct {
	BookingID string    `json:"bookingId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    Status    `json:"status"`
	Purpose   string    `json:"purpose"`
}

// DayAvailability is the per-day occupancy view for a room.
type DayAvailability struct {
	RoomID   string       `json:"roomId"`
	RoomName string       `json:"roomName"`
	Date     string       `json:"date"` // YYYY-MM-DD
	Booked   []BookedSlot `json:"booked"`
}

// CalendarEntry is one booking rendered for a month calendar.
type CalendarEntry struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   Status    `json:"status"`
	UserName string    `json:"userName"`
	RoomName string    `json:"roomName"`
}

// Availability lists the active bookings whose interval intersects the
// given calendar day. Read-only; the ledger is never mutated.
func (s *service) Availability(ctx context.Context, roomID string, date time.Time) (*DayAvailability, error) {
	rm, err := s.roomService.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.repo.ListIntersecting(ctx, roomID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := &DayAvailability{
		RoomID:   rm.ID,
		RoomName: rm.Name,
		Date:     dayStart.Format("2006-01-02"),
		Booked:   make([]BookedSlot, 0, len(bookings)),
	}
	for _, b := range bookings {
		out.Booked = append(out.Booked, BookedSlot{
			BookingID: b.ID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
			Purpose:   b.Purpose,
		})
	}
	return out, nil
}

// Calendar returns the active bookings whose start time falls within the
// month, ascending. roomID narrows to one room when non-empty.
func (s *service) Calendar(ctx context.Context, year, month int, roomID string) ([]CalendarEntry, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	bookings, _, err := s.repo.List(ctx, Filter{
		RoomID:     roomID,
		ActiveOnly: true,
		StartFrom:  &monthStart,
		StartTo:    &monthEnd,
		SortAsc:    true,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]CalendarEntry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, CalendarEntry{
			ID:       b.ID,
			Title:    b.Purpose,
			Start:    b.StartTime,
			End:      b.EndTime,
			Status:   b.Status,
			UserName: b.UserName,
			RoomName: b.RoomName,
		})
	}
	return entries, nil
}
