package booking

import (
	"context"
	"time"
)

// RoomCount ranks one room by how often it was booked.
type RoomCount struct {
	RoomID        string `json:"roomId"`
	RoomName      string `json:"roomName"`
	Location      string `json:"location"`
	TotalBookings int    `json:"totalBookings"`
}

// HourCount is one hour-of-day bucket in the peak-hours histogram.
type HourCount struct {
	Hour     int `json:"hour"`
	Bookings int `json:"bookings"`
}

// StatusSummary counts bookings per lifecycle state.
type StatusSummary struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
}

// Total sums all state counts.
func (s StatusSummary) Total() int {
	return s.Pending + s.Approved + s.Rejected + s.Cancelled
}

// Overview is the time-windowed booking count block of the dashboard.
type Overview struct {
	Today     int `json:"today"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
	Total     int `json:"total"`
}

// DashboardStats is the admin reporting payload.
type DashboardStats struct {
	Overview      Overview      `json:"overview"`
	StatusSummary StatusSummary `json:"statusSummary"`
	TopRooms      []RoomCount   `json:"topRooms"`
	PeakHours     []HourCount   `json:"peakHours"`
}

// UserStats is the per-user booking count payload.
type UserStats struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

const topLimit = 5

// DashboardStats aggregates the booking ledger for the admin dashboard.
// Day/week/month windows are anchored at local midnight at call time, with
// Sunday-start weeks. All timestamps are kept in one canonical timezone;
// no per-room timezone is modeled.
func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.repo.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	summary := toSummary(counts)

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	weekStart := dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := s.repo.CountStartingBetween(ctx, dayStart, &dayEnd)
	if err != nil {
		return nil, err
	}
	thisWeek, err := s.repo.CountStartingBetween(ctx, weekStart, nil)
	if err != nil {
		return nil, err
	}
	thisMonth, err := s.repo.CountStartingBetween(ctx, monthStart, nil)
	if err != nil {
		return nil, err
	}

	topRooms, err := s.repo.TopRooms(ctx, topLimit)
	if err != nil {
		return nil, err
	}
	peakHours, err := s.repo.PeakHours(ctx, topLimit)
	if err != nil {
		return nil, err
	}

	if topRooms == nil {
		topRooms = []RoomCount{}
	}
	if peakHours == nil {
		peakHours = []HourCount{}
	}

	return &DashboardStats{
		Overview: Overview{
			Today:     today,
			ThisWeek:  thisWeek,
			ThisMonth: thisMonth,
			Total:     summary.Total(),
		},
		StatusSummary: summary,
		TopRooms:      topRooms,
		PeakHours:     peakHours,
	}, nil
}

// MyStats counts the caller's own bookings per status.
func (s *service) MyStats(ctx context.Context, userID string) (*UserStats, error) {
	counts, err := s.repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := toSummary(counts)

	return &UserStats{
		Pending:   summary.Pending,
		Approved:  summary.Approved,
		Rejected:  summary.Rejected,
		Cancelled: summary.Cancelled,
		Total:     summary.Total(),
	}, nil
}

func toSummary(counts map[Status]int) StatusSummary {
	return StatusSummary{
		Pending:   counts[StatusPending],
		Approved:  counts[StatusApproved],
		Rejected:  counts[StatusRejected],
		Cancelled: counts[StatusCancelled],
	}
}
