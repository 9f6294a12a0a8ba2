package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/room-booking-backend/internal/room"
)

func TestAvailability(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(testRoom(labID, "Lab 1"))

	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	// One booking inside the day, one spanning midnight into it, one the
	// day after.
	_, err := svc.Create(ctx, CreateRequest{
		UserID: userA, RoomID: labID,
		StartTime: at(10, 0), EndTime: at(11, 0),
		Purpose: "inside",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{
		UserID: userA, RoomID: labID,
		StartTime: day.Add(-time.Hour), EndTime: day.Add(time.Hour),
		Purpose: "spans midnight",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateRequest{
		UserID: userA, RoomID: labID,
		StartTime: day.AddDate(0, 0, 1).Add(9 * time.Hour), EndTime: day.AddDate(0, 0, 1).Add(10 * time.Hour),
		Purpose: "next day",
	})
	require.NoError(t, err)

	t.Run("returns intersecting slots ascending", func(t *testing.T) {
		av, err := svc.Availability(ctx, labID, day)
		require.NoError(t, err)

		assert.Equal(t, labID, av.RoomID)
		assert.Equal(t, "Lab 1", av.RoomName)
		assert.Equal(t, "2026-09-02", av.Date)
		require.Len(t, av.Booked, 2)
		assert.Equal(t, "spans midnight", av.Booked[0].Purpose)
		assert.Equal(t, "inside", av.Booked[1].Purpose)
	})

	t.Run("cancelled bookings do not occupy the day", func(t *testing.T) {
		b, err := svc.Create(ctx, CreateRequest{
			UserID: userA, RoomID: labID,
			StartTime: at(14, 0), EndTime: at(15, 0),
			Purpose: "soon cancelled",
		})
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, b.ID, userA, false)
		require.NoError(t, err)

		av, err := svc.Availability(ctx, labID, day)
		require.NoError(t, err)
		assert.Len(t, av.Booked, 2)
	})

	t.Run("empty day yields empty slice", func(t *testing.T) {
		av, err := svc.Availability(ctx, labID, day.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.NotNil(t, av.Booked)
		assert.Empty(t, av.Booked)
	})

	t.Run("unknown room fails", func(t *testing.T) {
		_, err := svc.Availability(ctx, "99999999-9999-9999-9999-999999999999", day)
		assert.ErrorIs(t, err, room.ErrNotFound)
	})
}

func TestCalendar(t *testing.T) {
	ctx := context.Background()

	const otherRoomID = "22222222-2222-2222-2222-222222222222"
	svc, _, _ := newTestService(testRoom(labID, "Lab 1"), testRoom(otherRoomID, "Lab 2"))

	seed := func(t *testing.T, roomID string, start time.Time, purpose string) *Booking {
		t.Helper()
		b, err := svc.Create(ctx, CreateRequest{
			UserID: userA, RoomID: roomID,
			StartTime: start, EndTime: start.Add(time.Hour),
			Purpose: purpose,
		})
		require.NoError(t, err)
		return b
	}

	seed(t, labID, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), "mid september")
	seed(t, labID, time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC), "early september")
	seed(t, otherRoomID, time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC), "other room")
	seed(t, labID, time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC), "next month")
	cancelled := seed(t, labID, time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC), "cancelled")
	_, err := svc.Cancel(ctx, cancelled.ID, userA, false)
	require.NoError(t, err)

	t.Run("month window all rooms, ascending, active only", func(t *testing.T) {
		entries, err := svc.Calendar(ctx, 2026, 9, "")
		require.NoError(t, err)

		require.Len(t, entries, 3)
		assert.Equal(t, "early september", entries[0].Title)
		assert.Equal(t, "other room", entries[1].Title)
		assert.Equal(t, "mid september", entries[2].Title)
	})

	t.Run("room filter narrows the view", func(t *testing.T) {
		entries, err := svc.Calendar(ctx, 2026, 9, otherRoomID)
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Equal(t, "other room", entries[0].Title)
	})

	t.Run("first of next month is excluded", func(t *testing.T) {
		entries, err := svc.Calendar(ctx, 2026, 10, "")
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Equal(t, "next month", entries[0].Title)
	})

	t.Run("invalid month fails", func(t *testing.T) {
		_, err := svc.Calendar(ctx, 2026, 0, "")
		assert.ErrorIs(t, err, ErrInvalidMonth)

		_, err = svc.Calendar(ctx, 2026, 13, "")
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})
}
