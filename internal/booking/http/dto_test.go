package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/room-booking-backend/internal/booking"
)

func TestBookingResponseUserTag(t *testing.T) {
	created := &booking.Booking{
		ID:        "b-1",
		UserID:    "u-1",
		RoomID:    "r-1",
		RoomName:  "Lab 1",
		StartTime: time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC),
		Purpose:   "study group",
		Status:    booking.StatusPending,
	}

	t.Run("create path omits the unjoined user name", func(t *testing.T) {
		raw, err := json.Marshal(NewBookingResponse(created))
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		userTag, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "u-1", userTag["id"])
		assert.NotContains(t, userTag, "name")
	})

	t.Run("read path carries the joined user name", func(t *testing.T) {
		read := *created
		read.UserName = "Ada Lovelace"

		raw, err := json.Marshal(NewBookingResponse(&read))
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		userTag, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada Lovelace", userTag["name"])
	})
}
