package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestJSONEnvelope(t *testing.T) {
	c, w := testContext()

	JSON(c, http.StatusCreated, "booking created", map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var body Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, body.StatusCode)
	assert.Equal(t, "booking created", body.Message)
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
}

func TestErrorMapsAppError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperror.Validation("purpose is required"), http.StatusBadRequest},
		{"not found", apperror.NotFound("booking not found"), http.StatusNotFound},
		{"conflict", apperror.Conflict("time slot is already booked"), http.StatusConflict},
		{"forbidden", apperror.Forbidden("not your booking"), http.StatusForbidden},
		{"unauthorized", apperror.Unauthorized("bad credentials"), http.StatusUnauthorized},
		{"unavailable", apperror.Unavailable(errors.New("pool closed")), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext()

			Error(c, tt.err)

			assert.Equal(t, tt.code, w.Code)

			var body ErrorEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.StatusCode)
			assert.False(t, body.Success)
			require.Len(t, body.Errors, 1)
			assert.Equal(t, body.Message, body.Errors[0])
		})
	}
}

func TestErrorWrappedAppErrorStillMaps(t *testing.T) {
	c, w := testContext()

	Error(c, apperror.Wrap(errors.New("no rows"), http.StatusNotFound, "room not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "room not found", body.Message)
}

func TestErrorDefaultsToInternal(t *testing.T) {
	c, w := testContext()

	Error(c, errors.New("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.False(t, body.Success)
}
