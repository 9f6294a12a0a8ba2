package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
)

// ErrorEnvelope is the uniform body shape for failed responses.
type ErrorEnvelope struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
			log.Printf("request failed: %v", appErr.Err)
		}
		c.JSON(appErr.Code, ErrorEnvelope{
			StatusCode: appErr.Code,
			Message:    appErr.Message,
			Success:    false,
			Errors:     []string{appErr.Message},
		})
		return
	}

	log.Printf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
		Success:    false,
		Errors:     []string{"internal server error"},
	})
}
