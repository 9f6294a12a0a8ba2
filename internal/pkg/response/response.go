package response

import "github.com/gin-gonic/gin"

// Envelope is the uniform body shape for successful responses.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
}

// JSON sends a success envelope with the given status code, message and payload.
func JSON(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{
		StatusCode: code,
		Message:    message,
		Success:    code < 400,
		Data:       data,
	})
}
