package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError converts pipeline sentinel errors to their HTTP
// representation. Nothing below this layer propagates an unhandled
// fault; the default branch is a safety net.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyDestination), errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAIServiceUnavailable):
		RespondError(c, http.StatusBadGateway, "An error occurred while communicating with the AI service. Please try again.")
	case errors.Is(err, ErrMalformedAIResponse):
		RespondError(c, http.StatusUnprocessableEntity, "Failed to parse the AI response.")
	case errors.Is(err, ErrNoteNotFound):
		RespondError(c, http.StatusNotFound, "Note not found")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
