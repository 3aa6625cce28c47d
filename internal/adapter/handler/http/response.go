package http

import (
	"errors"
	"net/http"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

// statusFromError maps the domain error taxonomy onto HTTP codes:
// NotFound -> 404, validation and unknown-type -> 400, the rest -> 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUnknownServiceType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
