package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finnews-portal/internal/domain"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// respondDomainError maps a domain error to an HTTP status and writes a
// JSON error body. Internal causes stay out of the response.
func respondDomainError(c *gin.Context, err error) {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case domain.IsValidationError(err):
		status = http.StatusBadRequest
	case domain.IsNotFoundError(err):
		status = http.StatusNotFound
	case domain.IsConflictError(err):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrExternalService):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrMissingConfiguration):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, ErrorResponse{Error: domainErr.Message})
}
