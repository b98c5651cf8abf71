package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hellolocal/shopads-service/internal/domain"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), Envelope{Success: false, Message: err.Error()})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

func statusFromError(err error) int {
	var validation *domain.ValidationError
	var notFound *domain.NotFoundError
	var authz *domain.AuthorizationError
	var conflict *domain.StateConflictError
	var capacity *domain.CapacityExceededError
	var verification *domain.PaymentVerificationError

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &authz):
		return http.StatusForbidden
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &capacity):
		return http.StatusConflict
	case errors.As(err, &verification):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
