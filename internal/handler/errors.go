package handler

import (
	"errors"
	"net/http"

	"arena-platform/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError is the single place errors become HTTP responses. Raw store
// or driver errors never reach the client.
func respondError(c *gin.Context, err error) {
	var status int
	var resp models.ErrorResponse

	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		resp = models.ErrorResponse{Code: models.ErrCodeWrongCredentials, Message: "Invalid email or password"}
	case errors.Is(err, models.ErrEmailTaken):
		status = http.StatusConflict
		resp = models.ErrorResponse{Code: models.ErrCodeDuplicateEmail, Message: "Email already registered"}
	case errors.Is(err, models.ErrAlreadyRegistered):
		status = http.StatusConflict
		resp = models.ErrorResponse{Code: models.ErrCodeDuplicateEntry, Message: "Already registered for this event"}
	case errors.Is(err, models.ErrTokenExpired):
		status = http.StatusUnauthorized
		resp = models.ErrorResponse{Code: models.ErrCodeTokenExpired, Message: "Token has expired"}
	case errors.Is(err, models.ErrTokenInvalid), errors.Is(err, models.ErrUnauthorized):
		status = http.StatusUnauthorized
		resp = models.ErrorResponse{Code: models.ErrCodeUnauthorized, Message: "Not authorized"}
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
		resp = models.ErrorResponse{Code: models.ErrCodeForbidden, Message: "Admin privileges required"}
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrMatchNotFound):
		status = http.StatusNotFound
		resp = models.ErrorResponse{Code: models.ErrCodeNotFound, Message: err.Error()}
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
		resp = models.ErrorResponse{Code: models.ErrCodeValidation, Message: "Invalid input data"}
	default:
		zap.L().Error("unhandled internal error", zap.Error(err))
		status = http.StatusInternalServerError
		resp = models.ErrorResponse{Code: models.ErrCodeInternal, Message: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(status, resp)
}

// respondBindError maps gin binding failures to the validation error shape.
func respondBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
		Code:    models.ErrCodeValidation,
		Message: "Invalid request data: " + err.Error(),
	})
}
