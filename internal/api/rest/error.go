package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/fleetgrid/backoffice/internal/api/shared/errors"
	"github.com/fleetgrid/backoffice/internal/domain"
	"github.com/fleetgrid/backoffice/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details ...string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(details...))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps a domain error to the appropriate HTTP response.
// Sentinel not-found errors map to 404, accumulated validation violations to
// 422, integrity violations to 409 with an error-level log, and everything
// else to 500.
func respondDomainError(c *gin.Context, err error, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrBackupNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNoActiveOwner):
		respondNotFound(c, err.Error())

	case domain.IsValidation(err):
		var validationErr *domain.ValidationError
		errors.As(err, &validationErr)
		respondValidationError(c, validationErr.Violations...)

	case domain.IsIntegrity(err):
		logger.ErrorCtx(c.Request.Context(), err, fields...)
		c.JSON(http.StatusConflict, apierrors.NewIntegrityError("Integrity violation", err.Error()))

	default:
		respondInternalError(c, err, "Internal server error", fields...)
	}
}
