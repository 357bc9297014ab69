package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/apperrors"
)

// respondServiceError maps a service error onto a status code. Unexpected errors are
// logged in full but only failMsg reaches the client.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, failMsg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest:
		logger.Warn("Bad request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
