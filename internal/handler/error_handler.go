package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/response"
)

// handleServiceError maps service layer errors to HTTP responses
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		response.SendFieldErrors(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid input", validationErr.Fields)
		return
	}

	var appErr *response.AppError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrMalformedData):
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeMalformedData, err.Error())
	case errors.Is(err, domain.ErrRemoteWrite):
		logger.Error("Remote write failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.SendError(c, http.StatusBadGateway, response.ErrCodeRemoteWrite, "Failed to save changes")
	case errors.Is(err, domain.ErrRemoteRead):
		logger.Error("Remote read failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.SendError(c, http.StatusBadGateway, response.ErrCodeRemoteRead, "Failed to load data")
	case errors.Is(err, context.Canceled):
		// client went away; nobody reads the body
		c.Status(499)
	case errors.As(err, &appErr):
		response.SendError(c, mapErrorCodeToHTTPStatus(appErr.Code), appErr.Code, appErr.Message)
	default:
		logger.Error("Unhandled service error", zap.String("path", c.FullPath()), zap.Error(err))
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
	}
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	case response.ErrCodeRemoteRead, response.ErrCodeRemoteWrite:
		return http.StatusBadGateway
	case response.ErrCodeMalformedData:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c *gin.Context, field, message string) {
	response.SendFieldErrors(c, http.StatusBadRequest, response.ErrCodeValidation, message, map[string]string{field: message})
}
