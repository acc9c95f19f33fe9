package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-board-api/internal/response"
	"legal-board-api/internal/service"
)

// CommentHandler serves hearing comments
type CommentHandler struct {
	svc    service.CommentService
	logger *zap.Logger
}

func NewCommentHandler(svc service.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, logger: logger}
}

// List godoc
// @Summary      Comentarios de una audiencia
// @Tags         comentarios
// @Produce      json
// @Param        id path string true "Hearing ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]domain.HearingComment}
// @Failure      404 {object} response.ErrorResponse
// @Router       /audiencias/{id}/comentarios [get]
func (h *CommentHandler) List(c *gin.Context) {
	hearingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.svc.List(c.Request.Context(), hearingID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, comments)
}

// Create godoc
// @Summary      Comentar una audiencia
// @Tags         comentarios
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Hearing ID (UUID)"
// @Param        request body service.CreateCommentRequest   true "Comentario"
// @Success      201 {object} response.SuccessResponse{data=domain.HearingComment}
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /audiencias/{id}/comentarios [post]
func (h *CommentHandler) Create(c *gin.Context) {
	hearingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleServiceError(c, h.logger, response.NewValidationError("Invalid request body", err.Error()))
		return
	}

	comment, err := h.svc.Create(c.Request.Context(), hearingID, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, comment)
}
