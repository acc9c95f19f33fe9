package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-board-api/internal/response"
	"legal-board-api/internal/service"
)

type ResponsibleHandler struct {
	svc    service.ResponsibleService
	logger *zap.Logger
}

func NewResponsibleHandler(svc service.ResponsibleService, logger *zap.Logger) *ResponsibleHandler {
	return &ResponsibleHandler{svc: svc, logger: logger}
}

// ListActive godoc
// @Summary      Responsables activos
// @Description  Personas asignables, ordenadas por nombre
// @Tags         responsables
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]domain.Responsible}
// @Failure      502 {object} response.ErrorResponse
// @Router       /responsables [get]
func (h *ResponsibleHandler) ListActive(c *gin.Context) {
	list, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, list)
}
