package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-board-api/internal/response"
	"legal-board-api/internal/service"
)

// DashboardHandler serves the metrics views of a process
type DashboardHandler struct {
	svc    service.DashboardService
	logger *zap.Logger
}

func NewDashboardHandler(svc service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, logger: logger}
}

// GetDashboard godoc
// @Summary      Métricas de todos los tableros
// @Tags         metricas
// @Produce      json
// @Param        processId path string true "Process ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=service.Dashboard}
// @Failure      502 {object} response.ErrorResponse
// @Router       /procesos/{processId}/metricas [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	processID, ok := parseUUIDParam(c, "processId")
	if !ok {
		return
	}

	d, err := h.svc.Dashboard(c.Request.Context(), processID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, d)
}

// GetSummary godoc
// @Summary      Métricas de un tablero
// @Tags         metricas
// @Produce      json
// @Param        processId path string true "Process ID (UUID)"
// @Param        board     path string true "Tablero" Enums(audiencias, reuniones, terminos, actividades)
// @Success      200 {object} response.SuccessResponse{data=service.BoardSummary}
// @Failure      400 {object} response.ErrorResponse
// @Router       /procesos/{processId}/metricas/{board} [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	processID, ok := parseUUIDParam(c, "processId")
	if !ok {
		return
	}

	s, err := h.svc.Summary(c.Request.Context(), processID, c.Param("board"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, s)
}
