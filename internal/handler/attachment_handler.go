package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-board-api/internal/response"
	"legal-board-api/internal/service"
)

// AttachmentHandler exposes the files attached to hearings and activities
type AttachmentHandler struct {
	svc    service.AttachmentService
	logger *zap.Logger
}

func NewAttachmentHandler(svc service.AttachmentService, logger *zap.Logger) *AttachmentHandler {
	return &AttachmentHandler{svc: svc, logger: logger}
}

// ItemFiles returns a handler listing the attachments of an item of board
// @Summary      Archivos adjuntos de un elemento
// @Tags         archivos
// @Produce      json
// @Param        processId path string true "Process ID (UUID)"
// @Param        board     path string true "Tablero" Enums(audiencias, actividades)
// @Param        id        path string true "Item ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]service.AttachedFile}
// @Failure      404 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /procesos/{processId}/{board}/{id}/archivos [get]
func (h *AttachmentHandler) ItemFiles(board string) gin.HandlerFunc {
	return func(c *gin.Context) {
		processID, ok := parseUUIDParam(c, "processId")
		if !ok {
			return
		}
		itemID, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}

		files, err := h.svc.ItemFiles(c.Request.Context(), processID, board, itemID)
		if err != nil {
			handleServiceError(c, h.logger, err)
			return
		}
		response.SendSuccess(c, http.StatusOK, files)
	}
}

// DownloadResponse carries a short-lived download link
type DownloadResponse struct {
	URL string `json:"download_url"`
}

// Download godoc
// @Summary      Enlace de descarga
// @Tags         archivos
// @Produce      json
// @Param        processId path  string true "Process ID (UUID)"
// @Param        id        query string true "Ruta del archivo en el bucket"
// @Success      200 {object} response.SuccessResponse{data=DownloadResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /procesos/{processId}/archivos/descarga [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	processID, ok := parseUUIDParam(c, "processId")
	if !ok {
		return
	}

	url, err := h.svc.DownloadURL(c.Request.Context(), processID, c.Query("id"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, DownloadResponse{URL: url})
}
