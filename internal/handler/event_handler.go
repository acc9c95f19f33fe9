package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"legal-board-api/internal/middleware"
	"legal-board-api/internal/realtime"
	"legal-board-api/internal/response"
)

// EventHandler upgrades board event subscriptions to WebSocket
type EventHandler struct {
	hub       *realtime.Hub
	jwtSecret string
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

// NewEventHandler accepts upgrades carrying a valid token from allowedOrigins,
// using the CORS rules
func NewEventHandler(hub *realtime.Hub, jwtSecret string, allowedOrigins []string, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || middleware.OriginAllowed(origin, allowedOrigins)
			},
		},
		logger: logger,
	}
}

// Subscribe godoc
// @Summary      Eventos del tablero
// @Description  WebSocket con los cambios (created, updated, moved, deleted) de un proceso
// @Tags         eventos
// @Param        processId path  string true "Process ID (UUID)"
// @Param        token     query string true "JWT Access Token"
// @Success      101
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Router       /procesos/{processId}/eventos [get]
func (h *EventHandler) Subscribe(c *gin.Context) {
	processID, ok := parseUUIDParam(c, "processId")
	if !ok {
		return
	}

	// Browsers cannot set headers on the handshake
	token := c.Query("token")
	if token == "" {
		handleServiceError(c, h.logger, response.NewAppError(response.ErrCodeUnauthorized, "Token required", ""))
		return
	}
	userID, err := middleware.ParseToken(h.jwtSecret, token)
	if err != nil {
		h.logger.Warn("Rejected event subscription",
			zap.String("process_id", processID.String()),
			zap.Error(err),
		)
		handleServiceError(c, h.logger, response.NewAppError(response.ErrCodeUnauthorized, "Invalid token", err.Error()))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	h.logger.Debug("Event subscription accepted",
		zap.String("process_id", processID.String()),
		zap.String("user_id", userID.String()),
	)
	h.hub.Serve(conn, processID)
}
