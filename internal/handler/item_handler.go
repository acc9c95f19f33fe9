package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/kanban"
	"legal-board-api/internal/response"
	"legal-board-api/internal/service"
)

// pageParams maps column query parameters to their estado
var pageParams = map[string]domain.Status{
	"page_pendiente":  domain.StatusPending,
	"page_en_proceso": domain.StatusInProgress,
	"page_finalizado": domain.StatusDone,
}

// ItemHandler serves the routes of one board. P is the pointer type of T.
type ItemHandler[T any, P interface {
	*T
	domain.BoardItem
}] struct {
	svc    service.ItemService[P]
	logger *zap.Logger
}

// NewItemHandler creates a handler for svc
func NewItemHandler[T any, P interface {
	*T
	domain.BoardItem
}](svc service.ItemService[P], logger *zap.Logger) *ItemHandler[T, P] {
	return &ItemHandler[T, P]{svc: svc, logger: logger}
}

// Register mounts the board routes. process is the /procesos/:processId group.
func (h *ItemHandler[T, P]) Register(process, root *gin.RouterGroup) {
	board := h.svc.Board()
	process.GET("/"+board, h.View)
	process.POST("/"+board, h.Create)

	items := root.Group("/" + board)
	items.GET("/:id", h.Get)
	items.PUT("/:id", h.Update)
	items.PATCH("/:id/estado", h.Move)
	items.DELETE("/:id", h.Delete)
}

// View godoc
// @Summary      Tablero de un proceso
// @Description  Filtra, agrupa por estado y pagina los elementos de un tablero
// @Tags         tableros
// @Produce      json
// @Param        processId        path   string true  "Process ID (UUID)"
// @Param        board            path   string true  "Tablero" Enums(audiencias, reuniones, terminos, actividades)
// @Param        q                query  string false "Texto a buscar"
// @Param        responsable_id   query  string false "Responsable (UUID)"
// @Param        fecha            query  string false "Fecha AAAA-MM-DD"
// @Param        page_pendiente   query  int    false "Página de Pendiente"
// @Param        page_en_proceso  query  int    false "Página de En Proceso"
// @Param        page_finalizado  query  int    false "Página de Finalizado"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /procesos/{processId}/{board} [get]
func (h *ItemHandler[T, P]) View(c *gin.Context) {
	processID, ok := parseUUIDParam(c, "processId")
	if !ok {
		return
	}

	q := service.BoardQuery{
		Criteria: kanban.Criteria{
			Search: c.Query("q"),
			Date:   c.Query("fecha"),
		},
		Pages: make(map[domain.Status]int),
	}
	if raw := c.Query("responsable_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "responsable_id", "Responsable inválido")
			return
		}
		q.Criteria.ResponsableID = &id
	}
	for param, status := range pageParams {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		page, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, param, "La página debe ser un número")
			return
		}
		q.Pages[status] = page
	}

	view, err := h.svc.View(c.Request.Context(), processID, q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, view)
}

// Create godoc
// @Summary      Crear elemento
// @Tags         tableros
// @Accept       json
// @Produce      json
// @Param        processId path string true "Process ID (UUID)"
// @Param        board     path string true "Tablero" Enums(audiencias, reuniones, terminos, actividades)
// @Success      201 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /procesos/{processId}/{board} [post]
func (h *ItemHandler[T, P]) Create(c *gin.Context) {
	processID, ok := parseUUIDParam(c, "processId")
	if !ok {
		return
	}

	item := P(new(T))
	if err := c.ShouldBindJSON(item); err != nil {
		handleServiceError(c, h.logger, response.NewValidationError("Invalid request body", err.Error()))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), processID, item)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, created)
}

// Get godoc
// @Summary      Obtener elemento
// @Tags         tableros
// @Produce      json
// @Param        board path string true "Tablero" Enums(audiencias, reuniones, terminos, actividades)
// @Param        id    path string true "Item ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /{board}/{id} [get]
func (h *ItemHandler[T, P]) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, item)
}

// Update godoc
// @Summary      Actualizar elemento
// @Description  Reemplaza todos los campos editables del elemento
// @Tags         tableros
// @Accept       json
// @Produce      json
// @Param        board path string true "Tablero" Enums(audiencias, reuniones, terminos, actividades)
// @Param        id    path string true "Item ID (UUID)"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /{board}/{id} [put]
func (h *ItemHandler[T, P]) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	item := P(new(T))
	if err := c.ShouldBindJSON(item); err != nil {
		handleServiceError(c, h.logger, response.NewValidationError("Invalid request body", err.Error()))
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, item)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, updated)
}

// Move godoc
// @Summary      Mover elemento entre columnas
// @Description  Cambia el estado de un elemento arrastrado. Responde noop, skipped o moved.
// @Tags         tableros
// @Accept       json
// @Produce      json
// @Param        board   path string               true "Tablero" Enums(audiencias, reuniones, terminos, actividades)
// @Param        id      path string               true "Item ID (UUID)"
// @Param        request body service.MoveRequest  true "Origen y destino"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /{board}/{id}/estado [patch]
func (h *ItemHandler[T, P]) Move(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleServiceError(c, h.logger, response.NewValidationError("Invalid request body", err.Error()))
		return
	}

	res, err := h.svc.Move(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, res)
}

// Delete godoc
// @Summary      Eliminar elemento
// @Tags         tableros
// @Param        board path string true "Tablero" Enums(audiencias, reuniones, terminos, actividades)
// @Param        id    path string true "Item ID (UUID)"
// @Success      204
// @Failure      404 {object} response.ErrorResponse
// @Router       /{board}/{id} [delete]
func (h *ItemHandler[T, P]) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendNoContent(c)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, name, "Identificador inválido")
		return uuid.Nil, false
	}
	return id, true
}
