package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/response"
	"legal-board-api/internal/service"
)

func TestDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	processID := uuid.New()
	svc := &mockDashboardService{
		dashboardFunc: func(ctx context.Context, id uuid.UUID) (*service.Dashboard, error) {
			return &service.Dashboard{
				ProcessID:  id,
				Boards:     map[string]*service.BoardSummary{service.BoardHearings: {Board: service.BoardHearings, Total: 3}},
				ComputedAt: time.Now(),
			}, nil
		},
		summaryFunc: func(ctx context.Context, id uuid.UUID, board string) (*service.BoardSummary, error) {
			if !service.IsBoard(board) {
				return nil, domain.NewValidationError("board", "Tablero desconocido")
			}
			return &service.BoardSummary{Board: board}, nil
		},
	}
	h := NewDashboardHandler(svc, zap.NewNop())
	router := gin.New()
	router.GET("/procesos/:processId/metricas", h.GetDashboard)
	router.GET("/procesos/:processId/metricas/:board", h.GetSummary)

	w := doJSON(router, http.MethodGet, "/procesos/"+processID.String()+"/metricas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data service.Dashboard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Boards[service.BoardHearings].Total)

	w = doJSON(router, http.MethodGet, "/procesos/"+processID.String()+"/metricas/terminos", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/procesos/"+processID.String()+"/metricas/tareas", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResponsibleHandler_ListActive(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &mockResponsibleService{
		listActiveFunc: func(ctx context.Context) ([]domain.Responsible, error) {
			return []domain.Responsible{{FirstName: "Ana", State: "Activo"}}, nil
		},
	}
	router := gin.New()
	router.GET("/responsables", NewResponsibleHandler(svc, zap.NewNop()).ListActive)

	w := doJSON(router, http.MethodGet, "/responsables", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nombre":"Ana"`)
}

func TestResponsibleHandler_ReadFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &mockResponsibleService{
		listActiveFunc: func(ctx context.Context) ([]domain.Responsible, error) {
			return nil, domain.NewReadError("list", "responsables", errors.New("down"))
		},
	}
	router := gin.New()
	router.GET("/responsables", NewResponsibleHandler(svc, zap.NewNop()).ListActive)

	w := doJSON(router, http.MethodGet, "/responsables", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Error al cargar los datos", decodeError(t, w).Message)
}

func TestAttachmentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	processID := uuid.New()
	itemID := uuid.New()
	svc := &mockAttachmentService{
		itemFilesFunc: func(ctx context.Context, pid uuid.UUID, board string, id uuid.UUID) ([]service.AttachedFile, error) {
			assert.Equal(t, service.BoardActivities, board)
			assert.Equal(t, itemID, id)
			return []service.AttachedFile{{ID: "proc/acta.pdf", Name: "acta.pdf", Size: 10}}, nil
		},
		downloadURLFunc: func(ctx context.Context, pid uuid.UUID, fileID string) (string, error) {
			if fileID == "" {
				return "", domain.NewValidationError("id", "Archivo requerido")
			}
			return "https://files.test/" + fileID, nil
		},
	}
	h := NewAttachmentHandler(svc, zap.NewNop())
	router := gin.New()
	router.GET("/procesos/:processId/actividades/:id/archivos", h.ItemFiles(service.BoardActivities))
	router.GET("/procesos/:processId/archivos/descarga", h.Download)

	w := doJSON(router, http.MethodGet, "/procesos/"+processID.String()+"/actividades/"+itemID.String()+"/archivos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"acta.pdf"`)

	w = doJSON(router, http.MethodGet, "/procesos/"+processID.String()+"/archivos/descarga?id=proc/acta.pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"download_url":"https://files.test/proc/acta.pdf"`)

	w = doJSON(router, http.MethodGet, "/procesos/"+processID.String()+"/archivos/descarga", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hearingID := uuid.New()
	svc := &mockCommentService{
		listFunc: func(ctx context.Context, id uuid.UUID) ([]domain.HearingComment, error) {
			return []domain.HearingComment{}, nil
		},
		createFunc: func(ctx context.Context, id uuid.UUID, req service.CreateCommentRequest) (*domain.HearingComment, error) {
			if id != hearingID {
				return nil, &domain.NotFoundError{Table: "audiencias", ID: id}
			}
			return &domain.HearingComment{HearingID: id, Text: req.Text}, nil
		},
	}
	h := NewCommentHandler(svc, zap.NewNop())
	router := gin.New()
	router.GET("/audiencias/:id/comentarios", h.List)
	router.POST("/audiencias/:id/comentarios", h.Create)

	w := doJSON(router, http.MethodGet, "/audiencias/"+hearingID.String()+"/comentarios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = doJSON(router, http.MethodPost, "/audiencias/"+hearingID.String()+"/comentarios",
		map[string]string{"comentario_texto": "Se aplazó"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"comentario_texto":"Se aplazó"`)

	w = doJSON(router, http.MethodPost, "/audiencias/"+uuid.New().String()+"/comentarios",
		map[string]string{"comentario_texto": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/audiencias/"+hearingID.String()+"/comentarios", bytes.NewBufferString("texto"))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrCodeValidation, decodeError(t, w).Error.Code)
}
