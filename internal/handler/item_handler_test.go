package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/kanban"
	"legal-board-api/internal/response"
	"legal-board-api/internal/service"
)

func setupItemRouter(svc *mockItemService[*domain.Hearing]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc.board = "audiencias"
	h := NewItemHandler[domain.Hearing](svc, zap.NewNop())

	router := gin.New()
	h.Register(router.Group("/procesos/:processId"), router.Group(""))
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestItemHandler_View_ParsesQuery(t *testing.T) {
	processID := uuid.New()
	responsibleID := uuid.New()
	var got service.BoardQuery
	svc := &mockItemService[*domain.Hearing]{
		viewFunc: func(ctx context.Context, id uuid.UUID, q service.BoardQuery) (*kanban.View[*domain.Hearing], error) {
			assert.Equal(t, processID, id)
			got = q
			return &kanban.View[*domain.Hearing]{}, nil
		},
	}
	router := setupItemRouter(svc)

	w := doJSON(router, http.MethodGet,
		"/procesos/"+processID.String()+"/audiencias?q=juzgado&fecha=2025-03-01&responsable_id="+responsibleID.String()+"&page_en_proceso=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "juzgado", got.Criteria.Search)
	assert.Equal(t, "2025-03-01", got.Criteria.Date)
	require.NotNil(t, got.Criteria.ResponsableID)
	assert.Equal(t, responsibleID, *got.Criteria.ResponsableID)
	assert.Equal(t, map[domain.Status]int{domain.StatusInProgress: 2}, got.Pages)
}

func TestItemHandler_View_BadParams(t *testing.T) {
	router := setupItemRouter(&mockItemService[*domain.Hearing]{})
	processID := uuid.New().String()

	tests := []struct {
		name  string
		path  string
		field string
	}{
		{"bad process", "/procesos/abc/audiencias", "processId"},
		{"bad responsable", "/procesos/" + processID + "/audiencias?responsable_id=nope", "responsable_id"},
		{"bad page", "/procesos/" + processID + "/audiencias?page_pendiente=x", "page_pendiente"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, response.ErrCodeValidation, resp.Error.Code)
			assert.Contains(t, resp.Error.Fields, tt.field)
		})
	}
}

func TestItemHandler_Create(t *testing.T) {
	processID := uuid.New()
	svc := &mockItemService[*domain.Hearing]{
		createFunc: func(ctx context.Context, id uuid.UUID, item *domain.Hearing) (*domain.Hearing, error) {
			assert.Equal(t, processID, id)
			item.ID = uuid.New()
			item.ProcessID = id
			return item, nil
		},
	}
	router := setupItemRouter(svc)

	w := doJSON(router, http.MethodPost, "/procesos/"+processID.String()+"/audiencias",
		map[string]string{"descripcion": "Audiencia inicial", "estado": "Pendiente"})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Success bool           `json:"success"`
		Data    domain.Hearing `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Audiencia inicial", resp.Data.Description)
	assert.Equal(t, processID, resp.Data.ProcessID)
}

func TestItemHandler_Create_ValidationError(t *testing.T) {
	svc := &mockItemService[*domain.Hearing]{
		createFunc: func(ctx context.Context, id uuid.UUID, item *domain.Hearing) (*domain.Hearing, error) {
			return nil, domain.NewValidationError("descripcion", "La descripción es obligatoria")
		},
	}
	router := setupItemRouter(svc)

	w := doJSON(router, http.MethodPost, "/procesos/"+uuid.New().String()+"/audiencias", map[string]string{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "La descripción es obligatoria", resp.Error.Fields["descripcion"])
	assert.Equal(t, response.Notice(response.ErrCodeValidation), resp.Message)
}

func TestItemHandler_Create_MalformedBody(t *testing.T) {
	router := setupItemRouter(&mockItemService[*domain.Hearing]{})
	req := httptest.NewRequest(http.MethodPost, "/procesos/"+uuid.New().String()+"/audiencias", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, response.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "Invalid request body", resp.Error.Message)
}

func TestItemHandler_Update_MalformedBody(t *testing.T) {
	svc := &mockItemService[*domain.Hearing]{
		updateFunc: func(ctx context.Context, id uuid.UUID, item *domain.Hearing) (*domain.Hearing, error) {
			t.Fatal("service must not be called for an unreadable body")
			return nil, nil
		},
	}
	router := setupItemRouter(svc)
	req := httptest.NewRequest(http.MethodPut, "/audiencias/"+uuid.New().String(), bytes.NewBufferString(`{"descripcion":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrCodeValidation, decodeError(t, w).Error.Code)
}

func TestItemHandler_Get_NotFound(t *testing.T) {
	router := setupItemRouter(&mockItemService[*domain.Hearing]{})

	w := doJSON(router, http.MethodGet, "/audiencias/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.ErrCodeNotFound, decodeError(t, w).Error.Code)
}

func TestItemHandler_Update(t *testing.T) {
	id := uuid.New()
	svc := &mockItemService[*domain.Hearing]{
		updateFunc: func(ctx context.Context, got uuid.UUID, item *domain.Hearing) (*domain.Hearing, error) {
			assert.Equal(t, id, got)
			assert.Equal(t, "Reprogramada", item.Description)
			return item, nil
		},
	}
	router := setupItemRouter(svc)

	w := doJSON(router, http.MethodPut, "/audiencias/"+id.String(), map[string]string{"descripcion": "Reprogramada"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestItemHandler_Move(t *testing.T) {
	id := uuid.New()
	svc := &mockItemService[*domain.Hearing]{
		moveFunc: func(ctx context.Context, got uuid.UUID, req service.MoveRequest) (*service.MoveResponse[*domain.Hearing], error) {
			assert.Equal(t, id, got)
			assert.Equal(t, domain.StatusPending, req.Source)
			assert.Equal(t, domain.StatusDone, req.Destination)
			return &service.MoveResponse[*domain.Hearing]{Outcome: kanban.OutcomeMoved}, nil
		},
	}
	router := setupItemRouter(svc)

	w := doJSON(router, http.MethodPatch, "/audiencias/"+id.String()+"/estado",
		service.MoveRequest{Source: domain.StatusPending, Destination: domain.StatusDone})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outcome":"moved"`)
}

func TestItemHandler_Move_MissingDestination(t *testing.T) {
	router := setupItemRouter(&mockItemService[*domain.Hearing]{})

	w := doJSON(router, http.MethodPatch, "/audiencias/"+uuid.New().String()+"/estado",
		map[string]string{"source": "Pendiente"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItemHandler_Move_RolledBack(t *testing.T) {
	svc := &mockItemService[*domain.Hearing]{
		moveFunc: func(ctx context.Context, id uuid.UUID, req service.MoveRequest) (*service.MoveResponse[*domain.Hearing], error) {
			return nil, domain.NewWriteError("update", "audiencias", errors.New("timeout"))
		},
	}
	router := setupItemRouter(svc)

	w := doJSON(router, http.MethodPatch, "/audiencias/"+uuid.New().String()+"/estado",
		service.MoveRequest{Source: domain.StatusPending, Destination: domain.StatusDone})

	require.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, response.ErrCodeRemoteWrite, resp.Error.Code)
	assert.Equal(t, "Error al guardar los cambios", resp.Message)
}

func TestItemHandler_Delete(t *testing.T) {
	deleted := false
	svc := &mockItemService[*domain.Hearing]{
		deleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	router := setupItemRouter(svc)

	w := doJSON(router, http.MethodDelete, "/audiencias/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, deleted)
}
