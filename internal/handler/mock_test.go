package handler

import (
	"context"

	"github.com/google/uuid"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/kanban"
	"legal-board-api/internal/service"
)

// mockItemService implements service.ItemService for handler tests
type mockItemService[P domain.BoardItem] struct {
	board      string
	viewFunc   func(ctx context.Context, processID uuid.UUID, q service.BoardQuery) (*kanban.View[P], error)
	getFunc    func(ctx context.Context, id uuid.UUID) (P, error)
	createFunc func(ctx context.Context, processID uuid.UUID, item P) (P, error)
	updateFunc func(ctx context.Context, id uuid.UUID, item P) (P, error)
	moveFunc   func(ctx context.Context, id uuid.UUID, req service.MoveRequest) (*service.MoveResponse[P], error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockItemService[P]) Board() string { return m.board }

func (m *mockItemService[P]) View(ctx context.Context, processID uuid.UUID, q service.BoardQuery) (*kanban.View[P], error) {
	if m.viewFunc != nil {
		return m.viewFunc(ctx, processID, q)
	}
	return &kanban.View[P]{}, nil
}

func (m *mockItemService[P]) List(ctx context.Context, processID uuid.UUID) ([]P, error) {
	return nil, nil
}

func (m *mockItemService[P]) Get(ctx context.Context, id uuid.UUID) (P, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	var zero P
	return zero, &domain.NotFoundError{Table: m.board, ID: id}
}

func (m *mockItemService[P]) Create(ctx context.Context, processID uuid.UUID, item P) (P, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, processID, item)
	}
	return item, nil
}

func (m *mockItemService[P]) Update(ctx context.Context, id uuid.UUID, item P) (P, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, item)
	}
	return item, nil
}

func (m *mockItemService[P]) Move(ctx context.Context, id uuid.UUID, req service.MoveRequest) (*service.MoveResponse[P], error) {
	if m.moveFunc != nil {
		return m.moveFunc(ctx, id, req)
	}
	return &service.MoveResponse[P]{Outcome: kanban.OutcomeNoop}, nil
}

func (m *mockItemService[P]) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockDashboardService struct {
	dashboardFunc func(ctx context.Context, processID uuid.UUID) (*service.Dashboard, error)
	summaryFunc   func(ctx context.Context, processID uuid.UUID, board string) (*service.BoardSummary, error)
}

func (m *mockDashboardService) Dashboard(ctx context.Context, processID uuid.UUID) (*service.Dashboard, error) {
	return m.dashboardFunc(ctx, processID)
}

func (m *mockDashboardService) Summary(ctx context.Context, processID uuid.UUID, board string) (*service.BoardSummary, error) {
	return m.summaryFunc(ctx, processID, board)
}

type mockAttachmentService struct {
	itemFilesFunc   func(ctx context.Context, processID uuid.UUID, board string, itemID uuid.UUID) ([]service.AttachedFile, error)
	downloadURLFunc func(ctx context.Context, processID uuid.UUID, fileID string) (string, error)
}

func (m *mockAttachmentService) ItemFiles(ctx context.Context, processID uuid.UUID, board string, itemID uuid.UUID) ([]service.AttachedFile, error) {
	return m.itemFilesFunc(ctx, processID, board, itemID)
}

func (m *mockAttachmentService) DownloadURL(ctx context.Context, processID uuid.UUID, fileID string) (string, error) {
	return m.downloadURLFunc(ctx, processID, fileID)
}

type mockCommentService struct {
	listFunc   func(ctx context.Context, hearingID uuid.UUID) ([]domain.HearingComment, error)
	createFunc func(ctx context.Context, hearingID uuid.UUID, req service.CreateCommentRequest) (*domain.HearingComment, error)
}

func (m *mockCommentService) List(ctx context.Context, hearingID uuid.UUID) ([]domain.HearingComment, error) {
	return m.listFunc(ctx, hearingID)
}

func (m *mockCommentService) Create(ctx context.Context, hearingID uuid.UUID, req service.CreateCommentRequest) (*domain.HearingComment, error) {
	return m.createFunc(ctx, hearingID, req)
}

type mockResponsibleService struct {
	listActiveFunc func(ctx context.Context) ([]domain.Responsible, error)
}

func (m *mockResponsibleService) ListActive(ctx context.Context) ([]domain.Responsible, error) {
	return m.listActiveFunc(ctx)
}
