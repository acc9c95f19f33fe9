package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"legal-board-api/internal/domain"
)

// MockItemRepository is an in-memory implementation of ItemRepository.
// Func fields override the default behaviour.
type MockItemRepository[P domain.BoardItem] struct {
	mu    sync.Mutex
	Items []P

	ListFunc          func(ctx context.Context, processID uuid.UUID) ([]P, error)
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (P, error)
	InsertFunc        func(ctx context.Context, item P) error
	UpdateFunc        func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	UpdateStatusFunc  func(ctx context.Context, id uuid.UUID, status domain.Status) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	CountByStatusFunc func(ctx context.Context) (map[domain.Status]int64, error)

	StatusWrites []domain.Status
}

func (m *MockItemRepository[P]) List(ctx context.Context, processID uuid.UUID) ([]P, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, processID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []P
	for _, it := range m.Items {
		if it.Process() == processID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *MockItemRepository[P]) FindByID(ctx context.Context, id uuid.UUID) (P, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.Items {
		if it.Key() == id {
			return it, nil
		}
	}
	var zero P
	return zero, &domain.NotFoundError{Table: "mock", ID: id}
}

func (m *MockItemRepository[P]) Insert(ctx context.Context, item P) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Items = append(m.Items, item)
	return nil
}

func (m *MockItemRepository[P]) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockItemRepository[P]) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	m.mu.Lock()
	m.StatusWrites = append(m.StatusWrites, status)
	m.mu.Unlock()
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockItemRepository[P]) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.Items {
		if it.Key() == id {
			m.Items = append(m.Items[:i], m.Items[i+1:]...)
			return nil
		}
	}
	return &domain.NotFoundError{Table: "mock", ID: id}
}

func (m *MockItemRepository[P]) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[domain.Status]int64{}, nil
}

// MockResponsibleRepository is a mock implementation of ResponsibleRepository
type MockResponsibleRepository struct {
	ListActiveFunc func(ctx context.Context) ([]domain.Responsible, error)
}

func (m *MockResponsibleRepository) ListActive(ctx context.Context) ([]domain.Responsible, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

// MockProcessRepository is a mock implementation of ProcessRepository
type MockProcessRepository struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Process, error)
}

func (m *MockProcessRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Process, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, &domain.NotFoundError{Table: "procesos", ID: id}
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	ListByHearingFunc func(ctx context.Context, hearingID uuid.UUID) ([]domain.HearingComment, error)
	CreateFunc        func(ctx context.Context, comment *domain.HearingComment) error
}

func (m *MockCommentRepository) ListByHearing(ctx context.Context, hearingID uuid.UUID) ([]domain.HearingComment, error) {
	if m.ListByHearingFunc != nil {
		return m.ListByHearingFunc(ctx, hearingID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.HearingComment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

// recordingPublisher keeps every published event
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.BoardEvent
}

func (p *recordingPublisher) Publish(ev domain.BoardEvent) {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
}

func (p *recordingPublisher) Events() []domain.BoardEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.BoardEvent, len(p.events))
	copy(out, p.events)
	return out
}
