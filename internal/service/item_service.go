package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/kanban"
	"legal-board-api/internal/metrics"
	"legal-board-api/internal/repository"
)

// EventPublisher fans board events out to subscribers
type EventPublisher interface {
	Publish(event domain.BoardEvent)
}

// BoardQuery is a board view request: filters plus one page per column
type BoardQuery struct {
	Criteria kanban.Criteria
	Pages    map[domain.Status]int
}

// MoveRequest is a drop of one card as reported by the client
type MoveRequest struct {
	Source           domain.Status `json:"source" binding:"required"`
	Destination      domain.Status `json:"destination" binding:"required"`
	SourceIndex      int           `json:"source_index"`
	DestinationIndex int           `json:"destination_index"`
}

// MoveResponse reports how a move ended
type MoveResponse[P domain.BoardItem] struct {
	Outcome kanban.Outcome `json:"outcome"`
	Item    P              `json:"item,omitempty"`
}

// ItemService is the business logic shared by the four boards
type ItemService[P domain.BoardItem] interface {
	Board() string
	View(ctx context.Context, processID uuid.UUID, q BoardQuery) (*kanban.View[P], error)
	List(ctx context.Context, processID uuid.UUID) ([]P, error)
	Get(ctx context.Context, id uuid.UUID) (P, error)
	Create(ctx context.Context, processID uuid.UUID, item P) (P, error)
	Update(ctx context.Context, id uuid.UUID, item P) (P, error)
	Move(ctx context.Context, id uuid.UUID, req MoveRequest) (*MoveResponse[P], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BoardOptions carries the board settings from config
type BoardOptions struct {
	PageSize int
	Policy   kanban.FailurePolicy
}

type itemServiceImpl[P domain.BoardItem] struct {
	board     string
	repo      repository.ItemRepository[P]
	opts      BoardOptions
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewItemService creates the service of one board. publisher and m may be nil.
func NewItemService[P domain.BoardItem](
	board string,
	repo repository.ItemRepository[P],
	opts BoardOptions,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) ItemService[P] {
	return &itemServiceImpl[P]{
		board:     board,
		repo:      repo,
		opts:      opts,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With(zap.String("board", board)),
	}
}

// processStore scopes a repository to one process for a kanban board
type processStore[P domain.BoardItem] struct {
	repo      repository.ItemRepository[P]
	processID uuid.UUID
}

func (s processStore[P]) List(ctx context.Context) ([]P, error) {
	return s.repo.List(ctx, s.processID)
}

func (s processStore[P]) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *itemServiceImpl[P]) Board() string {
	return s.board
}

func (s *itemServiceImpl[P]) newBoard(processID uuid.UUID) *kanban.Board[P] {
	return kanban.NewBoard[P](processStore[P]{repo: s.repo, processID: processID}, kanban.Options{
		PageSize: s.opts.PageSize,
		Policy:   s.opts.Policy,
	})
}

// View loads the process list and runs it through filter, partition and pagination.
// Items with an unknown estado are listed in the view and logged, not returned as an error.
func (s *itemServiceImpl[P]) View(ctx context.Context, processID uuid.UUID, q BoardQuery) (*kanban.View[P], error) {
	if err := q.Criteria.Validate(); err != nil {
		return nil, err
	}

	b := s.newBoard(processID)
	defer b.Close()

	if _, err := b.Load(ctx); err != nil {
		s.logger.Error("Failed to load board",
			zap.String("process_id", processID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if err := b.SetCriteria(q.Criteria); err != nil {
		return nil, err
	}
	for status, page := range q.Pages {
		if err := b.SetPage(status, page); err != nil {
			return nil, err
		}
	}

	view, err := b.View()
	if err != nil {
		var malformed *domain.MalformedDataError
		if !errors.As(err, &malformed) {
			return nil, err
		}
		s.logger.Warn("Board has items with unknown estado",
			zap.String("process_id", processID.String()),
			zap.Any("items", malformed.Items),
		)
	}
	return &view, nil
}

func (s *itemServiceImpl[P]) List(ctx context.Context, processID uuid.UUID) ([]P, error) {
	items, err := s.repo.List(ctx, processID)
	if err != nil {
		s.logger.Error("Failed to list items",
			zap.String("process_id", processID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return items, nil
}

func (s *itemServiceImpl[P]) Get(ctx context.Context, id uuid.UUID) (P, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates item, scopes it to processID and inserts it
func (s *itemServiceImpl[P]) Create(ctx context.Context, processID uuid.UUID, item P) (P, error) {
	var zero P
	item.PrepareInsert(processID)
	if err := item.Validate(); err != nil {
		return zero, err
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		s.logger.Error("Failed to create item",
			zap.String("process_id", processID.String()),
			zap.Error(err),
		)
		return zero, err
	}

	if s.metrics != nil {
		s.metrics.IncrementItemCreated(s.board)
	}
	s.publish(domain.EventCreated, item, "", "")

	s.logger.Info("Item created",
		zap.String("item_id", item.Key().String()),
		zap.String("process_id", processID.String()),
	)
	return item, nil
}

// Update overwrites every mutable field of the item. The process never changes.
func (s *itemServiceImpl[P]) Update(ctx context.Context, id uuid.UUID, item P) (P, error) {
	var zero P
	if err := item.Validate(); err != nil {
		return zero, err
	}

	if err := s.repo.Update(ctx, id, item.MutableFields()); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to update item",
				zap.String("item_id", id.String()),
				zap.Error(err),
			)
		}
		return zero, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	s.publish(domain.EventUpdated, updated, "", "")
	return updated, nil
}

// Move applies a drag transition on the item's process board.
// An id the store no longer has is reported as skipped rather than as an error.
func (s *itemServiceImpl[P]) Move(ctx context.Context, id uuid.UUID, req MoveRequest) (*MoveResponse[P], error) {
	if !req.Source.Valid() {
		return nil, domain.NewValidationError("source", "El estado debe ser Pendiente, En Proceso o Finalizado")
	}
	if req.Source == req.Destination && req.SourceIndex == req.DestinationIndex {
		return &MoveResponse[P]{Outcome: kanban.OutcomeNoop}, nil
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug("Move of unknown item skipped", zap.String("item_id", id.String()))
			return &MoveResponse[P]{Outcome: kanban.OutcomeSkipped}, nil
		}
		return nil, err
	}

	b := s.newBoard(current.Process())
	defer b.Close()
	if _, err := b.Load(ctx); err != nil {
		return nil, err
	}

	res, err := b.Move(ctx, kanban.Move{
		ItemID:           id,
		Source:           req.Source,
		Destination:      req.Destination,
		SourceIndex:      req.SourceIndex,
		DestinationIndex: req.DestinationIndex,
	})
	if err != nil {
		if res.Outcome == kanban.OutcomeRolledBack || res.Outcome == kanban.OutcomeRefetched {
			if s.metrics != nil {
				s.metrics.IncrementRollback(s.board)
			}
			s.logger.Error("Status change failed, board reconciled",
				zap.String("item_id", id.String()),
				zap.String("outcome", string(res.Outcome)),
				zap.String("from", string(res.From)),
				zap.String("to", string(res.To)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if res.Outcome == kanban.OutcomeMoved {
		if s.metrics != nil {
			s.metrics.RecordTransition(s.board, string(res.From), string(res.To))
		}
		s.publish(domain.EventMoved, res.Item, res.From, res.To)
	}
	return &MoveResponse[P]{Outcome: res.Outcome, Item: res.Item}, nil
}

func (s *itemServiceImpl[P]) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to delete item",
				zap.String("item_id", id.String()),
				zap.Error(err),
			)
		}
		return err
	}

	s.publish(domain.EventDeleted, item, "", "")
	return nil
}

func (s *itemServiceImpl[P]) publish(t domain.EventType, item P, from, to domain.Status) {
	if s.publisher == nil {
		return
	}
	ev := domain.BoardEvent{
		Type:      t,
		Board:     s.board,
		ProcessID: item.Process(),
		ItemID:    item.Key(),
		From:      from,
		To:        to,
		At:        time.Now().UTC(),
	}
	if t != domain.EventDeleted {
		ev.Item = item
	}
	s.publisher.Publish(ev)
}
