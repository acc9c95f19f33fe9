package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/repository"
)

// Board names as they appear in routes, events and metric labels
const (
	BoardHearings   = "audiencias"
	BoardMeetings   = "reuniones"
	BoardDeadlines  = "terminos"
	BoardActivities = "actividades"
)

// Boards lists every board in display order
var Boards = []string{BoardHearings, BoardMeetings, BoardDeadlines, BoardActivities}

// IsBoard reports whether name is a known board
func IsBoard(name string) bool {
	for _, b := range Boards {
		if b == name {
			return true
		}
	}
	return false
}

// Dashboard holds the summaries of every board of a process
type Dashboard struct {
	ProcessID  uuid.UUID                `json:"process_id"`
	Boards     map[string]*BoardSummary `json:"boards"`
	ComputedAt time.Time                `json:"computed_at"`
}

// DashboardService computes the metrics views of a process
type DashboardService interface {
	Dashboard(ctx context.Context, processID uuid.UUID) (*Dashboard, error)
	Summary(ctx context.Context, processID uuid.UUID, board string) (*BoardSummary, error)
}

// DashboardRepositories groups the stores the dashboard reads
type DashboardRepositories struct {
	Hearings     repository.ItemRepository[*domain.Hearing]
	Meetings     repository.ItemRepository[*domain.Meeting]
	Deadlines    repository.ItemRepository[*domain.Deadline]
	Activities   repository.ItemRepository[*domain.Activity]
	Responsibles repository.ResponsibleRepository
}

type dashboardServiceImpl struct {
	repos  DashboardRepositories
	now    func() time.Time
	logger *zap.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(repos DashboardRepositories, logger *zap.Logger) DashboardService {
	return &dashboardServiceImpl{
		repos:  repos,
		now:    time.Now,
		logger: logger,
	}
}

// Dashboard loads the four boards and the responsible parties concurrently.
// The first failing read cancels the others.
func (s *dashboardServiceImpl) Dashboard(ctx context.Context, processID uuid.UUID) (*Dashboard, error) {
	var (
		hearings     []*domain.Hearing
		meetings     []*domain.Meeting
		deadlines    []*domain.Deadline
		activities   []*domain.Activity
		responsibles []domain.Responsible
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		hearings, err = s.repos.Hearings.List(gctx, processID)
		return err
	})
	g.Go(func() (err error) {
		meetings, err = s.repos.Meetings.List(gctx, processID)
		return err
	})
	g.Go(func() (err error) {
		deadlines, err = s.repos.Deadlines.List(gctx, processID)
		return err
	})
	g.Go(func() (err error) {
		activities, err = s.repos.Activities.List(gctx, processID)
		return err
	})
	g.Go(func() (err error) {
		responsibles, err = s.repos.Responsibles.ListActive(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load dashboard",
			zap.String("process_id", processID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	now := s.now()
	idx := domain.IndexResponsibles(responsibles)
	return &Dashboard{
		ProcessID: processID,
		Boards: map[string]*BoardSummary{
			BoardHearings:   SummarizeScheduled(BoardHearings, hearings, idx, func(h *domain.Hearing) *time.Time { return h.ScheduledAt }, now),
			BoardMeetings:   SummarizeScheduled(BoardMeetings, meetings, idx, func(m *domain.Meeting) *time.Time { return m.ScheduledAt }, now),
			BoardDeadlines:  SummarizeDeadlines(deadlines, idx, now),
			BoardActivities: SummarizeActivities(activities, idx),
		},
		ComputedAt: now.UTC(),
	}, nil
}

// Summary computes the view of a single board
func (s *dashboardServiceImpl) Summary(ctx context.Context, processID uuid.UUID, board string) (*BoardSummary, error) {
	if !IsBoard(board) {
		return nil, domain.NewValidationError("board", "Tablero desconocido: "+board)
	}

	responsibles, err := s.repos.Responsibles.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	idx := domain.IndexResponsibles(responsibles)
	now := s.now()

	switch board {
	case BoardHearings:
		items, err := s.repos.Hearings.List(ctx, processID)
		if err != nil {
			return nil, err
		}
		return SummarizeScheduled(board, items, idx, func(h *domain.Hearing) *time.Time { return h.ScheduledAt }, now), nil
	case BoardMeetings:
		items, err := s.repos.Meetings.List(ctx, processID)
		if err != nil {
			return nil, err
		}
		return SummarizeScheduled(board, items, idx, func(m *domain.Meeting) *time.Time { return m.ScheduledAt }, now), nil
	case BoardDeadlines:
		items, err := s.repos.Deadlines.List(ctx, processID)
		if err != nil {
			return nil, err
		}
		return SummarizeDeadlines(items, idx, now), nil
	default:
		items, err := s.repos.Activities.List(ctx, processID)
		if err != nil {
			return nil, err
		}
		return SummarizeActivities(items, idx), nil
	}
}
