package kanban

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"legal-board-api/internal/domain"
)

// Store is the remote collaborator a board reads from and writes status changes to
type Store[T Item] interface {
	List(ctx context.Context) ([]T, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

// FailurePolicy decides how a board reconciles after a failed status write
type FailurePolicy string

const (
	// PolicyRollback restores the last known-good estado in memory
	PolicyRollback FailurePolicy = "rollback"
	// PolicyRefetch reloads the whole list from the store
	PolicyRefetch FailurePolicy = "refetch"
)

// ParseFailurePolicy maps a config value to a policy, defaulting to rollback
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case "", PolicyRollback:
		return PolicyRollback, nil
	case PolicyRefetch:
		return PolicyRefetch, nil
	}
	return "", fmt.Errorf("unknown failure policy %q", s)
}

// Move describes a drop of one card
type Move struct {
	ItemID           uuid.UUID
	Source           domain.Status
	Destination      domain.Status
	SourceIndex      int
	DestinationIndex int
}

// Outcome is what a Move did
type Outcome string

const (
	OutcomeNoop       Outcome = "noop"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeMoved      Outcome = "moved"
	OutcomeRolledBack Outcome = "rolled_back"
	OutcomeRefetched  Outcome = "refetched"
)

// MoveResult reports a finished Move. Item is the zero value for noop and skipped.
type MoveResult[T Item] struct {
	Outcome Outcome
	Item    T
	From    domain.Status
	To      domain.Status
}

// Options configures a Board
type Options struct {
	PageSize int
	Policy   FailurePolicy
}

// Board is the in-memory state of one status board. It is safe for concurrent
// use; the lock is never held across a Store call.
type Board[T Item] struct {
	store    Store[T]
	pageSize int
	policy   FailurePolicy

	mu       sync.Mutex
	items    []T
	criteria Criteria
	pages    map[domain.Status]int
	loadSeq  uint64
	moveSeq  uint64
	inflight map[uuid.UUID]uint64
	closed   bool
}

// NewBoard creates an empty board backed by store
func NewBoard[T Item](store Store[T], opts Options) *Board[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Policy == "" {
		opts.Policy = PolicyRollback
	}
	return &Board[T]{
		store:    store,
		pageSize: opts.PageSize,
		policy:   opts.Policy,
		pages:    newPages(),
		inflight: make(map[uuid.UUID]uint64),
	}
}

func newPages() map[domain.Status]int {
	pages := make(map[domain.Status]int, len(domain.Statuses))
	for _, s := range domain.Statuses {
		pages[s] = 1
	}
	return pages
}

// Load fetches the list from the store. It reports false when the result was
// dropped because a newer load started or the board was closed meanwhile.
func (b *Board[T]) Load(ctx context.Context) (bool, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false, nil
	}
	b.loadSeq++
	seq := b.loadSeq
	b.mu.Unlock()

	items, err := b.store.List(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || seq != b.loadSeq {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	b.items = items
	return true, nil
}

// Close makes every later or in-flight load a no-op
func (b *Board[T]) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

// Items returns a copy of the unfiltered list
func (b *Board[T]) Items() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// SetCriteria replaces the active filters. Every column goes back to page 1
// when the criteria differ from the current ones.
func (b *Board[T]) SetCriteria(c Criteria) error {
	if err := c.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.criteria.Equal(c) {
		b.criteria = c
		b.pages = newPages()
	}
	return nil
}

// SetPage moves one column to page. Pages below 1 are stored as 1.
func (b *Board[T]) SetPage(s domain.Status, page int) error {
	if !s.Valid() {
		return domain.NewValidationError("estado", "Columna desconocida: "+string(s))
	}
	if page < 1 {
		page = 1
	}
	b.mu.Lock()
	b.pages[s] = page
	b.mu.Unlock()
	return nil
}

// Page returns the current page of column s
func (b *Board[T]) Page(s domain.Status) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pages[s]
}

// ColumnView is one column as displayed
type ColumnView[T Item] struct {
	Status     domain.Status `json:"estado"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	TotalItems int           `json:"total_items"`
	Items      []T           `json:"items"`
}

// View is the whole board after filter, partition and pagination
type View[T Item] struct {
	Columns   []ColumnView[T] `json:"columns"`
	Malformed []uuid.UUID     `json:"malformed,omitempty"`
}

// View runs the filter, partition and paginate pipeline over the current list.
// A MalformedDataError is returned alongside a usable view.
func (b *Board[T]) View() (View[T], error) {
	b.mu.Lock()
	items := make([]T, len(b.items))
	copy(items, b.items)
	criteria := b.criteria
	pages := make(map[domain.Status]int, len(b.pages))
	for k, v := range b.pages {
		pages[k] = v
	}
	b.mu.Unlock()

	cols, perr := Partition(Filter(items, criteria))

	view := View[T]{Columns: make([]ColumnView[T], 0, len(domain.Statuses))}
	for _, s := range domain.Statuses {
		col := cols.Column(s)
		view.Columns = append(view.Columns, ColumnView[T]{
			Status:     s,
			Page:       pages[s],
			TotalPages: DisplayPages(len(col), b.pageSize),
			TotalItems: len(col),
			Items:      Paginate(col, b.pageSize, pages[s]),
		})
	}
	if md, ok := perr.(*domain.MalformedDataError); ok {
		view.Malformed = md.IDs()
	}
	return view, perr
}

// Move applies a drag transition. The store error, if any, is returned together
// with the result describing how the board reconciled.
func (b *Board[T]) Move(ctx context.Context, m Move) (MoveResult[T], error) {
	var zero MoveResult[T]
	if !m.Destination.Valid() {
		return zero, domain.NewValidationError("destination", "El estado debe ser Pendiente, En Proceso o Finalizado")
	}
	if m.Source == m.Destination && m.SourceIndex == m.DestinationIndex {
		return MoveResult[T]{Outcome: OutcomeNoop}, nil
	}

	b.mu.Lock()
	item, ok := b.find(m.ItemID)
	if !ok {
		b.mu.Unlock()
		return MoveResult[T]{Outcome: OutcomeSkipped}, nil
	}
	from := item.CurrentStatus()
	item.SetStatus(m.Destination)
	b.moveSeq++
	token := b.moveSeq
	b.inflight[m.ItemID] = token
	b.mu.Unlock()

	err := b.store.UpdateStatus(ctx, m.ItemID, m.Destination)

	b.mu.Lock()
	current := b.inflight[m.ItemID] == token
	if current {
		delete(b.inflight, m.ItemID)
	}
	if err == nil {
		b.mu.Unlock()
		return MoveResult[T]{Outcome: OutcomeMoved, Item: item, From: from, To: m.Destination}, nil
	}

	if b.policy == PolicyRollback {
		if current && item.CurrentStatus() == m.Destination {
			item.SetStatus(from)
		}
		b.mu.Unlock()
		return MoveResult[T]{Outcome: OutcomeRolledBack, Item: item, From: from, To: m.Destination}, err
	}
	b.mu.Unlock()

	if _, lerr := b.Load(ctx); lerr != nil {
		return MoveResult[T]{Outcome: OutcomeRefetched, Item: item, From: from, To: m.Destination}, fmt.Errorf("%w (refetch: %v)", err, lerr)
	}
	if fresh, ok := b.lookup(m.ItemID); ok {
		item = fresh
	}
	return MoveResult[T]{Outcome: OutcomeRefetched, Item: item, From: from, To: m.Destination}, err
}

func (b *Board[T]) lookup(id uuid.UUID) (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.find(id)
}

// find expects b.mu to be held
func (b *Board[T]) find(id uuid.UUID) (T, bool) {
	for _, it := range b.items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
