package kanban

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"legal-board-api/internal/domain"
)

type card struct {
	id     uuid.UUID
	text   string
	status domain.Status
	owner  *uuid.UUID
	when   *time.Time
}

func (c *card) Key() uuid.UUID               { return c.id }
func (c *card) CurrentStatus() domain.Status { return c.status }
func (c *card) SetStatus(s domain.Status)    { c.status = s }
func (c *card) SearchText() string           { return c.text }
func (c *card) Responsible() *uuid.UUID      { return c.owner }
func (c *card) FilterDate() *time.Time       { return c.when }

func newCard(text string, status domain.Status) *card {
	return &card{id: uuid.New(), text: text, status: status}
}

func at(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

var errStore = errors.New("connection reset")

const (
	timeout = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// fakeStore records status writes and can be told to fail them
type fakeStore struct {
	mu       sync.Mutex
	items    []*card
	listErr  error
	writeErr error
	writes   []domain.Status
	// gate, when set, blocks UpdateStatus until closed
	gate chan struct{}
	// listGate, when set, blocks List until closed
	listGate chan struct{}
}

func (s *fakeStore) List(ctx context.Context) ([]*card, error) {
	if s.listGate != nil {
		<-s.listGate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*card, len(s.items))
	for i, it := range s.items {
		cp := *it
		out[i] = &cp
	}
	return out, nil
}

func (s *fakeStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, status)
	if s.writeErr != nil {
		return s.writeErr
	}
	for _, it := range s.items {
		if it.id == id {
			it.status = status
		}
	}
	return nil
}

func (s *fakeStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}
