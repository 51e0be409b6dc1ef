package services

import (
	"route-comparison-service/internal/domain"
	"sync"
)

const DefaultHistoryLimit = 10

// ResultStore holds the current result and a bounded window over the
// service's optimization log. Both are replaced in a single step.
type ResultStore struct {
	mu      sync.RWMutex
	limit   int
	current *domain.RouteResult
	history []domain.RouteResult
}

func NewResultStore(limit int) *ResultStore {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &ResultStore{limit: limit}
}

func (s *ResultStore) Limit() int { return s.limit }

func (s *ResultStore) SetCurrent(r domain.RouteResult) {
	c := r.Clone()

	s.mu.Lock()
	s.current = &c
	s.mu.Unlock()
}

func (s *ResultStore) Current() (domain.RouteResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.RouteResult{}, false
	}
	return s.current.Clone(), true
}

// ReplaceHistory keeps the most recent entries of log, preserving its
// ascending completion order.
func (s *ResultStore) ReplaceHistory(log []domain.RouteResult) {
	if len(log) > s.limit {
		log = log[len(log)-s.limit:]
	}

	window := make([]domain.RouteResult, 0, len(log))
	for _, r := range log {
		window = append(window, r.Clone())
	}

	s.mu.Lock()
	s.history = window
	s.mu.Unlock()
}

func (s *ResultStore) History() []domain.RouteResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RouteResult, 0, len(s.history))
	for _, r := range s.history {
		out = append(out, r.Clone())
	}
	return out
}

// Read returns the current result and the history window from one locked
// read. The current result is nil when nothing has completed yet.
func (s *ResultStore) Read() (*domain.RouteResult, []domain.RouteResult) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var current *domain.RouteResult
	if s.current != nil {
		c := s.current.Clone()
		current = &c
	}

	history := make([]domain.RouteResult, 0, len(s.history))
	for _, r := range s.history {
		history = append(history, r.Clone())
	}
	return current, history
}
