package services

import (
	"context"
	"sync"

	"route-comparison-service/internal/domain"
	"route-comparison-service/internal/ports"
)

type recordingNotifier struct {
	mu      sync.Mutex
	notices []ports.Notice
}

func (r *recordingNotifier) Notify(n ports.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recordingNotifier) kinds() []ports.NoticeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.NoticeKind, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n.Kind)
	}
	return out
}

// stubService returns scripted responses; nil funcs return zero values.
type stubService struct {
	listNodes   func() ([]domain.Node, error)
	optimize    func(start, end string, a domain.Algorithm) (domain.RouteResult, error)
	listResults func() ([]domain.RouteResult, error)

	mu            sync.Mutex
	optimizeCalls int
}

func (s *stubService) ListNodes(context.Context) ([]domain.Node, error) {
	if s.listNodes == nil {
		return nil, nil
	}
	return s.listNodes()
}

func (s *stubService) CreateSampleNodes(context.Context) error { return nil }

func (s *stubService) AddNode(_ context.Context, in domain.NodeCreate) (domain.Node, error) {
	return domain.Node{ID: "new", Name: in.Name, Lat: in.Lat, Lng: in.Lng}, nil
}

func (s *stubService) Optimize(_ context.Context, start, end string, a domain.Algorithm) (domain.RouteResult, error) {
	s.mu.Lock()
	s.optimizeCalls++
	s.mu.Unlock()
	if s.optimize == nil {
		return domain.RouteResult{}, nil
	}
	return s.optimize(start, end, a)
}

func (s *stubService) ListResults(context.Context) ([]domain.RouteResult, error) {
	if s.listResults == nil {
		return nil, nil
	}
	return s.listResults()
}

var depotAndStore = []domain.Node{
	{ID: "n1", Name: "Depot", Lat: 40.70, Lng: -74.00},
	{ID: "n2", Name: "Store", Lat: 40.72, Lng: -73.99},
}
