package memroute

import (
	"context"
	"errors"
	"fmt"
	"route-comparison-service/internal/domain"
	"route-comparison-service/internal/ports"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
)

var (
	ErrNodeNotFound     = errors.New("start or end node not found")
	ErrInvalidAlgorithm = errors.New("invalid algorithm, use 'dijkstra' or 'qaoa'")
	ErrInvalidNode      = errors.New("invalid node")
)

// Operation names accepted by CallCount and SetFailure.
const (
	OpListNodes         = "list_nodes"
	OpAddNode           = "add_node"
	OpCreateSampleNodes = "create_sample_nodes"
	OpOptimize          = "optimize"
	OpListResults       = "list_results"
)

// OptimizeHook runs before an optimize request is computed. Returning an
// error fails the request; blocking holds it in flight.
type OptimizeHook func(ctx context.Context, start, end string, algorithm domain.Algorithm) error

// Service is an in-process route service that keeps nodes and the
// optimization log in memory.
//
// Routes are the direct great-circle leg between start and end (a single-node
// path when they are equal). It exists for local demos and as the fake
// collaborator in tests, not as a route optimizer.
//
// The service is safe for concurrent use.
type Service struct {
	mu       sync.Mutex
	nodes    []domain.Node
	results  []domain.RouteResult
	calls    map[string]int
	failures map[string]error
	hook     OptimizeHook
	now      func() time.Time
}

func NewService(nodes ...domain.Node) *Service {
	return &Service{
		nodes:    append([]domain.Node(nil), nodes...),
		calls:    make(map[string]int),
		failures: make(map[string]error),
		now:      time.Now,
	}
}

// SetOptimizeHook installs fn; nil removes it.
func (s *Service) SetOptimizeHook(fn OptimizeHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = fn
}

// SetFailure makes every call of op fail with err until cleared with a nil err.
func (s *Service) SetFailure(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// CallCount reports how many times op has been invoked, failures included.
func (s *Service) CallCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// AppendResults seeds the optimization log.
func (s *Service) AppendResults(results ...domain.RouteResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range results {
		s.results = append(s.results, r.Clone())
	}
}

func (s *Service) enter(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	return s.failures[op]
}

func (s *Service) ListNodes(ctx context.Context) ([]domain.Node, error) {
	if err := s.enter(OpListNodes); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Node(nil), s.nodes...), nil
}

func (s *Service) AddNode(ctx context.Context, in domain.NodeCreate) (domain.Node, error) {
	if err := s.enter(OpAddNode); err != nil {
		return domain.Node{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Node{}, fmt.Errorf("add node: %w: name is empty", ErrInvalidNode)
	}
	if !(domain.Coordinates{Lat: in.Lat, Lng: in.Lng}).Valid() {
		return domain.Node{}, fmt.Errorf("add node: %w: coordinates out of range", ErrInvalidNode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.now().UTC()
	node := domain.Node{ID: uuid.NewString(), Name: name, Lat: in.Lat, Lng: in.Lng, CreatedAt: &created}
	s.nodes = append(s.nodes, node)

	return node, nil
}

// CreateSampleNodes clears the node set and loads SampleNodes.
func (s *Service) CreateSampleNodes(ctx context.Context) error {
	if err := s.enter(OpCreateSampleNodes); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.now().UTC()
	s.nodes = make([]domain.Node, 0, len(SampleNodes))
	for _, in := range SampleNodes {
		at := created
		s.nodes = append(s.nodes, domain.Node{
			ID:        uuid.NewString(),
			Name:      in.Name,
			Lat:       in.Lat,
			Lng:       in.Lng,
			CreatedAt: &at,
		})
	}

	return nil
}

func (s *Service) Optimize(
	ctx context.Context,
	start string,
	end string,
	algorithm domain.Algorithm,
) (domain.RouteResult, error) {
	if err := s.enter(OpOptimize); err != nil {
		return domain.RouteResult{}, err
	}

	t0 := time.Now()

	s.mu.Lock()
	hook := s.hook
	s.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, start, end, algorithm); err != nil {
			return domain.RouteResult{}, err
		}
	}

	algo, err := domain.ParseAlgorithm(string(algorithm))
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, algorithm)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, okFrom := s.find(start)
	to, okTo := s.find(end)
	if !okFrom || !okTo {
		return domain.RouteResult{}, ErrNodeNotFound
	}

	path := []string{from.ID}
	distance := 0.0
	if from.ID != to.ID {
		path = append(path, to.ID)
		distance = geo.Distance(from.Coordinates().Point(), to.Coordinates().Point()) / 1000
	}

	completed := s.now().UTC()
	result := domain.RouteResult{
		ID:            uuid.NewString(),
		Algorithm:     algo,
		StartNodeID:   start,
		EndNodeID:     end,
		Path:          path,
		Distance:      distance,
		ExecutionTime: time.Since(t0).Seconds(),
		CompletedAt:   &completed,
	}
	s.results = append(s.results, result)

	return result.Clone(), nil
}

func (s *Service) ListResults(ctx context.Context) ([]domain.RouteResult, error) {
	if err := s.enter(OpListResults); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.RouteResult, 0, len(s.results))
	for _, r := range s.results {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (s *Service) find(id string) (domain.Node, bool) {
	for _, n := range s.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return domain.Node{}, false
}

var _ ports.RouteService = (*Service)(nil)
