package memroute

import (
	"context"
	"errors"
	"testing"

	"route-comparison-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceOptimizeDirectLeg(t *testing.T) {
	s := NewService(
		domain.Node{ID: "n1", Name: "Depot", Lat: 40.70, Lng: -74.00},
		domain.Node{ID: "n2", Name: "Store", Lat: 40.72, Lng: -73.99},
	)

	res, err := s.Optimize(context.Background(), "n1", "n2", "Dijkstra")
	require.NoError(t, err)

	assert.Equal(t, domain.AlgorithmDijkstra, res.Algorithm)
	assert.Equal(t, []string{"n1", "n2"}, res.Path)
	assert.InDelta(t, 2.38, res.Distance, 0.05)
	assert.NotEmpty(t, res.ID)
	require.NotNil(t, res.CompletedAt)

	log, err := s.ListResults(context.Background())
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, res.ID, log[0].ID)
}

func TestServiceOptimizeSameNode(t *testing.T) {
	s := NewService(domain.Node{ID: "A", Name: "A", Lat: 1, Lng: 1})

	res, err := s.Optimize(context.Background(), "A", "A", domain.AlgorithmQAOA)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, 0.0, res.Distance)
}

func TestServiceOptimizeErrors(t *testing.T) {
	s := NewService(domain.Node{ID: "A", Name: "A", Lat: 1, Lng: 1})

	_, err := s.Optimize(context.Background(), "A", "missing", domain.AlgorithmDijkstra)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, err = s.Optimize(context.Background(), "A", "A", "astar")
	assert.ErrorIs(t, err, ErrInvalidAlgorithm)

	boom := errors.New("boom")
	s.SetOptimizeHook(func(context.Context, string, string, domain.Algorithm) error { return boom })
	_, err = s.Optimize(context.Background(), "A", "A", domain.AlgorithmDijkstra)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 3, s.CallCount(OpOptimize))
}

func TestServiceCreateSampleNodesReplaces(t *testing.T) {
	s := NewService(domain.Node{ID: "old", Name: "Old"})

	require.NoError(t, s.CreateSampleNodes(context.Background()))

	nodes, err := s.ListNodes(context.Background())
	require.NoError(t, err)
	require.Len(t, nodes, len(SampleNodes))

	seen := make(map[string]struct{}, len(nodes))
	for i, n := range nodes {
		assert.Equal(t, SampleNodes[i].Name, n.Name)
		assert.NotEqual(t, "old", n.ID)
		seen[n.ID] = struct{}{}
	}
	assert.Len(t, seen, len(nodes), "ids must be unique")
}

func TestServiceSetFailure(t *testing.T) {
	s := NewService()
	boom := errors.New("unreachable")

	s.SetFailure(OpListNodes, boom)
	_, err := s.ListNodes(context.Background())
	assert.ErrorIs(t, err, boom)

	s.SetFailure(OpListNodes, nil)
	_, err = s.ListNodes(context.Background())
	assert.NoError(t, err)
}
