package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"route-comparison-service/internal/domain"
	"strings"
)

type NodeSeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// LoadNodes reads a JSON array of nodes from jsonPath.
func LoadNodes(jsonPath string) ([]domain.NodeCreate, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed nodes: read %q: %w", jsonPath, err)
	}
	return ParseNodes(bytes)
}

// ParseNodes decodes and checks seed data. Names are trimmed.
func ParseNodes(data []byte) ([]domain.NodeCreate, error) {
	var seeds []NodeSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("seed nodes: parse json: %w", err)
	}

	rows := make([]domain.NodeCreate, 0, len(seeds))
	for i, item := range seeds {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed nodes: item at index %d: name cannot be empty", i+1)
		}

		c := domain.Coordinates{Lat: item.Lat, Lng: item.Lng}
		if !c.Valid() {
			return nil, fmt.Errorf("seed nodes: item %q at index %d: coordinates out of range (%v, %v)", name, i+1, item.Lat, item.Lng)
		}
		rows = append(rows, domain.NodeCreate{Name: name, Lat: item.Lat, Lng: item.Lng})
	}

	return rows, nil
}

// NodeCreator is satisfied by the orchestrator.
type NodeCreator interface {
	CreateNode(ctx context.Context, in domain.NodeCreate) (domain.Node, error)
}

// Apply creates every node in order and stops at the first failure.
func Apply(ctx context.Context, creator NodeCreator, nodes []domain.NodeCreate) ([]domain.Node, error) {
	created := make([]domain.Node, 0, len(nodes))
	for _, in := range nodes {
		n, err := creator.CreateNode(ctx, in)
		if err != nil {
			return created, fmt.Errorf("seed nodes: create %q: %w", in.Name, err)
		}
		created = append(created, n)
	}
	return created, nil
}
