package ports

import (
	"context"
	"route-comparison-service/internal/domain"
)

// Contract for the external route service that owns nodes and the optimization log.
type RouteService interface {
	// Return every node in server order.
	ListNodes(ctx context.Context) ([]domain.Node, error)
	// Replace the node set with the service's demo nodes.
	CreateSampleNodes(ctx context.Context) error
	// Create a single node and return it as stored by the service.
	AddNode(ctx context.Context, in domain.NodeCreate) (domain.Node, error)
	// Compute a route between two nodes using the given algorithm.
	Optimize(ctx context.Context, start, end string, algorithm domain.Algorithm) (domain.RouteResult, error)
	// Return the full optimization log ordered by completion time ascending.
	ListResults(ctx context.Context) ([]domain.RouteResult, error)
}
