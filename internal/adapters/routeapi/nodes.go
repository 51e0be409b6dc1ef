package routeapi

import (
	"context"
	"net/http"
	"route-comparison-service/internal/domain"
	"route-comparison-service/internal/platform/obs"
)

// ListNodes returns the node set in server order.
func (c *Client) ListNodes(ctx context.Context) (_ []domain.Node, err error) {
	defer obs.Time(ctx, "routeapi.ListNodes")(&err)

	var decoded []nodeResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/nodes", nil, &decoded); err != nil {
		return nil, &domain.NetworkError{Op: "list nodes", Err: err}
	}

	nodes := make([]domain.Node, 0, len(decoded))
	for _, n := range decoded {
		nodes = append(nodes, n.toDomain())
	}

	return nodes, nil
}

// AddNode creates one node. Callers re-fetch the directory afterwards.
func (c *Client) AddNode(ctx context.Context, in domain.NodeCreate) (_ domain.Node, err error) {
	defer obs.Time(ctx, "routeapi.AddNode")(&err)

	body := nodeCreateRequest{Name: in.Name, Lat: in.Lat, Lng: in.Lng}

	var created nodeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/nodes", body, &created); err != nil {
		return domain.Node{}, &domain.NetworkError{Op: "add node", Err: err}
	}

	return created.toDomain(), nil
}

// CreateSampleNodes asks the service to replace its nodes with demo data.
// The response body is ignored; callers re-fetch the directory afterwards.
func (c *Client) CreateSampleNodes(ctx context.Context) (err error) {
	defer obs.Time(ctx, "routeapi.CreateSampleNodes")(&err)

	if err := c.doJSON(ctx, http.MethodPost, "/api/demo/create-sample-nodes", nil, nil); err != nil {
		return &domain.NetworkError{Op: "create sample nodes", Err: err}
	}

	return nil
}
