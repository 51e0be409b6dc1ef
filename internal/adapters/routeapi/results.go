package routeapi

import (
	"context"
	"net/http"
	"route-comparison-service/internal/domain"
	"route-comparison-service/internal/platform/obs"
)

// ListResults returns the full optimization log as the service orders it.
func (c *Client) ListResults(ctx context.Context) (_ []domain.RouteResult, err error) {
	defer obs.Time(ctx, "routeapi.ListResults")(&err)

	var decoded []routeResultResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/route/results", nil, &decoded); err != nil {
		return nil, &domain.NetworkError{Op: "list results", Err: err}
	}

	results := make([]domain.RouteResult, 0, len(decoded))
	for _, r := range decoded {
		results = append(results, r.toDomain())
	}

	return results, nil
}
