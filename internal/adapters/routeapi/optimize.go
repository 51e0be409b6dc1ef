package routeapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"route-comparison-service/internal/domain"
	"route-comparison-service/internal/platform/obs"
)

// Optimize requests a route between start and end. Existence of the ids is not
// checked here; an unknown id comes back from the service as a failed request.
// Every failure is an *domain.OptimizationError carrying the attempted triple.
func (c *Client) Optimize(
	ctx context.Context,
	start string,
	end string,
	algorithm domain.Algorithm,
) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "routeapi.Optimize")(&err)

	fail := func(cause error) error {
		return &domain.OptimizationError{Start: start, End: end, Algorithm: algorithm, Err: cause}
	}

	if start == "" {
		return domain.RouteResult{}, fail(&domain.ValidationError{Field: "start_node_id", Reason: "must be non-empty"})
	}
	if end == "" {
		return domain.RouteResult{}, fail(&domain.ValidationError{Field: "end_node_id", Reason: "must be non-empty"})
	}

	body := optimizeRequest{
		StartNodeID: start,
		EndNodeID:   end,
		Algorithm:   string(algorithm),
	}

	var decoded routeResultResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/route/optimize", body, &decoded); err != nil {
		return domain.RouteResult{}, fail(err)
	}

	if err := checkResult(decoded); err != nil {
		return domain.RouteResult{}, fail(err)
	}

	return decoded.toDomain(), nil
}

// checkResult rejects responses that cannot be a RouteResult.
func checkResult(r routeResultResponse) error {
	if len(r.Path) == 0 {
		return errors.New("malformed response: empty path")
	}
	if math.IsNaN(r.Distance) || math.IsInf(r.Distance, 0) || r.Distance < 0 {
		return fmt.Errorf("malformed response: distance %v", r.Distance)
	}
	if math.IsNaN(r.ExecutionTime) || math.IsInf(r.ExecutionTime, 0) || r.ExecutionTime < 0 {
		return fmt.Errorf("malformed response: execution_time %v", r.ExecutionTime)
	}
	return nil
}
