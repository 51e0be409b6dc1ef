package routeapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"route-comparison-service/internal/ports"
	"strings"
)

// Client implements ports.RouteService against the route-service HTTP API.
//
// It coordinates:
//   - JSON request/response mapping to domain types
//   - Error normalization into NetworkError / OptimizationError
//   - Request-id propagation for log correlation
//
// Requests are never retried. The client is safe for concurrent use and does
// not deduplicate or queue requests.
type Client struct {
	session *http.Client
	baseURL string
}

// NewClient builds a client for baseURL. A nil session uses an http.Client
// without a timeout, leaving deadlines to the caller's context and the service.
func NewClient(baseURL string, session *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("route service base url is empty")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("route service base url is invalid: %w", err)
	}

	if session == nil {
		session = &http.Client{}
	}

	return &Client{
		session: session,
		baseURL: baseURL,
	}, nil
}

var _ ports.RouteService = (*Client)(nil)
