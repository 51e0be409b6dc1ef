package domain

import (
	"fmt"
	"strings"
	"time"
)

// Algorithm names the backend strategy used to compute a route.
type Algorithm string

const (
	AlgorithmDijkstra Algorithm = "dijkstra"
	AlgorithmQAOA     Algorithm = "qaoa"
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{AlgorithmDijkstra, AlgorithmQAOA}

// ParseAlgorithm accepts an algorithm name regardless of case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case AlgorithmDijkstra, AlgorithmQAOA:
		return a, nil
	case "":
		return "", &ValidationError{Field: "algorithm", Reason: "is required"}
	default:
		return "", &ValidationError{
			Field:  "algorithm",
			Reason: fmt.Sprintf("must be %q or %q, got %q", AlgorithmDijkstra, AlgorithmQAOA, s),
		}
	}
}

// Represents the normalized outcome of one optimization request.
// Distance is in kilometers and ExecutionTime in seconds, both as reported by the route service.
// ID and CompletedAt are carried through when the service provides them.
// A RouteResult is immutable once created; Path is never shared with callers.
type RouteResult struct {
	ID            string
	Algorithm     Algorithm
	StartNodeID   string
	EndNodeID     string
	Path          []string
	Distance      float64
	ExecutionTime float64
	CompletedAt   *time.Time
}

// Clone returns a deep copy so stores never hand out their backing arrays.
func (r RouteResult) Clone() RouteResult {
	out := r
	out.Path = append([]string(nil), r.Path...)
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
