package dto

import "time"

type RouteResultResponse struct {
	ID            string     `json:"id,omitempty"`
	Algorithm     string     `json:"algorithm"`
	StartNodeID   string     `json:"start_node_id"`
	EndNodeID     string     `json:"end_node_id"`
	Path          []string   `json:"path"`
	Distance      float64    `json:"distance"`
	ExecutionTime float64    `json:"execution_time"`
	Timestamp     *time.Time `json:"timestamp,omitempty"`
}

// RouteViewResponse is a result with names and drawable geometry resolved
// against the directory at response time.
type RouteViewResponse struct {
	Result       RouteResultResponse `json:"result"`
	StartName    string              `json:"start_name"`
	EndName      string              `json:"end_name"`
	PathNames    []string            `json:"path_names"`
	Geometry     [][2]float64        `json:"geometry"`
	Renderable   bool                `json:"renderable"`
	LineLengthKm float64             `json:"line_length_km"`
}

type OptimizeRequest struct {
	Algorithm string `json:"algorithm"`
}

type HistoryResponse struct {
	Results []RouteViewResponse `json:"results"`
}

type ComparisonEntryResponse struct {
	Algorithm string               `json:"algorithm"`
	Result    *RouteResultResponse `json:"result"`
}

type ComparisonResponse struct {
	Start              string                    `json:"start"`
	End                string                    `json:"end"`
	Entries            []ComparisonEntryResponse `json:"entries"`
	DistanceDelta      *float64                  `json:"distance_delta"`
	ExecutionTimeDelta *float64                  `json:"execution_time_delta"`
}
