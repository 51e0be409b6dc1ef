package routeapi

import (
	"bytes"
	"encoding/json"
	"route-comparison-service/internal/domain"
	"strings"
	"time"
)

type nodeResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Lat       float64      `json:"lat"`
	Lng       float64      `json:"lng"`
	Timestamp *serviceTime `json:"timestamp,omitempty"`
}

func (n nodeResponse) toDomain() domain.Node {
	return domain.Node{
		ID:        n.ID,
		Name:      n.Name,
		Lat:       n.Lat,
		Lng:       n.Lng,
		CreatedAt: n.Timestamp.ptr(),
	}
}

type nodeCreateRequest struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type optimizeRequest struct {
	StartNodeID string `json:"start_node_id"`
	EndNodeID   string `json:"end_node_id"`
	Algorithm   string `json:"algorithm"`
}

type routeResultResponse struct {
	ID            string       `json:"id"`
	Algorithm     string       `json:"algorithm"`
	StartNodeID   string       `json:"start_node_id"`
	EndNodeID     string       `json:"end_node_id"`
	Path          []string     `json:"path"`
	Distance      float64      `json:"distance"`
	ExecutionTime float64      `json:"execution_time"`
	Timestamp     *serviceTime `json:"timestamp,omitempty"`
}

// toDomain maps fields one-to-one; numbers keep the service's units and precision.
func (r routeResultResponse) toDomain() domain.RouteResult {
	return domain.RouteResult{
		ID:            r.ID,
		Algorithm:     domain.Algorithm(r.Algorithm),
		StartNodeID:   r.StartNodeID,
		EndNodeID:     r.EndNodeID,
		Path:          append([]string(nil), r.Path...),
		Distance:      r.Distance,
		ExecutionTime: r.ExecutionTime,
		CompletedAt:   r.Timestamp.ptr(),
	}
}

// serviceTime accepts RFC 3339 timestamps and the zone-less ISO form the
// service emits for UTC datetimes. Unparseable values decode as absent.
type serviceTime struct {
	t     time.Time
	valid bool
}

var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (s *serviceTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		s.t, s.valid = t.UTC(), true
		return nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			s.t, s.valid = t, true
			return nil
		}
	}

	return nil
}

func (s *serviceTime) ptr() *time.Time {
	if s == nil || !s.valid {
		return nil
	}
	t := s.t
	return &t
}
