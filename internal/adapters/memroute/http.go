package memroute

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"route-comparison-service/internal/domain"
	"time"

	"github.com/gorilla/mux"
)

// Zone-less UTC timestamps, as the route service emits them.
const timestampLayout = "2006-01-02T15:04:05.000000"

type nodeJSON struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp string  `json:"timestamp,omitempty"`
}

type resultJSON struct {
	ID            string   `json:"id"`
	Algorithm     string   `json:"algorithm"`
	StartNodeID   string   `json:"start_node_id"`
	EndNodeID     string   `json:"end_node_id"`
	Path          []string `json:"path"`
	Distance      float64  `json:"distance"`
	ExecutionTime float64  `json:"execution_time"`
	Timestamp     string   `json:"timestamp,omitempty"`
}

// NewHandler serves s over the route-service HTTP contract.
func NewHandler(s *Service) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	router.HandleFunc("/api/nodes", func(w http.ResponseWriter, r *http.Request) {
		nodes, err := s.ListNodes(r.Context())
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]nodeJSON, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, toNodeJSON(n))
		}
		writeJSON(w, http.StatusOK, out)
	}).Methods(http.MethodGet)

	router.HandleFunc("/api/nodes", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name string   `json:"name"`
			Lat  *float64 `json:"lat"`
			Lng  *float64 `json:"lng"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Lat == nil || in.Lng == nil {
			writeDetail(w, http.StatusUnprocessableEntity, "name, lat and lng are required")
			return
		}
		node, err := s.AddNode(r.Context(), domain.NodeCreate{Name: in.Name, Lat: *in.Lat, Lng: *in.Lng})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrInvalidNode) {
				status = http.StatusUnprocessableEntity
			}
			writeDetail(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toNodeJSON(node))
	}).Methods(http.MethodPost)

	router.HandleFunc("/api/demo/create-sample-nodes", func(w http.ResponseWriter, r *http.Request) {
		if err := s.CreateSampleNodes(r.Context()); err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		nodes, err := s.ListNodes(r.Context())
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]nodeJSON, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, toNodeJSON(n))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": fmt.Sprintf("Created %d sample nodes", len(out)),
			"nodes":   out,
		})
	}).Methods(http.MethodPost)

	router.HandleFunc("/api/route/optimize", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			StartNodeID string `json:"start_node_id"`
			EndNodeID   string `json:"end_node_id"`
			Algorithm   string `json:"algorithm"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "invalid json body")
			return
		}
		res, err := s.Optimize(r.Context(), in.StartNodeID, in.EndNodeID, domain.Algorithm(in.Algorithm))
		switch {
		case errors.Is(err, ErrNodeNotFound):
			writeDetail(w, http.StatusNotFound, "Start or end node not found")
		case errors.Is(err, ErrInvalidAlgorithm):
			writeDetail(w, http.StatusBadRequest, "Invalid algorithm. Use 'dijkstra' or 'qaoa'")
		case err != nil:
			writeDetail(w, http.StatusInternalServerError, err.Error())
		default:
			writeJSON(w, http.StatusOK, toResultJSON(res))
		}
	}).Methods(http.MethodPost)

	router.HandleFunc("/api/route/results", func(w http.ResponseWriter, r *http.Request) {
		results, err := s.ListResults(r.Context())
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]resultJSON, 0, len(results))
		for _, res := range results {
			out = append(out, toResultJSON(res))
		}
		writeJSON(w, http.StatusOK, out)
	}).Methods(http.MethodGet)

	return router
}

func toNodeJSON(n domain.Node) nodeJSON {
	return nodeJSON{ID: n.ID, Name: n.Name, Lat: n.Lat, Lng: n.Lng, Timestamp: formatTime(n.CreatedAt)}
}

func toResultJSON(r domain.RouteResult) resultJSON {
	return resultJSON{
		ID:            r.ID,
		Algorithm:     string(r.Algorithm),
		StartNodeID:   r.StartNodeID,
		EndNodeID:     r.EndNodeID,
		Path:          r.Path,
		Distance:      r.Distance,
		ExecutionTime: r.ExecutionTime,
		Timestamp:     formatTime(r.CompletedAt),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("memroute encode failed: err=%v", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}
