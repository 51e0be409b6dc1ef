package handlers

import (
	"net/http"
	"route-comparison-service/internal/api/dto"
	"route-comparison-service/internal/services"

	"github.com/gorilla/mux"
)

// RouteHandler triggers optimizations and reads results.
type RouteHandler struct {
	Orch *services.Orchestrator
}

func (h *RouteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/route/optimize", h.Optimize).Methods(http.MethodPost)
	router.HandleFunc("/api/route/results", h.Results).Methods(http.MethodGet)
	router.HandleFunc("/api/route/compare", h.Compare).Methods(http.MethodGet)
}

// Optimize runs the request to completion even if the client goes away.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req dto.OptimizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.Orch.RequestOptimize(r.Context(), req.Algorithm)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteView(h.Orch.Describe(res)))
}

func (h *RouteHandler) Results(w http.ResponseWriter, r *http.Request) {
	history := h.Orch.History()
	views := make([]services.RouteView, 0, len(history))
	for _, res := range history {
		views = append(views, h.Orch.Describe(res))
	}
	writeJSON(w, r, http.StatusOK, dto.HistoryResponse{Results: toRouteViews(views)})
}

func (h *RouteHandler) Compare(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, toComparisonResponse(h.Orch.Compare()))
}
