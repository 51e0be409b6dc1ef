package handlers

import (
	"net/http"
	"route-comparison-service/internal/api/dto"
	"route-comparison-service/internal/services"

	"github.com/gorilla/mux"
)

// SelectionHandler edits the start/end selection. Ids are checked only when a
// route is requested.
type SelectionHandler struct {
	Orch *services.Orchestrator
}

func (h *SelectionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/selection", h.Get).Methods(http.MethodGet)
	router.HandleFunc("/api/selection", h.Update).Methods(http.MethodPut)
	router.HandleFunc("/api/selection", h.Clear).Methods(http.MethodDelete)
}

func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, toSelectionResponse(h.Orch.Selection()))
}

func (h *SelectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Start != nil {
		h.Orch.SetStart(*req.Start)
	}
	if req.End != nil {
		h.Orch.SetEnd(*req.End)
	}

	h.Get(w, r)
}

func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.Orch.ClearSelection()
	h.Get(w, r)
}
