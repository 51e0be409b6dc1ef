package handlers

import (
	"net/http"
	"route-comparison-service/internal/api/dto"
	"route-comparison-service/internal/services"

	"github.com/gorilla/mux"
)

// NodeHandler exposes the node directory and the calls that change it.
type NodeHandler struct {
	Orch *services.Orchestrator
}

func (h *NodeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/nodes", h.List).Methods(http.MethodGet)
	router.HandleFunc("/api/nodes", h.Add).Methods(http.MethodPost)
	router.HandleFunc("/api/nodes/sample", h.CreateSamples).Methods(http.MethodPost)
	router.HandleFunc("/api/nodes/refresh", h.Refresh).Methods(http.MethodPost)
}

func (h *NodeHandler) List(w http.ResponseWriter, r *http.Request) {
	res := dto.ListNodesResponse{Nodes: toNodeResponses(h.Orch.Directory().ListNodes())}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *NodeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddNodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	node, err := h.Orch.AddNode(r.Context(), string(req.Name), string(req.Lat), string(req.Lng))
	if err != nil && node.ID == "" {
		writeDomainError(w, r, err)
		return
	}

	// The node exists even if the follow-up directory refresh failed.
	writeJSON(w, r, http.StatusCreated, toNodeResponse(node))
}

func (h *NodeHandler) CreateSamples(w http.ResponseWriter, r *http.Request) {
	if err := h.Orch.CreateSampleNodes(r.Context()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.List(w, r)
}

func (h *NodeHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Orch.RefreshNodes(r.Context()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.List(w, r)
}
