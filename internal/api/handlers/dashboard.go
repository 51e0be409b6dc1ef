package handlers

import (
	"net/http"
	"route-comparison-service/internal/api/dto"
	"route-comparison-service/internal/ports"
	"route-comparison-service/internal/services"

	"github.com/gorilla/mux"
)

type NoticeSource interface {
	Recent() []ports.Notice
}

// DashboardHandler serves the combined view state. Status is "pending" while
// any optimize request is in flight.
type DashboardHandler struct {
	Orch    *services.Orchestrator
	Notices NoticeSource
}

func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard", h.Get).Methods(http.MethodGet)
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap := h.Orch.Snapshot()

	res := dto.DashboardResponse{
		Status:    "idle",
		Pending:   snap.Pending,
		Nodes:     toNodeResponses(snap.Nodes),
		Selection: toSelectionResponse(snap.Selection),
		History:   toRouteViews(snap.History),
		Notices:   []dto.NoticeResponse{},
	}
	if snap.Pending > 0 {
		res.Status = "pending"
	}
	if snap.Current != nil {
		v := toRouteView(*snap.Current)
		res.Current = &v
	}
	if h.Notices != nil {
		res.Notices = toNoticeResponses(h.Notices.Recent())
	}

	writeJSON(w, r, http.StatusOK, res)
}
