package handlers

import (
	"net/http"
	"route-comparison-service/internal/services"

	"github.com/gorilla/mux"
	"github.com/paulmach/orb/geojson"
)

// MapHandler renders the directory and the current route as GeoJSON.
type MapHandler struct {
	Orch *services.Orchestrator
}

func (h *MapHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/map", h.Get).Methods(http.MethodGet)
}

func (h *MapHandler) Get(w http.ResponseWriter, r *http.Request) {
	sel := h.Orch.Selection()
	fc := geojson.NewFeatureCollection()

	for _, n := range h.Orch.Directory().ListNodes() {
		f := geojson.NewFeature(n.Coordinates().Point())
		f.ID = n.ID
		f.Properties["kind"] = "node"
		f.Properties["name"] = n.Name
		f.Properties["start"] = n.ID == sel.Start
		f.Properties["end"] = n.ID == sel.End
		fc.Append(f)
	}

	// A route with fewer than two drawable points has no segment to show.
	if cur, ok := h.Orch.Current(); ok {
		view := h.Orch.Describe(cur)
		if view.Geometry.Renderable() {
			f := geojson.NewFeature(view.Geometry.Line)
			f.ID = cur.ID
			f.Properties["kind"] = "route"
			f.Properties["algorithm"] = string(cur.Algorithm)
			f.Properties["distance"] = cur.Distance
			f.Properties["execution_time"] = cur.ExecutionTime
			f.Properties["path_names"] = view.PathNames
			fc.Append(f)
		}
	}

	writeJSONAs(w, r, http.StatusOK, "application/geo+json", fc)
}
