package api

import (
	"net/http"
	"route-comparison-service/internal/api/handlers"
	"route-comparison-service/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(orch *services.Orchestrator, notices handlers.NoticeSource, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	router.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	(&handlers.DashboardHandler{Orch: orch, Notices: notices}).RegisterRoutes(router)
	(&handlers.NodeHandler{Orch: orch}).RegisterRoutes(router)
	(&handlers.SelectionHandler{Orch: orch}).RegisterRoutes(router)
	(&handlers.RouteHandler{Orch: orch}).RegisterRoutes(router)
	(&handlers.MapHandler{Orch: orch}).RegisterRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	return loggingMiddleware(requestIDMiddleware(c.Handler(router)))
}
