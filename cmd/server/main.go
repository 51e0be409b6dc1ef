package main

import (
	"context"
	"log"
	"net/http"
	"route-comparison-service/internal/adapters/memroute"
	"route-comparison-service/internal/adapters/notify"
	"route-comparison-service/internal/adapters/routeapi"
	"route-comparison-service/internal/api"
	"route-comparison-service/internal/config"
	"route-comparison-service/internal/ports"
	"route-comparison-service/internal/services"
	"time"
)

// main is the application composition root.
// It wires the route service adapter behind its port and starts the dashboard API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	service, err := newRouteService(cfg)
	if err != nil {
		log.Fatal(err)
	}

	board := notify.NewBoard(notify.DefaultBoardSize)
	orch := services.NewOrchestrator(service, notify.Multi{notify.LogNotifier{}, board}, cfg.HistoryLimit)

	// Non-fatal: failures are already notified and the directory can be refreshed later.
	if err := orch.Bootstrap(context.Background()); err != nil {
		log.Printf("bootstrap failed: err=%v", err)
	}

	router := api.NewRouter(orch, board, cfg.AllowedOrigins)

	// WriteTimeout leaves room for slow optimizations; the route service owns the real deadline.
	log.Printf("Server listening addr=:%s route_service=%s", cfg.Port, cfg.RouteServiceURL)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newRouteService(cfg config.Config) (ports.RouteService, error) {
	if cfg.RouteServiceURL == config.MemoryRouteService {
		log.Println("Using in-process route service")
		svc := memroute.NewService()
		if err := svc.CreateSampleNodes(context.Background()); err != nil {
			return nil, err
		}
		return svc, nil
	}

	client, err := routeapi.NewClient(cfg.RouteServiceURL, &http.Client{Timeout: cfg.RouteServiceTimeout})
	if err != nil {
		return nil, err
	}
	return client, nil
}
