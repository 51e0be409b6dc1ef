package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"route-comparison-service/internal/adapters/notify"
	"route-comparison-service/internal/adapters/routeapi"
	"route-comparison-service/internal/adapters/seed"
	"route-comparison-service/internal/config"
	"route-comparison-service/internal/platform/obs"
	"route-comparison-service/internal/services"
)

func main() {
	sample := flag.Bool("sample", false, "replace all nodes with the service's sample nodes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.RouteServiceURL == config.MemoryRouteService {
		log.Fatal("seedtool needs a remote ROUTE_SERVICE_URL")
	}

	client, err := routeapi.NewClient(cfg.RouteServiceURL, &http.Client{Timeout: cfg.RouteServiceTimeout})
	if err != nil {
		log.Fatal(err)
	}

	orch := services.NewOrchestrator(client, notify.LogNotifier{}, cfg.HistoryLimit)
	ctx, _ := obs.EnsureRequestID(context.Background())

	if *sample {
		log.Println("Creating sample nodes...")
		if err := orch.CreateSampleNodes(ctx); err != nil {
			log.Fatalf("sample nodes failed: %v", err)
		}
		log.Printf("Sample nodes ready. count=%d", orch.Directory().Len())
		return
	}

	seedPath := cfg.SeedPath
	if flag.NArg() > 0 {
		seedPath = flag.Arg(0)
	}

	nodes, err := seed.LoadNodes(seedPath)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Seeding nodes... path=%s count=%d", seedPath, len(nodes))
	created, err := seed.Apply(ctx, orch, nodes)
	if err != nil {
		log.Fatalf("seeding failed after %d nodes: %v", len(created), err)
	}
	log.Println("Seeding complete.")
}
