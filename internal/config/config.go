package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MemoryRouteService selects the in-process route service instead of HTTP.
const MemoryRouteService = "memory"

const defaultHistoryLimit = 10

type Config struct {
	RouteServiceURL     string
	RouteServiceTimeout time.Duration
	Port                string
	HistoryLimit        int
	SeedPath            string
	AllowedOrigins      []string
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	timeout, err := time.ParseDuration(Get("ROUTE_SERVICE_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: ROUTE_SERVICE_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("load config: ROUTE_SERVICE_TIMEOUT must not be negative, got %s", timeout)
	}

	limit, err := strconv.Atoi(Get("HISTORY_LIMIT", strconv.Itoa(defaultHistoryLimit)))
	if err != nil {
		return Config{}, fmt.Errorf("load config: HISTORY_LIMIT: %w", err)
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}

	origins := make([]string, 0, 1)
	for _, o := range strings.Split(Get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		RouteServiceURL:     strings.TrimRight(Get("ROUTE_SERVICE_URL", "http://localhost:8000"), "/"),
		RouteServiceTimeout: timeout,
		Port:                Get("PORT", "8080"),
		HistoryLimit:        limit,
		SeedPath:            Get("SEED_PATH", "data/seeds/nodes.json"),
		AllowedOrigins:      origins,
	}, nil
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
