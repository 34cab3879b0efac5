package api

import (
	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/api/handlers"
	"fuel-route-service/internal/ports"
	"net/http"

	"github.com/rs/cors"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.StationRepository,
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	routeStore ports.RouteStore,
	planCache *cache.PlanCache,
) http.Handler {
	mux := http.NewServeMux()

	stationHandler := &handlers.StationHandler{Repo: repo}
	optimizeHandler := &handlers.OptimizeHandler{
		Repo:       repo,
		Geocoder:   geocoder,
		Routes:     routes,
		RouteStore: routeStore,
		PlanCache:  planCache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stations", stationHandler.List)
	mux.HandleFunc("/optimize-route", optimizeHandler.Optimize)

	return cors.Default().Handler(loggingMiddleware(mux))
}
