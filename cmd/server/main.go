package main

import (
	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/osm"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/api"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/platform/db"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Nominatim, OSRM) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := repositories.InitSchema(conn); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPostgresStationRepository(conn)
	routeStore := repositories.NewPostgresRouteRepository(conn)
	geocoder := osm.NewNominatimGeocoder()
	routes := osm.NewOSRMRouteProvider()
	planCache := cache.NewPlanCache(15 * time.Minute)

	router := api.NewRouter(repo, geocoder, routes, routeStore, planCache)

	// Timeouts are tuned for cold-cache planning (two geocode calls plus
	// a routing call before the planner even starts).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
