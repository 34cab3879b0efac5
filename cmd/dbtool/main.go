package main

import (
	"context"
	"fmt"
	"fuel-route-service/internal/adapters/osm"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/platform/db"
	"fuel-route-service/internal/services"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

const usage = `usage: dbtool <command>

commands:
  init              create the database schema
  import <csv>      import fuel stations from an OPIS price sheet
  geocode           geocode imported stations via Nominatim (idempotent)`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "init":
		log.Println("Initializing database schema...")
		if err := repositories.InitSchema(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")

	case "import":
		if len(os.Args) < 3 {
			log.Fatal("import requires a CSV file path")
		}
		if err := repositories.InitSchema(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		n, err := repositories.ImportStationsCSV(ctx, conn, os.Args[2])
		if err != nil {
			log.Fatalf("import failed after %d rows: %v", n, err)
		}
		log.Printf("Imported %d stations.", n)

	case "geocode":
		pipeline := &services.GeocodePipeline{
			Repo:     repositories.NewPostgresStationRepository(conn),
			Geocoder: osm.NewNominatimGeocoder(),
		}
		stats, err := pipeline.Run(ctx)
		if err != nil {
			log.Fatalf("geocoding failed: %v", err)
		}
		log.Printf("Geocoding completed: %d updated, %d failed.", stats.Geocoded, stats.Failed)

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
