package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS fuel_stations (
		opis_id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		rack_id BIGINT,
		retail_price NUMERIC(6,3) NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		is_geocoded BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createRouteRequestsQuery := `
	CREATE TABLE IF NOT EXISTS route_requests (
		id BIGSERIAL PRIMARY KEY,
		start_location TEXT NOT NULL,
		end_location TEXT NOT NULL,
		route_hash TEXT,
		total_distance_miles DOUBLE PRECISION NOT NULL,
		total_fuel_cost NUMERIC(10,2) NOT NULL,
		vehicle_mpg DOUBLE PRECISION NOT NULL,
		tank_capacity DOUBLE PRECISION NOT NULL,
		route_polyline TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createFuelStopsQuery := `
	CREATE TABLE IF NOT EXISTS fuel_stops (
		id BIGSERIAL PRIMARY KEY,
		route_id BIGINT NOT NULL REFERENCES route_requests(id) ON DELETE CASCADE,
		station_opis_id BIGINT NOT NULL REFERENCES fuel_stations(opis_id),
		stop_order INTEGER NOT NULL,
		miles_from_start DOUBLE PRECISION NOT NULL,
		gallons_filled DOUBLE PRECISION NOT NULL,
		cost NUMERIC(8,2) NOT NULL,
		distance_from_route_miles DOUBLE PRECISION,
		UNIQUE (route_id, stop_order)
	);
	`

	createIndexQueries := []string{
		`CREATE INDEX IF NOT EXISTS idx_fuel_stations_state ON fuel_stations(state);`,
		`CREATE INDEX IF NOT EXISTS idx_fuel_stations_retail_price ON fuel_stations(retail_price);`,
		`CREATE INDEX IF NOT EXISTS idx_fuel_stations_lat_lon ON fuel_stations(latitude, longitude);`,
		`CREATE INDEX IF NOT EXISTS idx_fuel_stations_is_geocoded ON fuel_stations(is_geocoded);`,
		`CREATE INDEX IF NOT EXISTS idx_route_requests_route_hash ON route_requests(route_hash);`,
	}

	statements := append([]string{
		createStationsQuery,
		createRouteRequestsQuery,
		createFuelStopsQuery,
	}, createIndexQueries...)

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
