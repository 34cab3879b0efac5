package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"
)

// Postgres-backed implementation of the RouteStore port.
type PostgresRouteRepository struct{ DB *sql.DB }

func NewPostgresRouteRepository(db *sql.DB) *PostgresRouteRepository {
	return &PostgresRouteRepository{DB: db}
}

// Persist a route request and its fuel stops in one transaction.
func (p *PostgresRouteRepository) SaveRoute(ctx context.Context, record domain.RouteRecord, stops []domain.FuelStop) (int64, error) {
	if p.DB == nil {
		return 0, errors.New("postgres route repository: DB is nil")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save route: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertRouteQuery := `
	INSERT INTO route_requests (
		start_location, end_location, route_hash,
		total_distance_miles, total_fuel_cost,
		vehicle_mpg, tank_capacity, route_polyline
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id;
	`

	var routeID int64
	err = tx.QueryRowContext(ctx, insertRouteQuery,
		record.StartLocation,
		record.EndLocation,
		record.RouteHash,
		record.TotalDistanceMiles,
		record.TotalFuelCost.StringFixed(2),
		record.VehicleMPG.InexactFloat64(),
		record.TankCapacity.InexactFloat64(),
		record.RoutePolyline,
	).Scan(&routeID)
	if err != nil {
		return 0, fmt.Errorf("save route: insert route_requests: %w", err)
	}

	insertStopQuery := `
	INSERT INTO fuel_stops (
		route_id, station_opis_id, stop_order,
		miles_from_start, gallons_filled, cost, distance_from_route_miles
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	for _, stop := range stops {
		_, err := tx.ExecContext(ctx, insertStopQuery,
			routeID,
			stop.Station.OpisID,
			stop.StopOrder,
			stop.MilesFromStart,
			stop.GallonsRefilled.InexactFloat64(),
			stop.SegmentCost.StringFixed(2),
			stop.DeviationFromRouteMiles,
		)
		if err != nil {
			return 0, fmt.Errorf("save route: insert fuel_stops stop_order=%d: %w", stop.StopOrder, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("save route: commit tx: %w", err)
	}

	return routeID, nil
}
