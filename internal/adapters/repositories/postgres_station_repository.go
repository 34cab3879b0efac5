package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"

	"github.com/shopspring/decimal"
)

// Postgres-backed implementation of the StationRepository port.
type PostgresStationRepository struct{ DB *sql.DB }

func NewPostgresStationRepository(db *sql.DB) *PostgresStationRepository {
	return &PostgresStationRepository{DB: db}
}

const stationColumns = `
	opis_id,
	name,
	address,
	city,
	state,
	rack_id,
	retail_price,
	latitude,
	longitude,
	is_geocoded
`

// Return all geocoded stations inside the bounding box.
func (p *PostgresStationRepository) StationsInBox(ctx context.Context, box domain.BoundingBox) ([]domain.FuelStation, error) {
	if p.DB == nil {
		return nil, errors.New("postgres station repository: DB is nil")
	}

	query := `
	SELECT ` + stationColumns + `
	FROM fuel_stations
	WHERE is_geocoded
	  AND latitude BETWEEN $1 AND $2
	  AND longitude BETWEEN $3 AND $4
	ORDER BY opis_id;
	`
	rows, err := p.DB.QueryContext(ctx, query, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	if err != nil {
		return nil, fmt.Errorf("stations in box: query fuel_stations: %w", err)
	}
	defer rows.Close()

	return scanStations(rows)
}

// Return the whole station catalog.
func (p *PostgresStationRepository) ListStations(ctx context.Context) ([]domain.FuelStation, error) {
	if p.DB == nil {
		return nil, errors.New("postgres station repository: DB is nil")
	}

	query := `
	SELECT ` + stationColumns + `
	FROM fuel_stations
	ORDER BY opis_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query fuel_stations: %w", err)
	}
	defer rows.Close()

	return scanStations(rows)
}

// Return stations still awaiting geocoding.
func (p *PostgresStationRepository) ListUngeocoded(ctx context.Context) ([]domain.FuelStation, error) {
	if p.DB == nil {
		return nil, errors.New("postgres station repository: DB is nil")
	}

	query := `
	SELECT ` + stationColumns + `
	FROM fuel_stations
	WHERE NOT is_geocoded
	ORDER BY opis_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ungeocoded: query fuel_stations: %w", err)
	}
	defer rows.Close()

	return scanStations(rows)
}

// Record a station's resolved coordinates and mark it geocoded.
func (p *PostgresStationRepository) SetCoordinates(ctx context.Context, opisID int, coord domain.Coordinates) error {
	if p.DB == nil {
		return errors.New("postgres station repository: DB is nil")
	}

	query := `
	UPDATE fuel_stations
	SET latitude = $1, longitude = $2, is_geocoded = TRUE
	WHERE opis_id = $3;
	`
	res, err := p.DB.ExecContext(ctx, query, coord.Lat, coord.Lon, opisID)
	if err != nil {
		return fmt.Errorf("set coordinates: update opis_id=%d: %w", opisID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set coordinates: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set coordinates: no station with opis_id=%d", opisID)
	}

	return nil
}

// Insert a station if its OPIS ID is not already present.
func (p *PostgresStationRepository) UpsertStation(ctx context.Context, station domain.FuelStation) error {
	if p.DB == nil {
		return errors.New("postgres station repository: DB is nil")
	}

	query := `
	INSERT INTO fuel_stations (opis_id, name, address, city, state, rack_id, retail_price)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (opis_id) DO NOTHING;
	`
	_, err := p.DB.ExecContext(ctx, query,
		station.OpisID,
		station.Name,
		station.Address,
		station.City,
		station.State,
		station.RackID,
		station.RetailPrice.StringFixed(3),
	)
	if err != nil {
		return fmt.Errorf("upsert station: opis_id=%d: %w", station.OpisID, err)
	}

	return nil
}

func scanStations(rows *sql.Rows) ([]domain.FuelStation, error) {
	stations := make([]domain.FuelStation, 0, 64)
	for rows.Next() {
		var (
			s      domain.FuelStation
			rackID sql.NullInt64
			price  string
			lat    sql.NullFloat64
			lon    sql.NullFloat64
		)
		err := rows.Scan(
			&s.OpisID,
			&s.Name,
			&s.Address,
			&s.City,
			&s.State,
			&rackID,
			&price,
			&lat,
			&lon,
			&s.IsGeocoded,
		)
		if err != nil {
			return nil, fmt.Errorf("scan station row: %w", err)
		}

		if rackID.Valid {
			v := int(rackID.Int64)
			s.RackID = &v
		}
		s.RetailPrice, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parse retail price %q for opis_id=%d: %w", price, s.OpisID, err)
		}
		s.Latitude = lat.Float64
		s.Longitude = lon.Float64

		stations = append(stations, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("station row iteration: %w", err)
	}

	return stations, nil
}
