package repositories

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ImportStationsCSV loads the OPIS truck stop price sheet into the
// fuel_stations table. Rows whose OPIS ID already exists are skipped,
// so reruns are idempotent. Newly imported stations start ungeocoded.
//
// Expected header columns: "OPIS Truckstop ID", "Truckstop Name",
// "Address", "City", "State", "Rack ID", "Retail Price".
func ImportStationsCSV(ctx context.Context, db *sql.DB, path string) (int, error) {
	if db == nil {
		return 0, errors.New("import stations: DB is nil")
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("import stations: open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("import stations: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"OPIS Truckstop ID", "Truckstop Name", "Address", "City", "State", "Retail Price"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("import stations: missing column %q", required)
		}
	}

	repo := NewPostgresStationRepository(db)

	imported := 0
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("import stations: read line %d: %w", line, err)
		}

		station, err := stationFromRow(row, col)
		if err != nil {
			return imported, fmt.Errorf("import stations: line %d: %w", line, err)
		}

		if err := repo.UpsertStation(ctx, station); err != nil {
			return imported, fmt.Errorf("import stations: line %d: %w", line, err)
		}
		imported++
	}

	return imported, nil
}

func stationFromRow(row []string, col map[string]int) (domain.FuelStation, error) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	opisID, err := strconv.Atoi(field("OPIS Truckstop ID"))
	if err != nil {
		return domain.FuelStation{}, fmt.Errorf("parse OPIS Truckstop ID: %w", err)
	}

	price, err := decimal.NewFromString(field("Retail Price"))
	if err != nil {
		return domain.FuelStation{}, fmt.Errorf("parse Retail Price: %w", err)
	}

	station := domain.FuelStation{
		OpisID:      opisID,
		Name:        field("Truckstop Name"),
		Address:     field("Address"),
		City:        field("City"),
		State:       field("State"),
		RetailPrice: price,
	}

	if raw := field("Rack ID"); raw != "" {
		rackID, err := strconv.Atoi(raw)
		if err != nil {
			return domain.FuelStation{}, fmt.Errorf("parse Rack ID: %w", err)
		}
		station.RackID = &rackID
	}

	return station, nil
}
