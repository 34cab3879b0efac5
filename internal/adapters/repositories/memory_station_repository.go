package repositories

import (
	"context"
	"fuel-route-service/internal/domain"
)

// In-memory implementation of the StationRepository port for tests and
// local experimentation. Applies the same geocoded + bounding-box
// filter the SQL query does.
type MemoryStationRepository struct {
	Stations []domain.FuelStation
}

func NewMemoryStationRepository(stations []domain.FuelStation) *MemoryStationRepository {
	return &MemoryStationRepository{Stations: stations}
}

func (m *MemoryStationRepository) StationsInBox(ctx context.Context, box domain.BoundingBox) ([]domain.FuelStation, error) {
	out := []domain.FuelStation{}
	for _, s := range m.Stations {
		if s.IsGeocoded && box.Contains(s.Coord()) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStationRepository) ListStations(ctx context.Context) ([]domain.FuelStation, error) {
	return append([]domain.FuelStation{}, m.Stations...), nil
}

func (m *MemoryStationRepository) ListUngeocoded(ctx context.Context) ([]domain.FuelStation, error) {
	out := []domain.FuelStation{}
	for _, s := range m.Stations {
		if !s.IsGeocoded {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryStationRepository) SetCoordinates(ctx context.Context, opisID int, coord domain.Coordinates) error {
	for i := range m.Stations {
		if m.Stations[i].OpisID == opisID {
			m.Stations[i].Latitude = coord.Lat
			m.Stations[i].Longitude = coord.Lon
			m.Stations[i].IsGeocoded = true
			return nil
		}
	}
	return nil
}
