package ports

import (
	"context"
	"fuel-route-service/internal/domain"
)

// Port: a boundary for retrieving FuelStation entities from a data source.
// Planning reads only geocoded stations through StationsInBox, keeping
// the planner independent of the backing store; the remaining methods
// serve the catalog listing and the geocoding pipeline.
type StationRepository interface {
	// Return all geocoded stations inside the bounding box.
	StationsInBox(ctx context.Context, box domain.BoundingBox) ([]domain.FuelStation, error)

	// Return the whole station catalog.
	ListStations(ctx context.Context) ([]domain.FuelStation, error)

	// Return stations still awaiting geocoding.
	ListUngeocoded(ctx context.Context) ([]domain.FuelStation, error)

	// Record a station's resolved coordinates and mark it geocoded.
	SetCoordinates(ctx context.Context, opisID int, coord domain.Coordinates) error
}
