package ports

import (
	"context"
	"fuel-route-service/internal/domain"
)

// Port: persistence of completed planning requests. Writes happen after
// a plan is produced and never influence planning itself.
type RouteStore interface {
	// Persist the route summary and its fuel stops, returning the row id.
	SaveRoute(ctx context.Context, record domain.RouteRecord, stops []domain.FuelStop) (int64, error)
}
