package ports

import (
	"context"
	"errors"
	"fuel-route-service/internal/domain"
)

// Returned by a RouteProvider when no road route connects the points.
var ErrNoRoute = errors.New("no route found")

// A road route between two points: total driving distance, the encoded
// polyline as returned by the provider, and its decoded sample points.
type RouteResult struct {
	DistanceMiles float64
	Polyline      string
	Points        []domain.Coordinates
}

// Contract for fetching a driving route from an external routing service.
type RouteProvider interface {
	// Return the driving route from start to end.
	GetRoute(ctx context.Context, start, end domain.Coordinates) (RouteResult, error)
}
