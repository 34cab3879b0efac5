package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"strings"
)

// Degrees added to every side of the route's extent before querying the
// station catalog. Keeps the candidate set small without risking the
// 20-mile deviation radius clipping at the box edge.
const candidateBoxMarginDegrees = 1.0

type OptimizeRouteRequest struct {
	StartLocation string
	EndLocation   string
	Vehicle       domain.VehicleParams
}

type OptimizeRouteResult struct {
	StartLocation      string
	EndLocation        string
	TotalDistanceMiles float64
	Vehicle            domain.VehicleParams
	Plan               *domain.RefuelPlan
	RoutePolyline      string
}

// OptimizeRoute geocodes both endpoints, fetches the road route, and
// runs the refuel planner against the geocoded stations near the route.
//
// Upstream failures (geocoding, routing, catalog reads) are wrapped in
// a DependencyError naming the collaborator; an impossible trip
// surfaces as ErrRouteInfeasible. The computation is synchronous and
// deterministic for a given station snapshot.
func OptimizeRoute(
	ctx context.Context,
	req OptimizeRouteRequest,
	repo ports.StationRepository,
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
) (*OptimizeRouteResult, error) {
	start, err := geocoder.Geocode(ctx, req.StartLocation)
	if err != nil {
		return nil, &DependencyError{Dependency: "geocoding", Err: fmt.Errorf("start location %q: %w", req.StartLocation, err)}
	}

	end, err := geocoder.Geocode(ctx, req.EndLocation)
	if err != nil {
		return nil, &DependencyError{Dependency: "geocoding", Err: fmt.Errorf("end location %q: %w", req.EndLocation, err)}
	}

	route, err := routes.GetRoute(ctx, start, end)
	if err != nil {
		return nil, &DependencyError{Dependency: "routing", Err: err}
	}

	path := domain.BuildRoutePath(route.Points)

	// Narrow the catalog to stations plausibly near the route before the
	// planner runs per-sample distance checks. An empty candidate set is
	// fine when the trip needs no stop.
	candidates := []domain.FuelStation{}
	if box, ok := path.BoundingBox(candidateBoxMarginDegrees); ok {
		candidates, err = repo.StationsInBox(ctx, box)
		if err != nil {
			return nil, &DependencyError{Dependency: "station catalog", Err: err}
		}
	}

	plan, err := PlanRefuelStops(route.DistanceMiles, req.Vehicle, path, candidates)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	return &OptimizeRouteResult{
		StartLocation:      req.StartLocation,
		EndLocation:        req.EndLocation,
		TotalDistanceMiles: round2(route.DistanceMiles),
		Vehicle:            req.Vehicle,
		Plan:               plan,
		RoutePolyline:      route.Polyline,
	}, nil
}

// RouteHash identifies a start/end pair regardless of case and
// surrounding whitespace. Used as the persistence and cache key.
func RouteHash(startLocation, endLocation string) string {
	key := strings.ToLower(strings.TrimSpace(startLocation)) + "-" +
		strings.ToLower(strings.TrimSpace(endLocation))
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
