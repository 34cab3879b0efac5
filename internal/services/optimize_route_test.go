package services

import (
	"context"
	"errors"
	"fuel-route-service/internal/adapters/osm"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"testing"
)

func TestOptimizeRoutePlansAgainstNearbyStations(t *testing.T) {
	// Route runs along the equator; the reported distance is 600 miles.
	routePoints := pathWithMarkers(0, 75, 150, 300, 450, 600).Points

	geocoder := &osm.MockGeocoder{Locations: map[string]domain.Coordinates{
		"Dallas, Texas":    routePoints[0],
		"Phoenix, Arizona": routePoints[len(routePoints)-1],
	}}
	routes := &osm.MockRouteProvider{Route: ports.RouteResult{
		DistanceMiles: 600,
		Polyline:      "mock_polyline",
		Points:        routePoints,
	}}

	onRoute := stationAtMarker(150, 501, "3.000")

	// Cheapest station in the catalog, but 3 degrees off the route:
	// two degrees beyond the one-degree candidate box margin.
	farAway := stationAtMarker(150, 502, "0.010")
	farAway.Latitude = 3

	repo := repositories.NewMemoryStationRepository([]domain.FuelStation{onRoute, farAway})

	req := OptimizeRouteRequest{
		StartLocation: "Dallas, Texas",
		EndLocation:   "Phoenix, Arizona",
		Vehicle:       vehicle(10, 50, 20),
	}

	result, err := OptimizeRoute(context.Background(), req, repo, geocoder, routes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalDistanceMiles != 600 {
		t.Errorf("total distance = %v, want 600", result.TotalDistanceMiles)
	}
	if result.RoutePolyline != "mock_polyline" {
		t.Errorf("polyline = %q, want passthrough of provider value", result.RoutePolyline)
	}
	if len(result.Plan.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(result.Plan.Stops))
	}
	if got := result.Plan.Stops[0].Station.OpisID; got != 501 {
		t.Fatalf("stop station = %d, want 501 (the out-of-box station must be filtered out)", got)
	}
}

func TestOptimizeRouteIgnoresUngeocodedStations(t *testing.T) {
	routePoints := pathWithMarkers(0, 150, 300, 450, 600).Points

	geocoder := &osm.MockGeocoder{Locations: map[string]domain.Coordinates{
		"A": routePoints[0],
		"B": routePoints[len(routePoints)-1],
	}}
	routes := &osm.MockRouteProvider{Route: ports.RouteResult{
		DistanceMiles: 600,
		Points:        routePoints,
	}}

	// The only station on the route was never geocoded, so planning
	// sees no candidates and the trip is infeasible.
	station := stationAtMarker(150, 601, "3.000")
	station.IsGeocoded = false
	repo := repositories.NewMemoryStationRepository([]domain.FuelStation{station})

	req := OptimizeRouteRequest{StartLocation: "A", EndLocation: "B", Vehicle: vehicle(10, 50, 20)}

	_, err := OptimizeRoute(context.Background(), req, repo, geocoder, routes)
	if !errors.Is(err, ErrRouteInfeasible) {
		t.Fatalf("error = %v, want ErrRouteInfeasible", err)
	}
}

func TestOptimizeRouteWrapsGeocodingFailure(t *testing.T) {
	geocoder := &osm.MockGeocoder{Locations: map[string]domain.Coordinates{}}
	routes := &osm.MockRouteProvider{}
	repo := repositories.NewMemoryStationRepository(nil)

	req := OptimizeRouteRequest{StartLocation: "Nowhere", EndLocation: "Elsewhere", Vehicle: vehicle(10, 50, 50)}

	_, err := OptimizeRoute(context.Background(), req, repo, geocoder, routes)
	if err == nil {
		t.Fatal("expected error")
	}

	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("error = %v, want DependencyError", err)
	}
	if depErr.Dependency != "geocoding" {
		t.Fatalf("dependency = %q, want geocoding", depErr.Dependency)
	}
	if !errors.Is(err, ports.ErrNoResults) {
		t.Fatalf("error chain should carry ports.ErrNoResults, got %v", err)
	}
}

func TestOptimizeRouteWrapsRoutingFailure(t *testing.T) {
	geocoder := &osm.MockGeocoder{Locations: map[string]domain.Coordinates{
		"A": {Lat: 0, Lon: 0},
		"B": {Lat: 0, Lon: 1},
	}}
	routes := &osm.MockRouteProvider{Err: ports.ErrNoRoute}
	repo := repositories.NewMemoryStationRepository(nil)

	req := OptimizeRouteRequest{StartLocation: "A", EndLocation: "B", Vehicle: vehicle(10, 50, 50)}

	_, err := OptimizeRoute(context.Background(), req, repo, geocoder, routes)

	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("error = %v, want DependencyError", err)
	}
	if depErr.Dependency != "routing" {
		t.Fatalf("dependency = %q, want routing", depErr.Dependency)
	}
}

func TestRouteHashNormalizesCaseAndWhitespace(t *testing.T) {
	a := RouteHash("Dallas, Texas", "Phoenix, Arizona")
	b := RouteHash("  dallas, texas ", "PHOENIX, ARIZONA")
	if a != b {
		t.Fatalf("hashes differ: %s vs %s", a, b)
	}

	c := RouteHash("Phoenix, Arizona", "Dallas, Texas")
	if a == c {
		t.Fatal("reversed trip should hash differently")
	}
}
