package osm

import (
	"context"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// MockGeocoder resolves locations from a fixed table. Unknown locations
// return Err when set, otherwise ports.ErrNoResults.
type MockGeocoder struct {
	Locations map[string]domain.Coordinates
	Err       error
	Calls     []string
}

func (m *MockGeocoder) Geocode(ctx context.Context, location string) (domain.Coordinates, error) {
	m.Calls = append(m.Calls, location)
	if c, ok := m.Locations[location]; ok {
		return c, nil
	}
	if m.Err != nil {
		return domain.Coordinates{}, m.Err
	}
	return domain.Coordinates{}, fmt.Errorf("mock geocoder: %q: %w", location, ports.ErrNoResults)
}

// MockRouteProvider returns a canned route for every request.
type MockRouteProvider struct {
	Route ports.RouteResult
	Err   error
}

func (m *MockRouteProvider) GetRoute(ctx context.Context, start, end domain.Coordinates) (ports.RouteResult, error) {
	if m.Err != nil {
		return ports.RouteResult{}, m.Err
	}
	return m.Route, nil
}
