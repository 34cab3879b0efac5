package services

import (
	"errors"
	"fuel-route-service/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
)

// Approximate miles per degree of longitude at the equator; close
// enough to keep fixture stations within the deviation radius of the
// samples they sit on.
const milesPerDegree = 69.1

// pathWithMarkers builds a route along the equator whose cumulative
// profile is exactly the given mile markers.
func pathWithMarkers(markers ...float64) domain.RoutePath {
	points := make([]domain.Coordinates, len(markers))
	for i, m := range markers {
		points[i] = domain.Coordinates{Lat: 0, Lon: m / milesPerDegree}
	}
	return domain.RoutePath{Points: points, Cumulative: markers}
}

// stationAtMarker places a geocoded station exactly on the sample at
// the given mile marker (deviation 0).
func stationAtMarker(marker float64, opisID int, price string) domain.FuelStation {
	return domain.FuelStation{
		OpisID:      opisID,
		Name:        "Test Stop",
		City:        "Testville",
		State:       "TX",
		RetailPrice: decimal.RequireFromString(price),
		Latitude:    0,
		Longitude:   marker / milesPerDegree,
		IsGeocoded:  true,
	}
}

func vehicle(mpg, tank, initial int64) domain.VehicleParams {
	return domain.VehicleParams{
		MPG:          decimal.NewFromInt(mpg),
		TankCapacity: decimal.NewFromInt(tank),
		InitialFuel:  decimal.NewFromInt(initial),
	}
}

func TestPlanNoStopsWhenDestinationInRange(t *testing.T) {
	path := pathWithMarkers(0, 50, 100, 150)

	plan, err := PlanRefuelStops(150, vehicle(10, 50, 20), path, []domain.FuelStation{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Stops) != 0 {
		t.Fatalf("expected 0 stops, got %d", len(plan.Stops))
	}
	if !plan.TotalFuelUsed.Equal(decimal.NewFromInt(15)) {
		t.Errorf("total fuel used = %s, want 15", plan.TotalFuelUsed)
	}
	if !plan.FuelRemainingAtDestination.Equal(decimal.NewFromInt(5)) {
		t.Errorf("fuel remaining = %s, want 5", plan.FuelRemainingAtDestination)
	}
	if !plan.TotalCost.IsZero() {
		t.Errorf("total cost = %s, want 0", plan.TotalCost)
	}
}

func TestPlanSingleStopBuysExactlyWhatTheTripNeeds(t *testing.T) {
	path := pathWithMarkers(0, 75, 150, 300, 450, 600)
	stations := []domain.FuelStation{stationAtMarker(150, 101, "3.000")}

	// 600 total, range 200 on initial fuel; after the stop at mile 150
	// the remaining 450 fits in the 500-mile full-tank range, so the
	// refill is exactly 450/10 - 5 = 40 gallons.
	plan, err := PlanRefuelStops(600, vehicle(10, 50, 20), path, stations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Stops) != 1 {
		t.Fatalf("expected 1 stop, got %d", len(plan.Stops))
	}

	stop := plan.Stops[0]
	if stop.StopOrder != 1 {
		t.Errorf("stop order = %d, want 1", stop.StopOrder)
	}
	if stop.MilesFromStart != 150 {
		t.Errorf("miles from start = %v, want 150", stop.MilesFromStart)
	}
	if stop.DistanceSinceLastStop != 150 {
		t.Errorf("distance since last stop = %v, want 150", stop.DistanceSinceLastStop)
	}
	if !stop.FuelUsedBeforeStop.Equal(decimal.NewFromInt(15)) {
		t.Errorf("fuel used before stop = %s, want 15", stop.FuelUsedBeforeStop)
	}
	if !stop.FuelRemainingOnArrival.Equal(decimal.NewFromInt(5)) {
		t.Errorf("fuel on arrival = %s, want 5", stop.FuelRemainingOnArrival)
	}
	if !stop.GallonsRefilled.Equal(decimal.NewFromInt(40)) {
		t.Errorf("gallons refilled = %s, want 40", stop.GallonsRefilled)
	}
	if !stop.FuelAfterRefill.Equal(decimal.NewFromInt(45)) {
		t.Errorf("fuel after refill = %s, want 45", stop.FuelAfterRefill)
	}
	if !stop.SegmentCost.Equal(decimal.NewFromInt(120)) {
		t.Errorf("segment cost = %s, want 120", stop.SegmentCost)
	}

	if !plan.TotalCost.Equal(decimal.NewFromInt(120)) {
		t.Errorf("total cost = %s, want 120", plan.TotalCost)
	}
	if !plan.TotalFuelUsed.Equal(decimal.NewFromInt(60)) {
		t.Errorf("total fuel used = %s, want 60", plan.TotalFuelUsed)
	}
	if !plan.FuelRemainingAtDestination.IsZero() {
		t.Errorf("fuel remaining = %s, want 0", plan.FuelRemainingAtDestination)
	}
}

func TestPlanPriceTiePrefersFartherStation(t *testing.T) {
	path := pathWithMarkers(0, 150, 180, 400, 600)
	stations := []domain.FuelStation{
		stationAtMarker(150, 201, "3.000"),
		stationAtMarker(180, 202, "3.000"),
	}

	// Both stations cost the same and both sit within the 200-mile
	// initial range; the farther one wins to reduce stop count.
	plan, err := PlanRefuelStops(600, vehicle(10, 50, 20), path, stations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Stops) == 0 {
		t.Fatal("expected at least one stop")
	}
	if plan.Stops[0].Station.OpisID != 202 {
		t.Fatalf("first stop station = %d, want 202 (mile 180)", plan.Stops[0].Station.OpisID)
	}
	if plan.Stops[0].MilesFromStart != 180 {
		t.Fatalf("first stop mile = %v, want 180", plan.Stops[0].MilesFromStart)
	}
}

func TestPlanInfeasibleWhenNoStationReachable(t *testing.T) {
	path := pathWithMarkers(0, 150, 250, 400, 600)
	// Only station is beyond the 200-mile initial range.
	stations := []domain.FuelStation{stationAtMarker(250, 301, "2.500")}

	_, err := PlanRefuelStops(600, vehicle(10, 50, 20), path, stations)
	if !errors.Is(err, ErrRouteInfeasible) {
		t.Fatalf("error = %v, want ErrRouteInfeasible", err)
	}
}

func TestPlanInfeasibleWithEmptyCandidates(t *testing.T) {
	path := pathWithMarkers(0, 150, 300, 450, 600)

	_, err := PlanRefuelStops(600, vehicle(10, 50, 20), path, nil)
	if !errors.Is(err, ErrRouteInfeasible) {
		t.Fatalf("error = %v, want ErrRouteInfeasible", err)
	}
}

func TestPlanMultiStopPicksCheapestAndKeepsInvariants(t *testing.T) {
	path := pathWithMarkers(0, 100, 150, 180, 400, 600, 750, 900)
	stations := []domain.FuelStation{
		stationAtMarker(150, 401, "3.000"),
		stationAtMarker(180, 402, "3.500"),
		stationAtMarker(400, 403, "2.800"),
		stationAtMarker(600, 404, "3.200"),
	}

	plan, err := PlanRefuelStops(900, vehicle(10, 50, 20), path, stations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(plan.Stops))
	}

	// First leg: only stations 401/402 are in range; 401 is cheaper.
	// The destination is still beyond a full tank, so the tank tops off.
	first := plan.Stops[0]
	if first.Station.OpisID != 401 {
		t.Errorf("first stop station = %d, want 401", first.Station.OpisID)
	}
	if !first.GallonsRefilled.Equal(decimal.NewFromInt(45)) {
		t.Errorf("first refill = %s, want 45", first.GallonsRefilled)
	}
	if !first.SegmentCost.Equal(decimal.NewFromInt(135)) {
		t.Errorf("first segment cost = %s, want 135", first.SegmentCost)
	}

	// Second leg reaches stations 402/403/404; 403 is cheapest, and from
	// mile 400 the remaining 500 fits a full tank, so it buys 25 gallons.
	second := plan.Stops[1]
	if second.Station.OpisID != 403 {
		t.Errorf("second stop station = %d, want 403", second.Station.OpisID)
	}
	if !second.GallonsRefilled.Equal(decimal.NewFromInt(25)) {
		t.Errorf("second refill = %s, want 25", second.GallonsRefilled)
	}
	if !second.SegmentCost.Equal(decimal.NewFromInt(70)) {
		t.Errorf("second segment cost = %s, want 70", second.SegmentCost)
	}

	if !plan.TotalCost.Equal(decimal.NewFromInt(205)) {
		t.Errorf("total cost = %s, want 205", plan.TotalCost)
	}
	if !plan.TotalFuelUsed.Equal(decimal.NewFromInt(90)) {
		t.Errorf("total fuel used = %s, want 90", plan.TotalFuelUsed)
	}
	if !plan.FuelRemainingAtDestination.IsZero() {
		t.Errorf("fuel remaining = %s, want 0", plan.FuelRemainingAtDestination)
	}

	// Structural invariants over the whole stop sequence.
	runningCost := decimal.Zero
	lastMile := 0.0
	for i, stop := range plan.Stops {
		if stop.StopOrder != i+1 {
			t.Errorf("stop %d order = %d, want %d", i, stop.StopOrder, i+1)
		}
		if stop.MilesFromStart <= lastMile {
			t.Errorf("stop %d mile %v not strictly increasing past %v", i, stop.MilesFromStart, lastMile)
		}
		if stop.MilesFromStart > 900 {
			t.Errorf("stop %d mile %v exceeds total distance", i, stop.MilesFromStart)
		}
		if stop.FuelRemainingOnArrival.IsNegative() {
			t.Errorf("stop %d arrival fuel %s is negative", i, stop.FuelRemainingOnArrival)
		}
		if stop.GallonsRefilled.IsNegative() {
			t.Errorf("stop %d refill %s is negative", i, stop.GallonsRefilled)
		}
		runningCost = runningCost.Add(stop.SegmentCost)
		if !stop.CumulativeCost.Equal(runningCost) {
			t.Errorf("stop %d cumulative cost = %s, want %s", i, stop.CumulativeCost, runningCost)
		}
		lastMile = stop.MilesFromStart
	}
}

func TestPlanRejectsNonPositiveVehicleParams(t *testing.T) {
	path := pathWithMarkers(0, 100)

	if _, err := PlanRefuelStops(100, vehicle(0, 50, 20), path, nil); err == nil {
		t.Error("expected error for zero mpg")
	}
	if _, err := PlanRefuelStops(100, vehicle(10, 0, 20), path, nil); err == nil {
		t.Error("expected error for zero tank capacity")
	}
}
