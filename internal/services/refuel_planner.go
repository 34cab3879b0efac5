package services

import (
	"fmt"
	"fuel-route-service/internal/domain"

	"github.com/shopspring/decimal"
)

// PlanRefuelStops plans fuel stops along a route with a greedy
// cheapest-reachable heuristic.
//
// At each step the vehicle either finishes the trip on its current fuel
// or drives to the cheapest station reachable before the tank runs dry,
// preferring the station farthest along the route among equally priced
// ones (fewer stops). The refill at each stop tops the tank off when
// the destination is still beyond a full tank's range, and otherwise
// buys exactly enough to finish the trip.
//
// The algorithm does not attempt globally cost-optimal stop selection.
// It is deterministic for a given candidate snapshot: remaining price
// ties are broken by lowest station ID.
//
// Money and fuel volumes are exact decimals; route mileage is float.
// totalDistance is the routing provider's figure and is trusted even
// when the sampled profile sums slightly short of it.
func PlanRefuelStops(
	totalDistance float64,
	vehicle domain.VehicleParams,
	path domain.RoutePath,
	candidates []domain.FuelStation,
) (*domain.RefuelPlan, error) {
	if !vehicle.MPG.IsPositive() {
		return nil, fmt.Errorf("plan refuel stops: mpg must be positive, got %s", vehicle.MPG)
	}
	if !vehicle.TankCapacity.IsPositive() {
		return nil, fmt.Errorf("plan refuel stops: tank capacity must be positive, got %s", vehicle.TankCapacity)
	}

	mpg := vehicle.MPG
	maxRange := vehicle.MaxRange()

	position := 0.0
	fuel := vehicle.InitialFuel
	totalFuelUsed := decimal.Zero
	totalCost := decimal.Zero
	stops := []domain.FuelStop{}

	// Each stop advances position to a strictly later route sample, so
	// the sample count bounds the number of iterations. The explicit cap
	// guards against malformed profiles.
	maxIterations := len(path.Cumulative) + 1

	for iteration := 0; iteration < maxIterations; iteration++ {
		remaining := decimal.NewFromFloat(totalDistance - position)
		reachable := fuel.Mul(mpg)

		// Destination reachable on current fuel: consume the final leg and finish.
		if reachable.GreaterThanOrEqual(remaining) {
			used := remaining.Div(mpg)
			totalFuelUsed = totalFuelUsed.Add(used)
			fuel = fuel.Sub(used)

			return &domain.RefuelPlan{
				Stops:                      stops,
				TotalFuelUsed:              totalFuelUsed,
				TotalCost:                  totalCost,
				FuelRemainingAtDestination: fuel,
			}, nil
		}

		reachableLimit := position + reachableMiles(reachable)

		best, ok := selectStation(path, candidates, position, reachableLimit)
		if !ok {
			return nil, fmt.Errorf("plan refuel stops: %w", ErrRouteInfeasible)
		}

		// Drive to the chosen station.
		legDistance := best.marker - position
		fuelUsed := decimal.NewFromFloat(legDistance).Div(mpg)
		fuel = fuel.Sub(fuelUsed)
		totalFuelUsed = totalFuelUsed.Add(fuelUsed)
		position = best.marker

		// Refill: top off while the destination is out of full-tank range,
		// otherwise buy exactly what the rest of the trip needs.
		remaining = decimal.NewFromFloat(totalDistance - position)
		var refill decimal.Decimal
		if remaining.GreaterThan(maxRange) {
			refill = vehicle.TankCapacity.Sub(fuel)
		} else {
			refill = remaining.Div(mpg).Sub(fuel)
			if refill.IsNegative() {
				refill = decimal.Zero
			}
		}

		cost := refill.Mul(best.station.RetailPrice)
		arrivalFuel := fuel
		fuel = fuel.Add(refill)
		totalCost = totalCost.Add(cost)

		stops = append(stops, domain.FuelStop{
			StopOrder:               len(stops) + 1,
			Station:                 *best.station,
			MilesFromStart:          round2(position),
			DistanceSinceLastStop:   round2(legDistance),
			FuelUsedBeforeStop:      fuelUsed.Round(2),
			FuelRemainingOnArrival:  arrivalFuel.Round(2),
			GallonsRefilled:         refill.Round(2),
			FuelAfterRefill:         fuel.Round(2),
			SegmentCost:             cost.Round(2),
			CumulativeCost:          totalCost.Round(2),
			DeviationFromRouteMiles: round2(best.deviation),
		})
	}

	return nil, fmt.Errorf("plan refuel stops: no progress after %d iterations", maxIterations)
}

// A station paired with the route sample it is reachable from.
type reachableStation struct {
	station   *domain.FuelStation
	marker    float64
	deviation float64
}

// selectStation scans every route sample within (position, reachableLimit]
// and every candidate station, and picks the cheapest station within the
// deviation radius of some sample. Price ties prefer the farthest mile
// marker; whatever remains tied goes to the lowest station ID.
func selectStation(
	path domain.RoutePath,
	candidates []domain.FuelStation,
	position float64,
	reachableLimit float64,
) (reachableStation, bool) {
	var best reachableStation
	found := false

	for i, marker := range path.Cumulative {
		if marker <= position || marker > reachableLimit {
			continue
		}
		sample := path.Points[i]

		for si := range candidates {
			station := &candidates[si]
			deviation := domain.Haversine(sample, station.Coord())
			if deviation > domain.DeviationRadiusMiles {
				continue
			}

			cur := reachableStation{station: station, marker: marker, deviation: deviation}
			if !found || betterStop(cur, best) {
				best = cur
				found = true
			}
		}
	}

	return best, found
}

func betterStop(a, b reachableStation) bool {
	if c := a.station.RetailPrice.Cmp(b.station.RetailPrice); c != 0 {
		return c < 0
	}
	if a.marker != b.marker {
		return a.marker > b.marker
	}
	return a.station.OpisID < b.station.OpisID
}

func reachableMiles(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func round2(f float64) float64 {
	v, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return v
}
