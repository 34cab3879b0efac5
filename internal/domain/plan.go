package domain

import "github.com/shopspring/decimal"

// FuelStop is one planned refueling stop. Fuel volumes and money are
// exact decimals rounded to two places for reporting; distances are
// plain floats.
type FuelStop struct {
	StopOrder int
	Station   FuelStation

	MilesFromStart        float64
	DistanceSinceLastStop float64

	FuelUsedBeforeStop     decimal.Decimal
	FuelRemainingOnArrival decimal.Decimal
	GallonsRefilled        decimal.Decimal
	FuelAfterRefill        decimal.Decimal

	SegmentCost    decimal.Decimal
	CumulativeCost decimal.Decimal

	DeviationFromRouteMiles float64
}

// RefuelPlan is the output of the planner: the ordered stop sequence
// plus trip totals. StopOrder values run 1..len(Stops) without gaps and
// CumulativeCost of the last stop equals TotalCost.
type RefuelPlan struct {
	Stops                      []FuelStop
	TotalFuelUsed              decimal.Decimal
	TotalCost                  decimal.Decimal
	FuelRemainingAtDestination decimal.Decimal
}

// RouteRecord is the persisted summary of one planning request.
type RouteRecord struct {
	StartLocation      string
	EndLocation        string
	RouteHash          string
	TotalDistanceMiles float64
	TotalFuelCost      decimal.Decimal
	VehicleMPG         decimal.Decimal
	TankCapacity       decimal.Decimal
	RoutePolyline      string
}
