package domain

import "github.com/shopspring/decimal"

// Request-level defaults for vehicle fuel parameters.
const (
	DefaultVehicleMPG      = 10
	DefaultTankCapacityGal = 50
)

// DeviationRadiusMiles is the maximum allowed distance between a route
// sample point and a fuel station for that station to count as
// reachable from the route at that point.
const DeviationRadiusMiles = 20.0

// VehicleParams are the fuel parameters of the vehicle being planned
// for. MPG and TankCapacity must be positive; InitialFuel must be
// positive and is not checked against TankCapacity (overfilled starts
// are accepted as given).
type VehicleParams struct {
	MPG          decimal.Decimal
	TankCapacity decimal.Decimal
	InitialFuel  decimal.Decimal
}

// MaxRange is the mileage of a full tank.
func (v VehicleParams) MaxRange() decimal.Decimal {
	return v.MPG.Mul(v.TankCapacity)
}
