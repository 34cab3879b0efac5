package dto

type OptimizeRouteRequest struct {
	StartLocation string   `json:"start_location"`
	EndLocation   string   `json:"end_location"`
	VehicleMPG    float64  `json:"vehicle_mpg"`
	TankCapacity  float64  `json:"tank_capacity"`
	InitialFuel   *float64 `json:"initial_fuel"`
}

type FuelStopResponse struct {
	StopOrder   int     `json:"stop_order"`
	StationName string  `json:"station_name"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`

	PricePerGallon float64 `json:"price_per_gallon"`

	MilesFromStart                 float64 `json:"miles_from_start"`
	DistanceTravelledSinceLastStop float64 `json:"distance_travelled_since_last_stop"`

	FuelUsedBeforeStop     float64 `json:"fuel_used_before_stop"`
	FuelRemainingOnArrival float64 `json:"fuel_remaining_on_arrival"`

	GallonsRefilled float64 `json:"gallons_refilled"`
	FuelAfterRefill float64 `json:"fuel_after_refill"`

	SegmentCost    float64 `json:"segment_cost"`
	CumulativeCost float64 `json:"cumulative_cost"`

	DistanceFromRouteMiles float64 `json:"distance_from_route_miles"`
}

type OptimizeRouteResponse struct {
	StartLocation              string             `json:"start_location"`
	EndLocation                string             `json:"end_location"`
	TotalDistanceMiles         float64            `json:"total_distance_miles"`
	TotalStops                 int                `json:"total_stops"`
	VehicleMPG                 float64            `json:"vehicle_mpg"`
	TankCapacity               float64            `json:"tank_capacity"`
	InitialFuel                float64            `json:"initial_fuel"`
	TotalFuelUsed              float64            `json:"total_fuel_used"`
	TotalFuelCost              float64            `json:"total_fuel_cost"`
	FuelRemainingAtDestination float64            `json:"fuel_remaining_at_destination"`
	FuelStops                  []FuelStopResponse `json:"fuel_stops"`
	RoutePolyline              string             `json:"route_polyline"`
}
