package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OptimizeHandler struct {
	Repo       ports.StationRepository
	Geocoder   ports.Geocoder
	Routes     ports.RouteProvider
	RouteStore ports.RouteStore
	PlanCache  *cache.PlanCache
}

// Optimize validates the request, runs the fuel-stop planner, and maps
// domain outcomes onto HTTP statuses: bad input -> 400, infeasible
// route -> 422, upstream provider failure -> 502.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start := strings.TrimSpace(req.StartLocation)
	end := strings.TrimSpace(req.EndLocation)
	if start == "" || end == "" {
		writeError(w, r, http.StatusBadRequest, "start_location and end_location are required")
		return
	}
	if strings.EqualFold(start, end) {
		writeError(w, r, http.StatusBadRequest, "start and end locations cannot be the same")
		return
	}

	mpg := req.VehicleMPG
	if mpg == 0 {
		mpg = domain.DefaultVehicleMPG
	}
	if mpg < 0 {
		writeError(w, r, http.StatusBadRequest, "vehicle_mpg must be positive")
		return
	}

	tank := req.TankCapacity
	if tank == 0 {
		tank = domain.DefaultTankCapacityGal
	}
	if tank < 0 {
		writeError(w, r, http.StatusBadRequest, "tank_capacity must be positive")
		return
	}

	initialFuel := tank
	if req.InitialFuel != nil {
		initialFuel = *req.InitialFuel
	}
	if initialFuel <= 0 {
		writeError(w, r, http.StatusBadRequest, "vehicle cannot start with zero fuel")
		return
	}

	vehicle := domain.VehicleParams{
		MPG:          decimal.NewFromFloat(mpg),
		TankCapacity: decimal.NewFromFloat(tank),
		InitialFuel:  decimal.NewFromFloat(initialFuel),
	}

	routeHash := services.RouteHash(start, end)

	result, ok := h.PlanCache.Get(routeHash, vehicle)
	if !ok {
		svcReq := services.OptimizeRouteRequest{
			StartLocation: start,
			EndLocation:   end,
			Vehicle:       vehicle,
		}

		var err error
		result, err = services.OptimizeRoute(r.Context(), svcReq, h.Repo, h.Geocoder, h.Routes)
		if err != nil {
			h.writeOptimizeError(w, r, err)
			return
		}

		h.PlanCache.Put(routeHash, vehicle, result)
		h.persistRoute(routeHash, result)
	}

	writeJSON(w, r, http.StatusOK, buildOptimizeResponse(result, initialFuel))
}

func (h *OptimizeHandler) writeOptimizeError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("optimize route failed: %v", err)

	if errors.Is(err, services.ErrRouteInfeasible) {
		writeError(w, r, http.StatusUnprocessableEntity, services.ErrRouteInfeasible.Error())
		return
	}

	var depErr *services.DependencyError
	if errors.As(err, &depErr) {
		writeError(w, r, http.StatusBadGateway, depErr.Dependency+" failed")
		return
	}

	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// persistRoute records the planned trip for later inspection. Failures
// are logged only: persistence is bookkeeping, not part of the plan.
func (h *OptimizeHandler) persistRoute(routeHash string, result *services.OptimizeRouteResult) {
	if h.RouteStore == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record := domain.RouteRecord{
		StartLocation:      result.StartLocation,
		EndLocation:        result.EndLocation,
		RouteHash:          routeHash,
		TotalDistanceMiles: result.TotalDistanceMiles,
		TotalFuelCost:      result.Plan.TotalCost.Round(2),
		VehicleMPG:         result.Vehicle.MPG,
		TankCapacity:       result.Vehicle.TankCapacity,
		RoutePolyline:      result.RoutePolyline,
	}

	if _, err := h.RouteStore.SaveRoute(ctx, record, result.Plan.Stops); err != nil {
		log.Printf("persist route failed: hash=%s err=%v", routeHash, err)
	}
}

func buildOptimizeResponse(result *services.OptimizeRouteResult, initialFuel float64) dto.OptimizeRouteResponse {
	plan := result.Plan

	stops := make([]dto.FuelStopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, dto.FuelStopResponse{
			StopOrder:                      s.StopOrder,
			StationName:                    s.Station.Name,
			City:                           s.Station.City,
			State:                          s.Station.State,
			Latitude:                       s.Station.Latitude,
			Longitude:                      s.Station.Longitude,
			PricePerGallon:                 s.Station.RetailPrice.InexactFloat64(),
			MilesFromStart:                 s.MilesFromStart,
			DistanceTravelledSinceLastStop: s.DistanceSinceLastStop,
			FuelUsedBeforeStop:             s.FuelUsedBeforeStop.InexactFloat64(),
			FuelRemainingOnArrival:         s.FuelRemainingOnArrival.InexactFloat64(),
			GallonsRefilled:                s.GallonsRefilled.InexactFloat64(),
			FuelAfterRefill:                s.FuelAfterRefill.InexactFloat64(),
			SegmentCost:                    s.SegmentCost.InexactFloat64(),
			CumulativeCost:                 s.CumulativeCost.InexactFloat64(),
			DistanceFromRouteMiles:         s.DeviationFromRouteMiles,
		})
	}

	return dto.OptimizeRouteResponse{
		StartLocation:              result.StartLocation,
		EndLocation:                result.EndLocation,
		TotalDistanceMiles:         result.TotalDistanceMiles,
		TotalStops:                 len(plan.Stops),
		VehicleMPG:                 result.Vehicle.MPG.InexactFloat64(),
		TankCapacity:               result.Vehicle.TankCapacity.InexactFloat64(),
		InitialFuel:                initialFuel,
		TotalFuelUsed:              plan.TotalFuelUsed.Round(2).InexactFloat64(),
		TotalFuelCost:              plan.TotalCost.Round(2).InexactFloat64(),
		FuelRemainingAtDestination: plan.FuelRemainingAtDestination.Round(2).InexactFloat64(),
		FuelStops:                  stops,
		RoutePolyline:              result.RoutePolyline,
	}
}
