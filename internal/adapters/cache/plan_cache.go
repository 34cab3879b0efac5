package cache

import (
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/services"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// PlanCache keeps recent optimization results in memory so repeated
// requests for the same trip skip the geocoding, routing, and planning
// work. Entries are keyed by the route hash plus the vehicle
// parameters, since those change the plan. Safe for concurrent use.
type PlanCache struct {
	c *gocache.Cache
}

func NewPlanCache(ttl time.Duration) *PlanCache {
	return &PlanCache{c: gocache.New(ttl, 2*ttl)}
}

func planKey(routeHash string, vehicle domain.VehicleParams) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		routeHash,
		vehicle.MPG.String(),
		vehicle.TankCapacity.String(),
		vehicle.InitialFuel.String(),
	)
}

func (p *PlanCache) Get(routeHash string, vehicle domain.VehicleParams) (*services.OptimizeRouteResult, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.c.Get(planKey(routeHash, vehicle))
	if !ok {
		return nil, false
	}
	result, ok := v.(*services.OptimizeRouteResult)
	return result, ok
}

func (p *PlanCache) Put(routeHash string, vehicle domain.VehicleParams, result *services.OptimizeRouteResult) {
	if p == nil {
		return
	}
	p.c.SetDefault(planKey(routeHash, vehicle), result)
}
