package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
	"net/http"
	"time"

	"github.com/twpayne/go-polyline"
)

const milesPerMeter = 0.000621371

// OSRMRouteProvider implements the RouteProvider port against the
// public OSRM routing API. Safe for concurrent use.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMRouteProvider() *OSRMRouteProvider {
	return &OSRMRouteProvider{
		session: &http.Client{Timeout: 20 * time.Second},
		baseURL: "https://router.project-osrm.org",
		profile: "driving",
	}
}

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

// GetRoute fetches the driving route between two coordinates, returning
// the distance in miles, the encoded polyline, and its decoded sample
// points. An empty route set maps to ports.ErrNoRoute.
func (o *OSRMRouteProvider) GetRoute(ctx context.Context, start, end domain.Coordinates) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.GetRoute")(&err)

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=polyline",
		o.baseURL, o.profile,
		start.Lon, start.Lat, end.Lon, end.Lat,
	)

	req, err := newRequest(ctx, endpoint)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: %w", err)
	}

	resp, err := do(o.session, req)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: %w", err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: decode response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("get route: %w", ports.ErrNoRoute)
	}

	route := decoded.Routes[0]

	coords, _, err := polyline.DecodeCoords([]byte(route.Geometry))
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: decode polyline: %w", err)
	}

	points := make([]domain.Coordinates, 0, len(coords))
	for _, c := range coords {
		points = append(points, domain.Coordinates{Lat: c[0], Lon: c[1]})
	}

	return ports.RouteResult{
		DistanceMiles: route.Distance * milesPerMeter,
		Polyline:      route.Geometry,
		Points:        points,
	}, nil
}
