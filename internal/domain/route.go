package domain

// RoutePath is the sampled coordinate sequence of a road route together
// with a cumulative-distance profile: Cumulative[i] is the great-circle
// mileage from the route start to Points[i], with Cumulative[0] == 0.
// The sequence is ordered and immutable once built.
type RoutePath struct {
	Points     []Coordinates
	Cumulative []float64
}

// BuildRoutePath computes the cumulative-distance profile over an
// ordered coordinate sequence in a single O(N) pass.
func BuildRoutePath(points []Coordinates) RoutePath {
	cumulative := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Haversine(points[i-1], points[i])
		cumulative[i] = total
	}
	return RoutePath{Points: points, Cumulative: cumulative}
}

// ProfileLength is the mileage of the sampled profile (0 when empty).
// The routing provider's reported total distance is authoritative for
// planning; this exists for diagnostics.
func (p RoutePath) ProfileLength() float64 {
	if len(p.Cumulative) == 0 {
		return 0
	}
	return p.Cumulative[len(p.Cumulative)-1]
}

// BoundingBox is an inclusive latitude/longitude rectangle.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (b BoundingBox) Contains(c Coordinates) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lon >= b.MinLon && c.Lon <= b.MaxLon
}

// BoundingBox returns the extent of the route expanded by marginDegrees
// on every side. The second return value is false for an empty path.
func (p RoutePath) BoundingBox(marginDegrees float64) (BoundingBox, bool) {
	if len(p.Points) == 0 {
		return BoundingBox{}, false
	}

	box := BoundingBox{
		MinLat: p.Points[0].Lat,
		MaxLat: p.Points[0].Lat,
		MinLon: p.Points[0].Lon,
		MaxLon: p.Points[0].Lon,
	}
	for _, pt := range p.Points[1:] {
		if pt.Lat < box.MinLat {
			box.MinLat = pt.Lat
		}
		if pt.Lat > box.MaxLat {
			box.MaxLat = pt.Lat
		}
		if pt.Lon < box.MinLon {
			box.MinLon = pt.Lon
		}
		if pt.Lon > box.MaxLon {
			box.MaxLon = pt.Lon
		}
	}

	box.MinLat -= marginDegrees
	box.MaxLat += marginDegrees
	box.MinLon -= marginDegrees
	box.MaxLon += marginDegrees
	return box, true
}
