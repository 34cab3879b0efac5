package ports

import (
	"context"
	"errors"
	"fuel-route-service/internal/domain"
)

// Returned by a Geocoder when the provider has no match for a location.
var ErrNoResults = errors.New("no geocoding results")

// Returned by a Geocoder when the provider rejected the call for rate
// limiting; callers may back off and retry.
var ErrRateLimited = errors.New("geocoding rate limited")

// Contract for resolving a free-form location string to coordinates.
type Geocoder interface {
	// Return the coordinates of the best match for location.
	Geocode(ctx context.Context, location string) (domain.Coordinates, error)
}
