package osm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// NominatimGeocoder implements the Geocoder port against the public
// Nominatim search API. Safe for concurrent use.
type NominatimGeocoder struct {
	session *http.Client
	baseURL string
}

func NewNominatimGeocoder() *NominatimGeocoder {
	return &NominatimGeocoder{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://nominatim.openstreetmap.org",
	}
}

// Nominatim returns numeric fields as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a location string to coordinates via /search.
// A 429 maps to ports.ErrRateLimited and an empty result set to
// ports.ErrNoResults so callers can tell the two apart.
func (n *NominatimGeocoder) Geocode(ctx context.Context, location string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	if location == "" {
		return domain.Coordinates{}, errors.New("geocode: location must be non-empty")
	}

	req, err := newRequest(ctx, n.baseURL+"/search")
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode: %w", err)
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("format", "json")
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := do(n.session, req)
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusTooManyRequests {
			return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", location, ports.ErrRateLimited)
		}
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", location, err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", location, err)
	}

	if len(decoded) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", location, ports.ErrNoResults)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse latitude %q: %w", location, decoded[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse longitude %q: %w", location, decoded[0].Lon, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
