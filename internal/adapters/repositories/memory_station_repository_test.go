package repositories

import (
	"context"
	"fuel-route-service/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMemoryStationRepositoryStationsInBox(t *testing.T) {
	inside := domain.FuelStation{
		OpisID: 1, RetailPrice: decimal.RequireFromString("3.500"),
		Latitude: 35, Longitude: -99, IsGeocoded: true,
	}
	outside := domain.FuelStation{
		OpisID: 2, RetailPrice: decimal.RequireFromString("2.000"),
		Latitude: 39, Longitude: -99, IsGeocoded: true,
	}
	ungeocoded := domain.FuelStation{
		OpisID: 3, RetailPrice: decimal.RequireFromString("1.000"),
		Latitude: 35, Longitude: -99, IsGeocoded: false,
	}

	repo := NewMemoryStationRepository([]domain.FuelStation{inside, outside, ungeocoded})

	box := domain.BoundingBox{MinLat: 34, MaxLat: 37, MinLon: -101, MaxLon: -97}
	got, err := repo.StationsInBox(context.Background(), box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].OpisID != 1 {
		t.Fatalf("candidate = %d, want 1: box and geocoded filters must both apply", got[0].OpisID)
	}
}
