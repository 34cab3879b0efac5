package domain

import "github.com/shopspring/decimal"

// FuelStation is a truck stop from the imported OPIS price catalog.
// Coordinates are only meaningful once IsGeocoded is set by the
// geocoding pipeline; ungeocoded stations are invisible to planning.
// Retail price carries three decimal places, as published.
type FuelStation struct {
	OpisID      int
	Name        string
	Address     string
	City        string
	State       string
	RackID      *int
	RetailPrice decimal.Decimal
	Latitude    float64
	Longitude   float64
	IsGeocoded  bool
}

func (s FuelStation) Coord() Coordinates {
	return Coordinates{Lat: s.Latitude, Lon: s.Longitude}
}
