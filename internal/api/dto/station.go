package dto

type StationResponse struct {
	OpisID      int     `json:"opis_id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	RackID      *int    `json:"rack_id"`
	RetailPrice float64 `json:"retail_price"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsGeocoded  bool    `json:"is_geocoded"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
