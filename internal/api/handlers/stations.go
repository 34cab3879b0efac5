package handlers

import (
	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/ports"
	"log"
	"net/http"
)

// StationHandler exposes read-only station catalog endpoints.
type StationHandler struct {
	Repo ports.StationRepository
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stations, err := h.Repo.ListStations(r.Context())
	if err != nil {
		log.Printf("list stations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, s := range stations {
		res.Stations = append(res.Stations, dto.StationResponse{
			OpisID:      s.OpisID,
			Name:        s.Name,
			Address:     s.Address,
			City:        s.City,
			State:       s.State,
			RackID:      s.RackID,
			RetailPrice: s.RetailPrice.InexactFloat64(),
			Latitude:    s.Latitude,
			Longitude:   s.Longitude,
			IsGeocoded:  s.IsGeocoded,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
