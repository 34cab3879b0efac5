package services

import (
	"context"
	"errors"
	"fmt"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
	"log"
	"time"
)

// GeocodeStats summarizes one pipeline run.
type GeocodeStats struct {
	Geocoded int
	Failed   int
}

// GeocodePipeline resolves coordinates for stations imported without
// them. It runs sequentially, paced to one provider call per second,
// and is idempotent: already geocoded stations are never re-queried,
// and stations that exhaust their retries stay ungeocoded for a later
// rerun. A single station's failure never aborts the batch.
type GeocodePipeline struct {
	Repo     ports.StationRepository
	Geocoder ports.Geocoder

	// RequestDelay paces provider calls (default 1s).
	RequestDelay time.Duration
	// MaxRetries is the per-station attempt cap (default 3).
	MaxRetries int
	// Sleep is swappable for tests; defaults to time.Sleep.
	Sleep func(time.Duration)
}

func (p *GeocodePipeline) delay() time.Duration {
	if p.RequestDelay > 0 {
		return p.RequestDelay
	}
	return time.Second
}

func (p *GeocodePipeline) maxRetries() int {
	if p.MaxRetries > 0 {
		return p.MaxRetries
	}
	return 3
}

func (p *GeocodePipeline) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		p.Sleep(d)
		return nil
	}

	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run geocodes every ungeocoded station in the catalog.
func (p *GeocodePipeline) Run(ctx context.Context) (GeocodeStats, error) {
	var stats GeocodeStats

	stations, err := p.Repo.ListUngeocoded(ctx)
	if err != nil {
		return stats, fmt.Errorf("geocode stations: list ungeocoded: %w", err)
	}

	if len(stations) == 0 {
		log.Printf("geocode stations: catalog already geocoded")
		return stats, nil
	}

	total := len(stations)
	for index, station := range stations {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if err := p.geocodeStation(ctx, index+1, total, station); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return stats, err
			}
			stats.Failed++
		} else {
			stats.Geocoded++
		}

		// Provider usage policy: one request per second.
		if err := p.sleep(ctx, p.delay()); err != nil {
			return stats, err
		}
	}

	log.Printf("geocode stations: completed geocoded=%d failed=%d", stats.Geocoded, stats.Failed)
	return stats, nil
}

// geocodeStation attempts one station up to the retry cap. Rate-limit
// responses back off linearly (5s, 10s, 15s); other transient errors
// wait a flat 2s. A definitive no-match fails immediately.
func (p *GeocodePipeline) geocodeStation(ctx context.Context, index, total int, station domain.FuelStation) error {
	query := fmt.Sprintf("%s, %s, USA", station.City, station.State)

	var lastErr error
	for attempt := 1; attempt <= p.maxRetries(); attempt++ {
		coord, err := p.Geocoder.Geocode(ctx, query)
		if err == nil {
			if err := p.Repo.SetCoordinates(ctx, station.OpisID, coord); err != nil {
				return fmt.Errorf("geocode stations: save coordinates for opis_id=%d: %w", station.OpisID, err)
			}
			log.Printf("geocode stations: [%d/%d] ok opis_id=%d name=%q", index, total, station.OpisID, station.Name)
			return nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		if errors.Is(err, ports.ErrNoResults) {
			log.Printf("geocode stations: [%d/%d] no result opis_id=%d name=%q", index, total, station.OpisID, station.Name)
			return err
		}

		if attempt == p.maxRetries() {
			break
		}

		wait := 2 * time.Second
		if errors.Is(err, ports.ErrRateLimited) {
			wait = time.Duration(attempt) * 5 * time.Second
			log.Printf("geocode stations: [%d/%d] rate limited, sleeping %s", index, total, wait)
		}
		if err := p.sleep(ctx, wait); err != nil {
			return err
		}
	}

	log.Printf("geocode stations: [%d/%d] failed opis_id=%d name=%q err=%v", index, total, station.OpisID, station.Name, lastErr)
	return lastErr
}
