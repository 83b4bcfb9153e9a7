// Package locator finds couriers able to reach an order's origin.
package locator

import (
	"context"
	"fmt"
	"sort"

	"github.com/mrsedghi/deliverino-sub000/internal/config"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/geo"
)

// Candidate is a courier within reach of an order's origin, annotated with
// the travel estimate used for ranking.
type Candidate struct {
	Courier    domain.Courier
	DistanceKm float64
	EtaMinutes float64
}

// Service ranks active couriers by estimated time of arrival. Pure read and
// compute; no side effects.
type Service struct {
	repo   courierRepository
	speeds config.Speed
}

// NewService creates a locator Service with the given speed table.
func NewService(r courierRepository, speeds config.Speed) *Service {
	return &Service{repo: r, speeds: speeds}
}

// Locate returns every dispatchable courier within radiusKm of origin,
// sorted ascending by ETA with (distance, courier id) tie-breaks so the
// ordering is deterministic.
func (s *Service) Locate(ctx context.Context, origin domain.Coordinate, radiusKm float64) ([]Candidate, error) {
	couriers, err := s.repo.ListActiveWithLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("locate couriers: %w", err)
	}

	out := make([]Candidate, 0, len(couriers))
	for _, c := range couriers {
		if !c.Dispatchable() {
			continue
		}
		dist := geo.DistanceKm(origin, *c.Location)
		if dist > radiusKm {
			continue
		}
		out = append(out, Candidate{
			Courier:    c,
			DistanceKm: dist,
			EtaMinutes: dist / s.speedFor(c.TransportType) * 60,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EtaMinutes != b.EtaMinutes {
			return a.EtaMinutes < b.EtaMinutes
		}
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		return a.Courier.ID < b.Courier.ID
	})

	return out, nil
}

func (s *Service) speedFor(t domain.CourierTransportType) float64 {
	var v float64
	switch t {
	case domain.TransportTypeFoot:
		v = s.speeds.Foot
	case domain.TransportTypeScooter:
		v = s.speeds.Scooter
	case domain.TransportTypeCar:
		v = s.speeds.Car
	}
	if v <= 0 {
		return s.speeds.Default
	}
	return v
}
