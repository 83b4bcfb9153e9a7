package routing

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"github.com/mrsedghi/deliverino-sub000/internal/config"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/geo"
)

// Quote is the immutable routing estimate an order is priced with. Values are
// fixed at order creation and never recomputed.
type Quote struct {
	DistanceKm  float64
	DurationMin float64
	Fare        int64
}

// Quoter produces a routing quote between two points for a transport type.
type Quoter interface {
	Quote(ctx context.Context, origin, dest domain.Coordinate, transport domain.CourierTransportType) (Quote, error)
}

func fareFor(tariff config.Fare, distanceKm, durationMin float64) int64 {
	return tariff.Base +
		int64(math.Round(distanceKm*float64(tariff.PerKm))) +
		int64(math.Round(durationMin*float64(tariff.PerMin)))
}

// MapsGateway is a Quoter backed by the Google Distance Matrix API.
type MapsGateway struct {
	client *maps.Client
	tariff config.Fare
}

// NewMapsGateway creates a Quoter backed by Google Maps. Returns nil when no
// API key is configured, so the container can fall back to the static quoter.
func NewMapsGateway(apiKey string, tariff config.Fare) (*MapsGateway, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("routing: maps client: %w", err)
	}
	return &MapsGateway{client: client, tariff: tariff}, nil
}

func travelMode(t domain.CourierTransportType) maps.Mode {
	switch t {
	case domain.TransportTypeFoot:
		return maps.TravelModeWalking
	case domain.TransportTypeScooter:
		return maps.TravelModeBicycling
	default:
		return maps.TravelModeDriving
	}
}

func coordString(c domain.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// Quote asks the Distance Matrix API for the route estimate.
func (g *MapsGateway) Quote(ctx context.Context, origin, dest domain.Coordinate, transport domain.CourierTransportType) (Quote, error) {
	resp, err := g.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{coordString(origin)},
		Destinations: []string{coordString(dest)},
		Mode:         travelMode(transport),
	})
	if err != nil {
		return Quote{}, fmt.Errorf("routing: distance matrix: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return Quote{}, fmt.Errorf("routing: empty distance matrix response")
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return Quote{}, fmt.Errorf("routing: no route: %s", el.Status)
	}

	distanceKm := float64(el.Distance.Meters) / 1000
	durationMin := el.Duration.Minutes()
	return Quote{
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		Fare:        fareFor(g.tariff, distanceKm, durationMin),
	}, nil
}

// StaticQuoter estimates routes great-circle, using the configured per-class
// speeds. It stands in when no Maps API key is set.
type StaticQuoter struct {
	tariff config.Fare
	speeds config.Speed
}

// NewStaticQuoter creates a StaticQuoter.
func NewStaticQuoter(tariff config.Fare, speeds config.Speed) *StaticQuoter {
	return &StaticQuoter{tariff: tariff, speeds: speeds}
}

func (q *StaticQuoter) speedFor(t domain.CourierTransportType) float64 {
	switch t {
	case domain.TransportTypeFoot:
		return q.speeds.Foot
	case domain.TransportTypeScooter:
		return q.speeds.Scooter
	case domain.TransportTypeCar:
		return q.speeds.Car
	default:
		return q.speeds.Default
	}
}

// Quote estimates distance great-circle and duration from the class speed.
func (q *StaticQuoter) Quote(_ context.Context, origin, dest domain.Coordinate, transport domain.CourierTransportType) (Quote, error) {
	speed := q.speedFor(transport)
	if speed <= 0 {
		speed = q.speeds.Default
	}
	distanceKm := geo.DistanceKm(origin, dest)
	durationMin := distanceKm / speed * 60
	return Quote{
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		Fare:        fareFor(q.tariff, distanceKm, durationMin),
	}, nil
}
