// Package notify defines the outbound notification contract of the dispatch
// engine. Pushes are best-effort: callers log failures and move on.
package notify

import (
	"context"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

// OfferNotice is the payload pushed to a courier's channel when an offer is
// created for them.
type OfferNotice struct {
	OfferID        string  `json:"offer_id"`
	OrderID        string  `json:"order_id"`
	Fare           int64   `json:"fare"`
	DistanceKm     float64 `json:"distance_km"`
	OriginLat      float64 `json:"origin_lat"`
	OriginLng      float64 `json:"origin_lng"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLng float64 `json:"destination_lng"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// StatusNotice is the payload pushed to a customer's channel when their
// order changes state.
type StatusNotice struct {
	OrderID   string             `json:"order_id"`
	Status    domain.OrderStatus `json:"status"`
	CourierID *int64             `json:"courier_id,omitempty"`
	At        time.Time          `json:"at"`
}

// Gateway pushes dispatch events to courier and customer channels.
// Implementations must tolerate the channel being unavailable; an error is
// informational only and is never propagated past the caller's log line.
type Gateway interface {
	NotifyCourier(ctx context.Context, courierID int64, n OfferNotice) error
	NotifyCustomer(ctx context.Context, customerID string, n StatusNotice) error
}
