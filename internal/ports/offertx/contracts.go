package offertx

import (
	"context"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

// Repository is the transactional surface of the offer store used by the
// acceptance path. All three steps run inside one transaction so that a
// failed order assignment rolls the claim back.
type Repository interface {
	// ClaimOffer atomically moves the live offer for (order, courier) from
	// offered to accepted. Returns nil when no live offer exists: expired,
	// already settled and never-offered are indistinguishable on purpose.
	ClaimOffer(ctx context.Context, orderID string, courierID int64, now time.Time) (*domain.Offer, error)

	// CancelSiblingOffers cancels every still-offered offer for the order
	// except the given one and returns the number of offers cancelled.
	CancelSiblingOffers(ctx context.Context, orderID, exceptOfferID string) (int64, error)

	// AssignOrder moves the order to accepted and records the courier,
	// conditional on the order still being dispatching. Returns false when
	// the order moved on concurrently.
	AssignOrder(ctx context.Context, orderID string, courierID int64) (bool, error)
}
