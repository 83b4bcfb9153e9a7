package domain

import "time"

// OfferStatus represents the status of an offer.
type OfferStatus string

// Offer represents one courier's time-boxed invitation to take one order.
// Offers are never deleted; settled offers remain as an audit trail.
type Offer struct {
	ID        string
	OrderID   string
	CourierID int64
	Status    OfferStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Live reports whether the offer can still be accepted at the given instant.
func (o Offer) Live(now time.Time) bool {
	return o.Status == OfferOffered && o.ExpiresAt.After(now)
}

// Open reports whether the offer still counts against the order: a courier
// may yet act on it or already holds it.
func (o Offer) Open() bool {
	return o.Status == OfferOffered || o.Status == OfferAccepted
}
