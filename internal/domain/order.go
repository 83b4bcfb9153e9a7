package domain

import "time"

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Order represents one delivery request. Fare, distance and duration are
// computed by the routing collaborator at creation time and never change.
type Order struct {
	ID            string
	CustomerID    string
	Origin        Coordinate
	Destination   Coordinate
	DistanceKm    float64
	DurationMin   float64
	Fare          int64 // minor currency units
	TransportType CourierTransportType
	Status        OrderStatus
	CourierID     *int64
	// SearchRadiusKm is the radius used by the most recent dispatch cycle.
	// The expiry scanner reads it back to expand the search monotonically.
	SearchRadiusKm float64
	Paid           bool
	PaidAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DispatchResult - struct representing the outcome of one dispatch cycle.
type DispatchResult struct {
	OrderID       string
	RadiusKm      float64
	OffersCreated int
	OfferIDs      []string
	Escalated     bool
}

// AcceptResult - struct representing the outcome of a settled acceptance.
type AcceptResult struct {
	OrderID   string
	CourierID int64
	OfferID   string
	Status    OrderStatus
}

// SweepResult - struct representing the outcome of one expiry sweep.
type SweepResult struct {
	OrderID      string
	ExpiredCount int64
	Retried      bool
	Escalated    bool
}
