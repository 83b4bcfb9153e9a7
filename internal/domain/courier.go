package domain

import "time"

type (
	// CourierStatus represents the availability status of a courier.
	CourierStatus string
	// CourierTransportType represents the transport type of a courier.
	CourierTransportType string
)

// Courier represents a delivery courier and their live availability.
type Courier struct {
	ID            int64
	Name          string
	Phone         string
	Status        CourierStatus
	TransportType CourierTransportType
	Rating        float64
	// Location is nil until the courier reports a position for the first time.
	Location  *Coordinate
	LocatedAt *time.Time
}

// PartialCourierUpdate carries optional fields to update a courier.
// A nil field means “do not change” that attribute.
type PartialCourierUpdate struct {
	ID            int64
	Name          *string
	Phone         *string
	Status        *CourierStatus
	TransportType *CourierTransportType
}

// Dispatchable reports whether the courier can receive offers: online with a
// known position.
func (c Courier) Dispatchable() bool {
	return c.Status == CourierAvailable && c.Location != nil
}
