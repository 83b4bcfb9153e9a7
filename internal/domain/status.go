package domain

import "regexp"

// List of possible courier statuses
const (
	CourierAvailable CourierStatus = "available"
	CourierBusy      CourierStatus = "busy"
	CourierOffline   CourierStatus = "offline"
)

// List of possible courier transport types
const (
	TransportTypeFoot    CourierTransportType = "on_foot"
	TransportTypeScooter CourierTransportType = "scooter"
	TransportTypeCar     CourierTransportType = "car"
)

// Order statuses produced by the dispatch engine
const (
	OrderPending     OrderStatus = "pending"
	OrderDispatching OrderStatus = "dispatching"
	OrderAccepted    OrderStatus = "accepted"
	OrderEscalated   OrderStatus = "escalated"
)

// Order statuses downstream of the dispatch engine (consumed, never produced here)
const (
	OrderInProgress OrderStatus = "in_progress"
	OrderPickedUp   OrderStatus = "picked_up"
	OrderInTransit  OrderStatus = "in_transit"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Offer statuses
const (
	OfferOffered   OfferStatus = "offered"
	OfferAccepted  OfferStatus = "accepted"
	OfferRejected  OfferStatus = "rejected"
	OfferExpired   OfferStatus = "expired"
	OfferCancelled OfferStatus = "cancelled"
)

var allowedCourierStatuses = [...]CourierStatus{
	CourierAvailable, CourierBusy, CourierOffline,
}

var allowedTransportTypes = [...]CourierTransportType{
	TransportTypeFoot, TransportTypeScooter, TransportTypeCar,
}

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderDispatching, OrderAccepted, OrderEscalated,
	OrderInProgress, OrderPickedUp, OrderInTransit, OrderDelivered, OrderCancelled,
}

var allowedOfferStatuses = [...]OfferStatus{
	OfferOffered, OfferAccepted, OfferRejected, OfferExpired, OfferCancelled,
}

// Valid checks if the CourierStatus is valid
func (s CourierStatus) Valid() bool {
	for _, v := range allowedCourierStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the CourierTransportType is valid
func (t CourierTransportType) Valid() bool {
	for _, v := range allowedTransportTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the OfferStatus is valid
func (s OfferStatus) Valid() bool {
	for _, v := range allowedOfferStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Dispatchable reports whether a dispatch cycle may run for an order in this
// status. Any other status must fail loudly, not silently proceed.
func (s OrderStatus) Dispatchable() bool {
	return s == OrderPending || s == OrderDispatching
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{11}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
