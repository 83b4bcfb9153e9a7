package handlers

import (
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

type coordinateDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type createCourierRequest struct {
	Name          string                      `json:"name"`
	Phone         string                      `json:"phone"`
	Status        domain.CourierStatus        `json:"status,omitempty"`
	TransportType domain.CourierTransportType `json:"transport_type,omitempty"`
}

type updateCourierRequest struct {
	Name          *string                      `json:"name,omitempty"`
	Phone         *string                      `json:"phone,omitempty"`
	Status        *domain.CourierStatus        `json:"status,omitempty"`
	TransportType *domain.CourierTransportType `json:"transport_type,omitempty"`
}

type courierDTO struct {
	ID            int64                       `json:"id"`
	Name          string                      `json:"name"`
	Phone         string                      `json:"phone"`
	Status        domain.CourierStatus        `json:"status"`
	TransportType domain.CourierTransportType `json:"transport_type"`
	Rating        float64                     `json:"rating"`
	Location      *coordinateDTO              `json:"location,omitempty"`
	LocatedAt     *time.Time                  `json:"located_at,omitempty"`
}

type reportLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type createOrderRequest struct {
	CustomerID    string                      `json:"customer_id"`
	Origin        coordinateDTO               `json:"origin"`
	Destination   coordinateDTO               `json:"destination"`
	TransportType domain.CourierTransportType `json:"transport_type,omitempty"`
}

type offerDTO struct {
	ID        string             `json:"id"`
	CourierID int64              `json:"courier_id"`
	Status    domain.OfferStatus `json:"status"`
	ExpiresAt time.Time          `json:"expires_at"`
	CreatedAt time.Time          `json:"created_at"`
}

type orderDTO struct {
	ID             string                      `json:"id"`
	CustomerID     string                      `json:"customer_id"`
	Origin         coordinateDTO               `json:"origin"`
	Destination    coordinateDTO               `json:"destination"`
	DistanceKm     float64                     `json:"distance_km"`
	DurationMin    float64                     `json:"duration_min"`
	Fare           int64                       `json:"fare"`
	TransportType  domain.CourierTransportType `json:"transport_type"`
	Status         domain.OrderStatus          `json:"status"`
	CourierID      *int64                      `json:"courier_id,omitempty"`
	SearchRadiusKm float64                     `json:"search_radius_km"`
	Offers         []offerDTO                  `json:"offers,omitempty"`
}

type courierActionRequest struct {
	CourierID int64 `json:"courier_id"`
}

type acceptResponse struct {
	OrderID   string             `json:"order_id"`
	CourierID int64              `json:"courier_id"`
	OfferID   string             `json:"offer_id"`
	Status    domain.OrderStatus `json:"status"`
}
