package handlers

import (
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/service/intake"
)

func (r createCourierRequest) toModel() *domain.Courier {
	return &domain.Courier{
		Name:          r.Name,
		Phone:         r.Phone,
		Status:        r.Status,
		TransportType: r.TransportType,
	}
}

func (r updateCourierRequest) toModel(id int64) domain.PartialCourierUpdate {
	return domain.PartialCourierUpdate{
		ID:            id,
		Name:          r.Name,
		Phone:         r.Phone,
		Status:        r.Status,
		TransportType: r.TransportType,
	}
}

func courierToResponse(c domain.Courier) courierDTO {
	dto := courierDTO{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Status:        c.Status,
		TransportType: c.TransportType,
		Rating:        c.Rating,
		LocatedAt:     c.LocatedAt,
	}
	if c.Location != nil {
		dto.Location = &coordinateDTO{Lat: c.Location.Lat, Lng: c.Location.Lng}
	}
	return dto
}

func couriersToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierToResponse(c))
	}
	return out
}

func (r createOrderRequest) toModel() intake.NewOrder {
	return intake.NewOrder{
		CustomerID:    r.CustomerID,
		Origin:        domain.Coordinate{Lat: r.Origin.Lat, Lng: r.Origin.Lng},
		Destination:   domain.Coordinate{Lat: r.Destination.Lat, Lng: r.Destination.Lng},
		TransportType: r.TransportType,
	}
}

func orderToResponse(o *domain.Order, offers []domain.Offer) orderDTO {
	dto := orderDTO{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		Origin:         coordinateDTO{Lat: o.Origin.Lat, Lng: o.Origin.Lng},
		Destination:    coordinateDTO{Lat: o.Destination.Lat, Lng: o.Destination.Lng},
		DistanceKm:     o.DistanceKm,
		DurationMin:    o.DurationMin,
		Fare:           o.Fare,
		TransportType:  o.TransportType,
		Status:         o.Status,
		CourierID:      o.CourierID,
		SearchRadiusKm: o.SearchRadiusKm,
	}
	for _, of := range offers {
		dto.Offers = append(dto.Offers, offerDTO{
			ID:        of.ID,
			CourierID: of.CourierID,
			Status:    of.Status,
			ExpiresAt: of.ExpiresAt,
			CreatedAt: of.CreatedAt,
		})
	}
	return dto
}

func acceptToResponse(res domain.AcceptResult) acceptResponse {
	return acceptResponse{
		OrderID:   res.OrderID,
		CourierID: res.CourierID,
		OfferID:   res.OfferID,
		Status:    res.Status,
	}
}
