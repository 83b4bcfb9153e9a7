package handlers

import (
	"context"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/service/courier"
	"github.com/mrsedghi/deliverino-sub000/internal/service/dispatch"
	"github.com/mrsedghi/deliverino-sub000/internal/service/intake"
)

type courierUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error)
	ReportLocation(ctx context.Context, id int64, loc domain.Coordinate) error
}

// NewCourierUsecase wires a courier.Service into a courierUsecase.
func NewCourierUsecase(service *courier.Service) courierUsecase {
	return service
}

type orderUsecase interface {
	Create(ctx context.Context, in intake.NewOrder) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, []domain.Offer, error)
}

// NewOrderUsecase wires an intake.Service into an orderUsecase.
func NewOrderUsecase(service *intake.Service) orderUsecase {
	return service
}

type arbiterUsecase interface {
	Accept(ctx context.Context, orderID string, courierID int64) (domain.AcceptResult, error)
	Reject(ctx context.Context, orderID string, courierID int64) error
}

// NewArbiterUsecase wires a dispatch.Arbiter into an arbiterUsecase.
func NewArbiterUsecase(a *dispatch.Arbiter) arbiterUsecase {
	return a
}
