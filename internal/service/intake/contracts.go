//go:generate mockgen -source=contracts.go -destination=intake_mocks_test.go -package=intake

package intake

import (
	"context"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/gateway/routing"
)

type orderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
}

type offerLedger interface {
	ListByOrder(ctx context.Context, orderID string) ([]domain.Offer, error)
}

type quoter interface {
	Quote(ctx context.Context, origin, dest domain.Coordinate, transport domain.CourierTransportType) (routing.Quote, error)
}

type dispatcherPort interface {
	DispatchAtBase(ctx context.Context, orderID string) (domain.DispatchResult, error)
}
