//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

// DispatchPort abstracts the subset of dispatch operations the Processor
// needs when handling order events.
type DispatchPort interface {
	DispatchAtBase(ctx context.Context, orderID string) (domain.DispatchResult, error)
}

type orderStore interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	MarkCancelled(ctx context.Context, id string) (bool, error)
	MarkDelivered(ctx context.Context, id string) (bool, error)
}

type offerStore interface {
	CancelOpen(ctx context.Context, orderID string) (int64, error)
}

type courierStore interface {
	UpdateStatus(ctx context.Context, id int64, status domain.CourierStatus) (bool, error)
}
