//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch

package dispatch

import (
	"context"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/ports/offertx"
	"github.com/mrsedghi/deliverino-sub000/internal/service/locator"
)

type orderRepository interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	BeginDispatch(ctx context.Context, id string, radiusKm float64) (bool, error)
	MarkEscalated(ctx context.Context, id string) (bool, error)
	ListDispatching(ctx context.Context) ([]string, error)
}

type offerLedger interface {
	Create(ctx context.Context, o *domain.Offer) error
	CountOpen(ctx context.Context, orderID string) (int64, error)
	TriedCourierIDs(ctx context.Context, orderID string) ([]int64, error)
	BulkExpire(ctx context.Context, orderID string, now time.Time) (int64, error)
	RejectLive(ctx context.Context, orderID string, courierID int64, now time.Time) (bool, error)
	WithTx(ctx context.Context, fn func(tx offertx.Repository) error) error
}

type candidateLocator interface {
	Locate(ctx context.Context, origin domain.Coordinate, radiusKm float64) ([]locator.Candidate, error)
}

// dispatcherPort is the retry entry point the scanner calls.
type dispatcherPort interface {
	Dispatch(ctx context.Context, orderID string, radiusKm float64) (domain.DispatchResult, error)
}

// sweeperPort is the expiry check the arbiter triggers right after a reject.
type sweeperPort interface {
	Sweep(ctx context.Context, orderID string) (domain.SweepResult, error)
}

type counter interface {
	Inc()
}
