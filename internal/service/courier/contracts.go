//go:generate mockgen -source=contracts.go -destination=courier_mocks_test.go -package=courier

package courier

import (
	"context"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

// courierRepository defines storage operations required by the business layer.
type courierRepository interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	Create(ctx context.Context, c *domain.Courier) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error)
	UpdateLocation(ctx context.Context, id int64, loc domain.Coordinate, at time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CourierStatus) (bool, error)
}
