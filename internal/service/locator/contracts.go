//go:generate mockgen -source=contracts.go -destination=locator_mocks_test.go -package=locator

package locator

import (
	"context"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
)

type courierRepository interface {
	ListActiveWithLocation(ctx context.Context) ([]domain.Courier, error)
}
