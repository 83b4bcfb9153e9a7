package orders

import (
	"context"
	"errors"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
)

// Processor reacts to upstream order lifecycle events.
type Processor struct {
	dispatch DispatchPort
	orders   orderStore
	offers   offerStore
	couriers courierStore
	logger   logx.Logger
	factory  *actionFactory
}

// NewProcessor creates a new orders.Processor.
func NewProcessor(dispatch DispatchPort, orders orderStore, offers offerStore, couriers courierStore, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		dispatch: dispatch,
		orders:   orders,
		offers:   offers,
		couriers: couriers,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onCreated, p.onCanceled, p.onCompleted)
	return p
}

// Handle processes a single orders.Event. Events with an unknown status are
// acknowledged and dropped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if e.OrderID == "" {
		return apperr.ErrInvalid
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	_, err := p.dispatch.DispatchAtBase(ctx, e.OrderID)
	if errors.Is(err, apperr.ErrInvalidState) {
		// redelivered event, the order is already past pending
		return nil
	}
	return err
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	ok, err := p.orders.MarkCancelled(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	cancelled, err := p.offers.CancelOpen(ctx, e.OrderID)
	if err != nil {
		return err
	}
	p.logger.Info("order cancelled by upstream event",
		logx.String("order_id", e.OrderID),
		logx.Int64("offers_cancelled", cancelled),
	)
	return nil
}

func (p *Processor) onCompleted(ctx context.Context, e Event) error {
	o, err := p.orders.Get(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if o == nil {
		return nil
	}
	ok, err := p.orders.MarkDelivered(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if !ok || o.CourierID == nil {
		return nil
	}
	if _, err := p.couriers.UpdateStatus(ctx, *o.CourierID, domain.CourierAvailable); err != nil {
		return err
	}
	return nil
}
