package dispatch

import (
	"context"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
	"github.com/mrsedghi/deliverino-sub000/internal/notify"
	"github.com/mrsedghi/deliverino-sub000/internal/ports/offertx"
)

// Arbiter settles courier accept/reject actions. Exactly one acceptance may
// ever win per order; every loser observes ErrOfferNotFound.
type Arbiter struct {
	orders           orderRepository
	offers           offerLedger
	sweeper          sweeperPort
	notifier         notify.Gateway
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewArbiter creates and configures an Arbiter.
func NewArbiter(
	orders orderRepository,
	offers offerLedger,
	sweeper sweeperPort,
	notifier notify.Gateway,
	logger logx.Logger,
) *Arbiter {
	return &Arbiter{
		orders:           orders,
		offers:           offers,
		sweeper:          sweeper,
		notifier:         notifier,
		logger:           logger,
		operationTimeout: 3 * time.Second,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// WithNow overrides the clock. Test hook.
func (a *Arbiter) WithNow(now func() time.Time) *Arbiter {
	if now != nil {
		a.now = now
	}
	return a
}

// Accept settles a courier's acceptance. The order assignment, the claim and
// the sibling cancellation run in one transaction; the assignment goes first
// so that racing accepts queue on the order row instead of deadlocking on
// each other's offers. If the order moved on concurrently, or the claim turns
// out empty, everything rolls back and the courier gets the same
// ErrOfferNotFound a late courier would.
func (a *Arbiter) Accept(ctx context.Context, orderID string, courierID int64) (domain.AcceptResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.operationTimeout)
	defer cancel()

	now := a.now()
	var result domain.AcceptResult

	err := a.offers.WithTx(ctx, func(tx offertx.Repository) error {
		ok, err := tx.AssignOrder(ctx, orderID, courierID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.ErrOfferNotFound
		}

		claimed, err := tx.ClaimOffer(ctx, orderID, courierID, now)
		if err != nil {
			return err
		}
		if claimed == nil {
			return apperr.ErrOfferNotFound
		}

		if _, err := tx.CancelSiblingOffers(ctx, orderID, claimed.ID); err != nil {
			return err
		}

		result = domain.AcceptResult{
			OrderID:   orderID,
			CourierID: courierID,
			OfferID:   claimed.ID,
			Status:    domain.OrderAccepted,
		}
		return nil
	})
	if err != nil {
		return domain.AcceptResult{}, err
	}

	a.logger.Info("offer accepted",
		logx.String("event", "offer_accepted"),
		logx.String("order_id", orderID),
		logx.Int64("courier_id", courierID),
		logx.String("offer_id", result.OfferID),
	)

	a.notifyCustomer(ctx, orderID, courierID)

	return result, nil
}

// Reject marks the courier's own live offer as rejected (no-op without one)
// and runs the expiry check immediately instead of waiting for the next
// scheduled sweep.
func (a *Arbiter) Reject(ctx context.Context, orderID string, courierID int64) error {
	ctx, cancel := context.WithTimeout(ctx, a.operationTimeout)
	defer cancel()

	rejected, err := a.offers.RejectLive(ctx, orderID, courierID, a.now())
	if err != nil {
		return err
	}

	a.logger.Info("offer rejected",
		logx.String("event", "offer_rejected"),
		logx.String("order_id", orderID),
		logx.Int64("courier_id", courierID),
		logx.Any("had_live_offer", rejected),
	)

	_, err = a.sweeper.Sweep(ctx, orderID)
	return err
}

func (a *Arbiter) notifyCustomer(ctx context.Context, orderID string, courierID int64) {
	o, err := a.orders.Get(ctx, orderID)
	if err != nil || o == nil {
		a.logger.Warn("order reload for customer notice failed",
			logx.String("order_id", orderID),
			logx.Err(err),
		)
		return
	}
	err = a.notifier.NotifyCustomer(ctx, o.CustomerID, notify.StatusNotice{
		OrderID:   orderID,
		Status:    domain.OrderAccepted,
		CourierID: &courierID,
		At:        a.now(),
	})
	if err != nil {
		a.logger.Warn("customer notify failed",
			logx.String("order_id", orderID),
			logx.Err(err),
		)
	}
}
