// Package dispatch implements the matching engine: dispatch cycles,
// acceptance arbitration and offer expiry sweeps.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/config"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
	"github.com/mrsedghi/deliverino-sub000/internal/notify"
)

// Dispatcher runs one dispatch cycle: locate candidates, create offers,
// notify couriers, decide order state.
type Dispatcher struct {
	orders           orderRepository
	offers           offerLedger
	locator          candidateLocator
	notifier         notify.Gateway
	cfg              config.Dispatch
	logger           logx.Logger
	offersCreated    counter
	escalations      counter
	operationTimeout time.Duration
	now              func() time.Time
}

// NewDispatcher creates and configures a Dispatcher. Metric counters may be nil.
func NewDispatcher(
	orders orderRepository,
	offers offerLedger,
	loc candidateLocator,
	notifier notify.Gateway,
	cfg config.Dispatch,
	logger logx.Logger,
	offersCreated, escalations counter,
) *Dispatcher {
	return &Dispatcher{
		orders:           orders,
		offers:           offers,
		locator:          loc,
		notifier:         notifier,
		cfg:              cfg,
		logger:           logger,
		offersCreated:    offersCreated,
		escalations:      escalations,
		operationTimeout: 3 * time.Second,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// WithNow overrides the clock. Test hook.
func (d *Dispatcher) WithNow(now func() time.Time) *Dispatcher {
	if now != nil {
		d.now = now
	}
	return d
}

// DispatchAtBase runs a dispatch cycle at the configured base radius.
func (d *Dispatcher) DispatchAtBase(ctx context.Context, orderID string) (domain.DispatchResult, error) {
	return d.Dispatch(ctx, orderID, d.cfg.BaseRadiusKm)
}

// Dispatch runs one dispatch cycle for the order at the given radius.
// The order must be pending or dispatching; anything else fails with
// ErrInvalidState rather than silently proceeding.
func (d *Dispatcher) Dispatch(ctx context.Context, orderID string, radiusKm float64) (domain.DispatchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, d.operationTimeout)
	defer cancel()

	res := domain.DispatchResult{OrderID: orderID, RadiusKm: radiusKm}

	o, err := d.orders.Get(ctx, orderID)
	if err != nil {
		return res, err
	}
	if o == nil {
		return res, apperr.ErrNotFound
	}
	if !o.Status.Dispatchable() {
		return res, fmt.Errorf("%w: order %s is %s", apperr.ErrInvalidState, orderID, o.Status)
	}

	ok, err := d.orders.BeginDispatch(ctx, orderID, radiusKm)
	if err != nil {
		return res, err
	}
	if !ok {
		// settled between the read and the conditional update
		return res, fmt.Errorf("%w: order %s left the dispatchable states", apperr.ErrInvalidState, orderID)
	}

	candidates, err := d.locator.Locate(ctx, o.Origin, radiusKm)
	if err != nil {
		return res, err
	}

	// couriers who already received an offer for this order in an earlier
	// cycle are out of the running, whatever they did with it
	tried, err := d.offers.TriedCourierIDs(ctx, orderID)
	if err != nil {
		return res, err
	}
	if len(tried) > 0 {
		seen := make(map[int64]struct{}, len(tried))
		for _, id := range tried {
			seen[id] = struct{}{}
		}
		fresh := candidates[:0]
		for _, cand := range candidates {
			if _, ok := seen[cand.Courier.ID]; !ok {
				fresh = append(fresh, cand)
			}
		}
		candidates = fresh
	}

	if len(candidates) == 0 {
		return res, d.escalate(ctx, o, &res)
	}

	if len(candidates) > d.cfg.FanOut {
		candidates = candidates[:d.cfg.FanOut]
	}

	expiresAt := d.now().Add(d.cfg.OfferTTL)
	var createErrs int
	for _, cand := range candidates {
		offer := &domain.Offer{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			CourierID: cand.Courier.ID,
			Status:    domain.OfferOffered,
			ExpiresAt: expiresAt,
		}
		if err := d.offers.Create(ctx, offer); err != nil {
			createErrs++
			d.logger.Error("offer create failed",
				logx.String("order_id", o.ID),
				logx.Int64("courier_id", cand.Courier.ID),
				logx.Err(err),
			)
			continue
		}
		res.OffersCreated++
		res.OfferIDs = append(res.OfferIDs, offer.ID)
		if d.offersCreated != nil {
			d.offersCreated.Inc()
		}
		d.pushOffer(ctx, o, offer)
	}

	if res.OffersCreated == 0 && createErrs > 0 {
		return res, fmt.Errorf("dispatch order %s: no offer could be persisted", o.ID)
	}

	d.logger.Info("dispatch cycle completed",
		logx.String("event", "dispatch_cycle"),
		logx.String("order_id", o.ID),
		logx.Float64("radius_km", radiusKm),
		logx.Int("offers_created", res.OffersCreated),
		logx.Time("expires_at", expiresAt),
	)

	return res, nil
}

// escalate marks the order as a terminal dispatch failure. Retried dispatches
// reach this only through the scanner once the max radius is exceeded.
func (d *Dispatcher) escalate(ctx context.Context, o *domain.Order, res *domain.DispatchResult) error {
	ok, err := d.orders.MarkEscalated(ctx, o.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: order %s settled before escalation", apperr.ErrInvalidState, o.ID)
	}
	res.Escalated = true
	if d.escalations != nil {
		d.escalations.Inc()
	}

	d.logger.Warn("order escalated",
		logx.String("event", "order_escalated"),
		logx.String("order_id", o.ID),
		logx.Float64("radius_km", res.RadiusKm),
	)

	if err := d.notifier.NotifyCustomer(ctx, o.CustomerID, notify.StatusNotice{
		OrderID: o.ID,
		Status:  domain.OrderEscalated,
		At:      d.now(),
	}); err != nil {
		d.logger.Warn("customer notify failed",
			logx.String("order_id", o.ID),
			logx.Err(err),
		)
	}
	return nil
}

// pushOffer notifies a courier best-effort; a failed push never aborts the cycle.
func (d *Dispatcher) pushOffer(ctx context.Context, o *domain.Order, offer *domain.Offer) {
	err := d.notifier.NotifyCourier(ctx, offer.CourierID, notify.OfferNotice{
		OfferID:        offer.ID,
		OrderID:        o.ID,
		Fare:           o.Fare,
		DistanceKm:     o.DistanceKm,
		OriginLat:      o.Origin.Lat,
		OriginLng:      o.Origin.Lng,
		DestinationLat: o.Destination.Lat,
		DestinationLng: o.Destination.Lng,
		ExpiresAt:      offer.ExpiresAt,
	})
	if err != nil {
		d.logger.Warn("courier notify failed",
			logx.String("order_id", o.ID),
			logx.Int64("courier_id", offer.CourierID),
			logx.Err(err),
		)
	}
}

var _ dispatcherPort = (*Dispatcher)(nil)
