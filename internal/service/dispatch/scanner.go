package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/config"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
	"github.com/mrsedghi/deliverino-sub000/internal/notify"
)

// Scanner expires overdue offers and drives the radius-expansion retry loop.
// It is the sole retry path of the engine.
type Scanner struct {
	orders           orderRepository
	offers           offerLedger
	dispatcher       dispatcherPort
	notifier         notify.Gateway
	cfg              config.Dispatch
	logger           logx.Logger
	offersExpired    counter
	escalations      counter
	operationTimeout time.Duration
	now              func() time.Time
}

// NewScanner creates and configures a Scanner. Metric counters may be nil.
func NewScanner(
	orders orderRepository,
	offers offerLedger,
	dispatcher dispatcherPort,
	notifier notify.Gateway,
	cfg config.Dispatch,
	logger logx.Logger,
	offersExpired, escalations counter,
) *Scanner {
	return &Scanner{
		orders:           orders,
		offers:           offers,
		dispatcher:       dispatcher,
		notifier:         notifier,
		cfg:              cfg,
		logger:           logger,
		offersExpired:    offersExpired,
		escalations:      escalations,
		operationTimeout: 5 * time.Second,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// WithNow overrides the clock. Test hook.
func (s *Scanner) WithNow(now func() time.Time) *Scanner {
	if now != nil {
		s.now = now
	}
	return s
}

// Sweep expires overdue offers for one order and, when nothing is left open,
// retries the dispatch at a wider radius or escalates past the maximum.
// A sweep over an order with live offers is a no-op.
func (s *Scanner) Sweep(ctx context.Context, orderID string) (domain.SweepResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	res := domain.SweepResult{OrderID: orderID}

	expired, err := s.offers.BulkExpire(ctx, orderID, s.now())
	if err != nil {
		return res, err
	}
	res.ExpiredCount = expired
	if expired > 0 {
		if s.offersExpired != nil {
			for i := int64(0); i < expired; i++ {
				s.offersExpired.Inc()
			}
		}
		s.logger.Info("offers expired",
			logx.String("event", "offers_expired"),
			logx.String("order_id", orderID),
			logx.Int64("count", expired),
		)
	}

	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return res, err
	}
	if o == nil || o.Status != domain.OrderDispatching {
		// settled or escalated meanwhile; nothing to drive
		return res, nil
	}

	open, err := s.offers.CountOpen(ctx, orderID)
	if err != nil {
		return res, err
	}
	if open > 0 {
		// still waiting on a courier
		return res, nil
	}

	newRadius := o.SearchRadiusKm + s.cfg.RadiusStepKm
	if newRadius > s.cfg.MaxRadiusKm {
		return res, s.escalate(ctx, o, &res)
	}

	dres, err := s.dispatcher.Dispatch(ctx, orderID, newRadius)
	if err != nil {
		return res, fmt.Errorf("sweep retry for order %s: %w", orderID, err)
	}
	res.Retried = true
	res.Escalated = dres.Escalated
	return res, nil
}

// SweepAll runs one sweep over every dispatching order. Per-order failures
// are logged and do not stop the pass.
func (s *Scanner) SweepAll(ctx context.Context) error {
	ids, err := s.orders.ListDispatching(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := s.Sweep(ctx, id); err != nil {
			s.logger.Error("sweep failed",
				logx.String("order_id", id),
				logx.Err(err),
			)
		}
	}
	return nil
}

func (s *Scanner) escalate(ctx context.Context, o *domain.Order, res *domain.SweepResult) error {
	ok, err := s.orders.MarkEscalated(ctx, o.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: order %s settled before escalation", apperr.ErrInvalidState, o.ID)
	}
	res.Escalated = true
	if s.escalations != nil {
		s.escalations.Inc()
	}

	s.logger.Warn("order escalated after max radius",
		logx.String("event", "order_escalated"),
		logx.String("order_id", o.ID),
		logx.Float64("last_radius_km", o.SearchRadiusKm),
		logx.Float64("max_radius_km", s.cfg.MaxRadiusKm),
	)

	if err := s.notifier.NotifyCustomer(ctx, o.CustomerID, notify.StatusNotice{
		OrderID: o.ID,
		Status:  domain.OrderEscalated,
		At:      s.now(),
	}); err != nil {
		s.logger.Warn("customer notify failed",
			logx.String("order_id", o.ID),
			logx.Err(err),
		)
	}
	return nil
}

var _ sweeperPort = (*Scanner)(nil)
