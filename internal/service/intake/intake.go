package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/logx"
)

// NewOrder is the input for creating an order.
type NewOrder struct {
	CustomerID    string
	Origin        domain.Coordinate
	Destination   domain.Coordinate
	TransportType domain.CourierTransportType
}

// Service owns the order intake flow: price the route, persist the order,
// kick off the first dispatch cycle.
type Service struct {
	repo             orderRepository
	offers           offerLedger
	quoter           quoter
	dispatcher       dispatcherPort
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewService creates and configures an intake Service.
func NewService(repo orderRepository, offers offerLedger, q quoter, d dispatcherPort, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		offers:           offers,
		quoter:           q,
		dispatcher:       d,
		logger:           logger,
		operationTimeout: 5 * time.Second,
	}
}

func validCoordinate(c domain.Coordinate) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func (s *Service) validate(in *NewOrder) error {
	if strings.TrimSpace(in.CustomerID) == "" {
		return apperr.ErrInvalid
	}
	if !validCoordinate(in.Origin) || !validCoordinate(in.Destination) {
		return apperr.ErrInvalid
	}
	if in.Origin == in.Destination {
		return apperr.ErrInvalid
	}
	if in.TransportType == "" {
		in.TransportType = domain.TransportTypeCar
	}
	if !in.TransportType.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// Create prices the route, persists a pending order and runs the first
// dispatch cycle. The quoted fare, distance and duration are fixed at this
// point and never recomputed.
func (s *Service) Create(ctx context.Context, in NewOrder) (*domain.Order, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	q, err := s.quoter.Quote(ctx, in.Origin, in.Destination, in.TransportType)
	if err != nil {
		return nil, fmt.Errorf("quote order route: %w", err)
	}

	o := &domain.Order{
		ID:            uuid.NewString(),
		CustomerID:    in.CustomerID,
		Origin:        in.Origin,
		Destination:   in.Destination,
		DistanceKm:    q.DistanceKm,
		DurationMin:   q.DurationMin,
		Fare:          q.Fare,
		TransportType: in.TransportType,
		Status:        domain.OrderPending,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		logx.String("order_id", o.ID),
		logx.String("customer_id", o.CustomerID),
		logx.Float64("distance_km", o.DistanceKm),
		logx.Int64("fare", o.Fare),
	)

	res, err := s.dispatcher.DispatchAtBase(ctx, o.ID)
	if err != nil && !errors.Is(err, apperr.ErrInvalidState) {
		return nil, err
	}

	// reflect what the dispatch cycle did without a reread
	if res.Escalated {
		o.Status = domain.OrderEscalated
	} else if res.OffersCreated > 0 {
		o.Status = domain.OrderDispatching
	}
	o.SearchRadiusKm = res.RadiusKm
	return o, nil
}

// Get returns the order with its full offer audit trail.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, []domain.Offer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if o == nil {
		return nil, nil, apperr.ErrNotFound
	}

	offers, err := s.offers.ListByOrder(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return o, offers, nil
}
