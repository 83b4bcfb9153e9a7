package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsedghi/deliverino-sub000/internal/apperr"
	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/service/intake"
)

type stubOrderUsecase struct {
	createFn func(ctx context.Context, in intake.NewOrder) (*domain.Order, error)
	getFn    func(ctx context.Context, id string) (*domain.Order, []domain.Offer, error)
}

func (s *stubOrderUsecase) Create(ctx context.Context, in intake.NewOrder) (*domain.Order, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, in)
}

func (s *stubOrderUsecase) Get(ctx context.Context, id string) (*domain.Order, []domain.Offer, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, id)
}

type stubArbiter struct {
	acceptFn func(ctx context.Context, orderID string, courierID int64) (domain.AcceptResult, error)
	rejectFn func(ctx context.Context, orderID string, courierID int64) error
}

func (s *stubArbiter) Accept(ctx context.Context, orderID string, courierID int64) (domain.AcceptResult, error) {
	if s.acceptFn == nil {
		panic("Accept not expected in this test")
	}
	return s.acceptFn(ctx, orderID, courierID)
}

func (s *stubArbiter) Reject(ctx context.Context, orderID string, courierID int64) error {
	if s.rejectFn == nil {
		panic("Reject not expected in this test")
	}
	return s.rejectFn(ctx, orderID, courierID)
}

func requestWithID(method, target, id, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestOrderHandler_Create_OK(t *testing.T) {
	t.Parallel()

	body := `{"customer_id":"cust-1","origin":{"lat":55.75,"lng":37.61},"destination":{"lat":55.7,"lng":37.5},"transport_type":"car"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	uc := &stubOrderUsecase{
		createFn: func(ctx context.Context, in intake.NewOrder) (*domain.Order, error) {
			require.Equal(t, "cust-1", in.CustomerID)
			require.Equal(t, domain.TransportTypeCar, in.TransportType)
			return &domain.Order{
				ID:             "ord-1",
				CustomerID:     in.CustomerID,
				Origin:         in.Origin,
				Destination:    in.Destination,
				DistanceKm:     7.5,
				DurationMin:    11.3,
				Fare:           1020,
				TransportType:  in.TransportType,
				Status:         domain.OrderDispatching,
				SearchRadiusKm: 3,
			}, nil
		},
	}

	h := NewOrderHandler(nil, uc, &stubArbiter{})
	h.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/orders/ord-1", rr.Header().Get("Location"))
	assert.JSONEq(t, `{
        "id": "ord-1",
        "customer_id": "cust-1",
        "origin": {"lat": 55.75, "lng": 37.61},
        "destination": {"lat": 55.7, "lng": 37.5},
        "distance_km": 7.5,
        "duration_min": 11.3,
        "fare": 1020,
        "transport_type": "car",
        "status": "dispatching",
        "search_radius_km": 3
    }`, rr.Body.String())
}

func TestOrderHandler_Create_Invalid(t *testing.T) {
	t.Parallel()

	body := `{"customer_id":""}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	uc := &stubOrderUsecase{
		createFn: func(ctx context.Context, in intake.NewOrder) (*domain.Order, error) {
			return nil, apperr.ErrInvalid
		},
	}

	h := NewOrderHandler(nil, uc, &stubArbiter{})
	h.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_Create_BadJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{"))
	rr := httptest.NewRecorder()

	h := NewOrderHandler(nil, &stubOrderUsecase{}, &stubArbiter{})
	h.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_Get_WithOffers(t *testing.T) {
	t.Parallel()

	exp := time.Date(2025, 6, 1, 12, 0, 45, 0, time.UTC)
	uc := &stubOrderUsecase{
		getFn: func(ctx context.Context, id string) (*domain.Order, []domain.Offer, error) {
			require.Equal(t, "ord-1", id)
			return &domain.Order{ID: id, Status: domain.OrderDispatching},
				[]domain.Offer{{ID: "of-1", OrderID: id, CourierID: 7, Status: domain.OfferOffered, ExpiresAt: exp, CreatedAt: exp.Add(-45 * time.Second)}},
				nil
		},
	}

	rr := httptest.NewRecorder()
	h := NewOrderHandler(nil, uc, &stubArbiter{})
	h.Get(rr, requestWithID(http.MethodGet, "/orders/ord-1", "ord-1", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"offers"`)
	assert.Contains(t, rr.Body.String(), `"courier_id":7`)
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubOrderUsecase{
		getFn: func(ctx context.Context, id string) (*domain.Order, []domain.Offer, error) {
			return nil, nil, apperr.ErrNotFound
		},
	}

	rr := httptest.NewRecorder()
	h := NewOrderHandler(nil, uc, &stubArbiter{})
	h.Get(rr, requestWithID(http.MethodGet, "/orders/missing", "missing", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOrderHandler_Accept_OK(t *testing.T) {
	t.Parallel()

	arb := &stubArbiter{
		acceptFn: func(ctx context.Context, orderID string, courierID int64) (domain.AcceptResult, error) {
			require.Equal(t, "ord-1", orderID)
			require.Equal(t, int64(7), courierID)
			return domain.AcceptResult{OrderID: orderID, CourierID: courierID, OfferID: "of-1", Status: domain.OrderAccepted}, nil
		},
	}

	rr := httptest.NewRecorder()
	h := NewOrderHandler(nil, &stubOrderUsecase{}, arb)
	h.Accept(rr, requestWithID(http.MethodPost, "/orders/ord-1/accept", "ord-1", `{"courier_id":7}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
        "order_id": "ord-1",
        "courier_id": 7,
        "offer_id": "of-1",
        "status": "accepted"
    }`, rr.Body.String())
}

func TestOrderHandler_Accept_OfferNotFound(t *testing.T) {
	t.Parallel()

	arb := &stubArbiter{
		acceptFn: func(ctx context.Context, orderID string, courierID int64) (domain.AcceptResult, error) {
			return domain.AcceptResult{}, apperr.ErrOfferNotFound
		},
	}

	rr := httptest.NewRecorder()
	h := NewOrderHandler(nil, &stubOrderUsecase{}, arb)
	h.Accept(rr, requestWithID(http.MethodPost, "/orders/ord-1/accept", "ord-1", `{"courier_id":7}`))

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestOrderHandler_Accept_BadCourierID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	h := NewOrderHandler(nil, &stubOrderUsecase{}, &stubArbiter{})
	h.Accept(rr, requestWithID(http.MethodPost, "/orders/ord-1/accept", "ord-1", `{"courier_id":0}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_Reject_OK(t *testing.T) {
	t.Parallel()

	var rejected bool
	arb := &stubArbiter{
		rejectFn: func(ctx context.Context, orderID string, courierID int64) error {
			rejected = true
			return nil
		},
	}

	rr := httptest.NewRecorder()
	h := NewOrderHandler(nil, &stubOrderUsecase{}, arb)
	h.Reject(rr, requestWithID(http.MethodPost, "/orders/ord-1/reject", "ord-1", `{"courier_id":7}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, rejected)
}

func TestOrderHandler_Reject_InternalError(t *testing.T) {
	t.Parallel()

	arb := &stubArbiter{
		rejectFn: func(ctx context.Context, orderID string, courierID int64) error {
			return errors.New("db down")
		},
	}

	rr := httptest.NewRecorder()
	h := NewOrderHandler(nil, &stubOrderUsecase{}, arb)
	h.Reject(rr, requestWithID(http.MethodPost, "/orders/ord-1/reject", "ord-1", `{"courier_id":7}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
