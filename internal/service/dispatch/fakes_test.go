package dispatch_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/domain"
	"github.com/mrsedghi/deliverino-sub000/internal/notify"
	"github.com/mrsedghi/deliverino-sub000/internal/ports/offertx"
	"github.com/mrsedghi/deliverino-sub000/internal/service/locator"
)

// fakeStore is an in-memory stand-in for the order and offer repositories.
// Every conditional transition holds the same predicate the SQL does, under
// one mutex, so concurrency tests exercise the same win-or-lose semantics.
type fakeStore struct {
	mu     sync.Mutex
	txMu   sync.Mutex // serializes WithTx bodies, like the order-row lock does in SQL
	orders map[string]*domain.Order
	offers map[string]*domain.Offer

	offerCreateErr map[int64]error // keyed by courier id
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:         make(map[string]*domain.Order),
		offers:         make(map[string]*domain.Offer),
		offerCreateErr: make(map[int64]error),
	}
}

func (f *fakeStore) putOrder(o domain.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := o
	f.orders[o.ID] = &cp
}

func (f *fakeStore) putOffer(o domain.Offer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := o
	f.offers[o.ID] = &cp
}

func (f *fakeStore) order(id string) domain.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.orders[id]
}

func (f *fakeStore) offersByStatus(orderID string, status domain.OfferStatus) []domain.Offer {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Offer
	for _, o := range f.offers {
		if o.OrderID == orderID && o.Status == status {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// orderRepository

func (f *fakeStore) Get(_ context.Context, id string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeStore) BeginDispatch(_ context.Context, id string, radiusKm float64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok || !o.Status.Dispatchable() {
		return false, nil
	}
	o.Status = domain.OrderDispatching
	o.SearchRadiusKm = radiusKm
	return true, nil
}

func (f *fakeStore) MarkEscalated(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok || !o.Status.Dispatchable() {
		return false, nil
	}
	o.Status = domain.OrderEscalated
	return true, nil
}

func (f *fakeStore) ListDispatching(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id, o := range f.orders {
		if o.Status == domain.OrderDispatching {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// offerLedger

func (f *fakeStore) Create(_ context.Context, o *domain.Offer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.offerCreateErr[o.CourierID]; err != nil {
		return err
	}
	cp := *o
	f.offers[o.ID] = &cp
	return nil
}

func (f *fakeStore) TriedCourierIDs(_ context.Context, orderID string) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[int64]struct{}{}
	var ids []int64
	for _, of := range f.offers {
		if of.OrderID != orderID {
			continue
		}
		if _, ok := seen[of.CourierID]; ok {
			continue
		}
		seen[of.CourierID] = struct{}{}
		ids = append(ids, of.CourierID)
	}
	return ids, nil
}

func (f *fakeStore) CountOpen(_ context.Context, orderID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, o := range f.offers {
		if o.OrderID == orderID && o.Open() {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) BulkExpire(_ context.Context, orderID string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, o := range f.offers {
		if o.OrderID == orderID && o.Status == domain.OfferOffered && !o.ExpiresAt.After(now) {
			o.Status = domain.OfferExpired
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) RejectLive(_ context.Context, orderID string, courierID int64, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.offers {
		if o.OrderID == orderID && o.CourierID == courierID && o.Live(now) {
			o.Status = domain.OfferRejected
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(tx offertx.Repository) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	f.mu.Lock()
	snapOrders := make(map[string]domain.Order, len(f.orders))
	for id, o := range f.orders {
		snapOrders[id] = *o
	}
	snapOffers := make(map[string]domain.Offer, len(f.offers))
	for id, o := range f.offers {
		snapOffers[id] = *o
	}
	f.mu.Unlock()

	if err := fn(fakeTx{f}); err != nil {
		// rollback
		f.mu.Lock()
		f.orders = make(map[string]*domain.Order, len(snapOrders))
		for id := range snapOrders {
			cp := snapOrders[id]
			f.orders[id] = &cp
		}
		f.offers = make(map[string]*domain.Offer, len(snapOffers))
		for id := range snapOffers {
			cp := snapOffers[id]
			f.offers[id] = &cp
		}
		f.mu.Unlock()
		return err
	}
	return nil
}

type fakeTx struct{ f *fakeStore }

func (t fakeTx) ClaimOffer(_ context.Context, orderID string, courierID int64, now time.Time) (*domain.Offer, error) {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	for _, o := range t.f.offers {
		if o.OrderID == orderID && o.CourierID == courierID && o.Live(now) {
			o.Status = domain.OfferAccepted
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (t fakeTx) CancelSiblingOffers(_ context.Context, orderID, exceptOfferID string) (int64, error) {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	var n int64
	for _, o := range t.f.offers {
		if o.OrderID == orderID && o.ID != exceptOfferID && o.Status == domain.OfferOffered {
			o.Status = domain.OfferCancelled
			n++
		}
	}
	return n, nil
}

func (t fakeTx) AssignOrder(_ context.Context, orderID string, courierID int64) (bool, error) {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	o, ok := t.f.orders[orderID]
	if !ok || o.Status != domain.OrderDispatching {
		return false, nil
	}
	o.Status = domain.OrderAccepted
	o.CourierID = &courierID
	return true, nil
}

var _ offertx.Repository = fakeTx{}

// stubLocator returns candidates through a radius-aware function.
type stubLocator struct {
	fn func(origin domain.Coordinate, radiusKm float64) []locator.Candidate
}

func (s stubLocator) Locate(_ context.Context, origin domain.Coordinate, radiusKm float64) ([]locator.Candidate, error) {
	if s.fn == nil {
		return nil, nil
	}
	return s.fn(origin, radiusKm), nil
}

// recordingGateway captures pushed notices; optionally fails per courier.
type recordingGateway struct {
	mu           sync.Mutex
	courierPush  []notify.OfferNotice
	customerPush []notify.StatusNotice
	courierErr   map[int64]error
}

func newRecordingGateway() *recordingGateway {
	return &recordingGateway{courierErr: make(map[int64]error)}
}

func (g *recordingGateway) NotifyCourier(_ context.Context, courierID int64, n notify.OfferNotice) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.courierErr[courierID]; err != nil {
		return err
	}
	g.courierPush = append(g.courierPush, n)
	return nil
}

func (g *recordingGateway) NotifyCustomer(_ context.Context, _ string, n notify.StatusNotice) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.customerPush = append(g.customerPush, n)
	return nil
}

func (g *recordingGateway) courierNotices() []notify.OfferNotice {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]notify.OfferNotice(nil), g.courierPush...)
}

func (g *recordingGateway) customerNotices() []notify.StatusNotice {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]notify.StatusNotice(nil), g.customerPush...)
}

// stubSweeper records sweep invocations.
type stubSweeper struct {
	mu    sync.Mutex
	calls []string
}

func (s *stubSweeper) Sweep(_ context.Context, orderID string) (domain.SweepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, orderID)
	return domain.SweepResult{OrderID: orderID}, nil
}
