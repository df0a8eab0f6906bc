package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/gin-gonic/gin"
)

var errBroken = errors.New("disk I/O error")

type fakeBikeRepo struct {
	bikes  map[int64]*domain.Bike
	nextID int64
	err    error
}

func newFakeBikeRepo(bikes ...*domain.Bike) *fakeBikeRepo {
	r := &fakeBikeRepo{bikes: map[int64]*domain.Bike{}}
	for _, b := range bikes {
		r.bikes[b.ID] = b
		if b.ID > r.nextID {
			r.nextID = b.ID
		}
	}
	return r
}

func (r *fakeBikeRepo) ListBikes(ctx context.Context) ([]*domain.Bike, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []*domain.Bike{}
	for _, b := range r.bikes {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeBikeRepo) GetBikeByID(ctx context.Context, id int64) (*domain.Bike, error) {
	if r.err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, r.err)
	}
	b, ok := r.bikes[id]
	if !ok {
		return nil, fmt.Errorf("bike %d: %w", id, domain.ErrNotFound)
	}
	return b, nil
}

func (r *fakeBikeRepo) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	bike.ID = r.nextID
	bike.CreatedAt = time.Now()
	r.bikes[bike.ID] = bike
	return bike, nil
}

func (r *fakeBikeRepo) UpdateBike(ctx context.Context, bike *domain.Bike) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.bikes[bike.ID]; ok {
		r.bikes[bike.ID] = bike
	}
	return nil
}

func (r *fakeBikeRepo) DeleteBike(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.bikes, id)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order
	nextID int64
	err    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*domain.Order{}}
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	order.ID = r.nextID
	order.CreatedAt = time.Now()
	r.orders[order.ID] = order
	return order, nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	return o, nil
}

func (r *fakeOrderRepo) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Order{}
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	o.Status = status
	return nil
}

type fakeTestDriveRepo struct {
	drives []*domain.TestDrive
}

func (r *fakeTestDriveRepo) CreateTestDrive(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error) {
	td.ID = int64(len(r.drives) + 1)
	r.drives = append(r.drives, td)
	return td, nil
}

func (r *fakeTestDriveRepo) ListTestDrives(ctx context.Context) ([]*domain.TestDrive, error) {
	return r.drives, nil
}

type fakeMetrics struct {
	mu            sync.Mutex
	orders        []string
	notifications []string
	fallbacks     []string
	payments      []string
}

func (m *fakeMetrics) RecordMetrics(c *gin.Context, start time.Time) {}

func (m *fakeMetrics) OrderCreated(paymentMethod string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, paymentMethod)
}

func (m *fakeMetrics) NotificationResult(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, result)
}

func (m *fakeMetrics) CatalogFallback(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks = append(m.fallbacks, reason)
}

func (m *fakeMetrics) PaymentEvent(eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, eventType)
}

func (m *fakeMetrics) notificationResults() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.notifications...)
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []domain.OrderNotification
}

func (n *fakeNotifier) Dispatch(notification domain.OrderNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

type fakeSender struct {
	mu      sync.Mutex
	err     error
	panics  bool
	block   chan struct{}
	summary []domain.NotificationSummary
}

func (s *fakeSender) Send(ctx context.Context, summary domain.NotificationSummary) error {
	if s.block != nil {
		<-s.block
	}
	if s.panics {
		panic("smtp exploded")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = append(s.summary, summary)
	return s.err
}

type fakeGateway struct {
	requests []domain.PaymentIntentRequest
	event    *domain.PaymentEvent
	err      error
}

func (g *fakeGateway) CreateIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.requests = append(g.requests, req)
	return &domain.PaymentIntent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       req.Amount,
		Currency:     req.Currency,
		OrderID:      req.OrderID,
	}, nil
}

func (g *fakeGateway) ParseEvent(payload []byte, signature string) (*domain.PaymentEvent, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.event, nil
}
