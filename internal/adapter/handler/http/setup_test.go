package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/riftbikes/rift_storefront/internal/adapter/database"
	"github.com/riftbikes/rift_storefront/internal/adapter/logger"
	metrics "github.com/riftbikes/rift_storefront/internal/adapter/prometheus"
	cache "github.com/riftbikes/rift_storefront/internal/adapter/redis"
	"github.com/riftbikes/rift_storefront/internal/config"
	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"
	"github.com/riftbikes/rift_storefront/internal/core/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type envOptions struct {
	secret     string
	noFallback bool
	sender     ports.NotificationSender
	gateway    ports.PaymentGateway
	rateLimit  *config.RateLimit
	origins    string
}

type testEnv struct {
	t        *testing.T
	engine   *gin.Engine
	store    *database.Store
	notifier *services.NotificationService
	tokens   *JWTTokenService
	redis    *miniredis.Miniredis
}

func newTestEnv(t *testing.T, o envOptions) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNopLogger()
	store, err := database.Open(context.Background(), database.DriverSQLite,
		"file:"+filepath.Join(t.TempDir(), "rift.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	redisAdapter := cache.NewRedisAdapter(client)

	m := metrics.NewPrometheusAdapter()
	validate := services.NewValidator()

	bikeRepo := database.NewBikeRepository(store)
	orderRepo := database.NewOrderRepository(store)

	notifier := services.NewNotificationService(o.sender, log, m, domain.DistributorContacts{
		Email:    "riftbike@outlook.com",
		WhatsApp: "07817174391",
		Phone:    "01985-844563",
	}, "£")
	bikeService := services.NewBikeService(bikeRepo, log, validate, m,
		services.CatalogPolicy{EmptyCatalogFallback: !o.noFallback})
	orderService := services.NewOrderService(orderRepo, bikeService, notifier, log, validate, m, decimal.NewFromInt(500))
	testDriveService := services.NewTestDriveService(database.NewTestDriveRepository(store), log, validate)
	paymentService := services.NewPaymentService(o.gateway, orderRepo, notifier, log, m, "gbp")

	env := &testEnv{t: t, store: store, notifier: notifier, redis: mr}

	var tokenService ports.TokenService
	if o.secret != "" {
		env.tokens = NewJWTTokenService(o.secret, time.Hour, log)
		tokenService = env.tokens
	}

	var limiter gin.HandlerFunc
	if o.rateLimit != nil {
		limiter = RateLimit(redisAdapter, o.rateLimit, log)
	}

	origins := o.origins
	if origins == "" {
		origins = "*"
	}
	router, err := NewRouter(
		&config.HTTP{Env: "test", AllowedOrigins: origins},
		log,
		tokenService,
		limiter,
		m.Handler(),
		Handlers{
			Bike:      NewBikeHandler(bikeService, log, m),
			Order:     NewOrderHandler(orderService, redisAdapter, log, m),
			TestDrive: NewTestDriveHandler(testDriveService, log, m),
			Notify:    NewNotifyHandler(notifier, log, m),
			Component: NewComponentHandler(services.NewComponentService(log), log, m),
			Payment:   NewPaymentHandler(paymentService, log, m),
		},
	)
	require.NoError(t, err)
	env.engine = router.Engine()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		notifier.Wait(ctx)
	})
	return env
}

func (e *testEnv) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.10:41000"
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) adminHeader() []string {
	e.t.Helper()
	if e.tokens == nil {
		return nil
	}
	token, err := e.tokens.CreateToken("ops@riftbikes.co.uk", domain.Admin)
	require.NoError(e.t, err)
	return []string{"Authorization", "Bearer " + token}
}

// createBike posts a bike through the admin API and returns its id.
func (e *testEnv) createBike(name string, price int64) int64 {
	e.t.Helper()
	w := e.do(http.MethodPost, "/bikes", map[string]interface{}{
		"name":        name,
		"description": name + " description",
		"basePrice":   price,
	}, e.adminHeader()...)
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())

	var bike domain.Bike
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &bike))
	return bike.ID
}

func (e *testEnv) waitForNotifications() {
	e.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(e.t, e.notifier.Wait(ctx))
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

type stubSender struct {
	mu    sync.Mutex
	err   error
	sent  []domain.NotificationSummary
	calls int
}

func (s *stubSender) Send(ctx context.Context, summary domain.NotificationSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, summary)
	return nil
}

func (s *stubSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubGateway struct {
	mu       sync.Mutex
	requests []domain.PaymentIntentRequest
	event    *domain.PaymentEvent
}

func (g *stubGateway) CreateIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	return &domain.PaymentIntent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		Amount:       req.Amount,
		Currency:     req.Currency,
		OrderID:      req.OrderID,
	}, nil
}

func (g *stubGateway) ParseEvent(payload []byte, signature string) (*domain.PaymentEvent, error) {
	if signature != "t=1,v1=good" {
		return nil, errors.Join(domain.ErrUnauthorized, errors.New("signature mismatch"))
	}
	return g.event, nil
}
