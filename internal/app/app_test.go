package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riftbikes/rift_storefront/internal/adapter/logger"
	"github.com/riftbikes/rift_storefront/internal/config"
	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Container {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return &config.Container{
		App:   &config.App{Name: "rift-storefront", Env: "test"},
		Token: &config.Token{Secret: "app-test-secret", Duration: "1h"},
		DB:    &config.DB{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "rift.db")},
		HTTP:  &config.HTTP{Env: "test", Port: "0", URL: "127.0.0.1", AllowedOrigins: "http://localhost:3000"},
		Redis: &config.Redis{},
		Store: &config.Store{
			Currency:             "gbp",
			CurrencySymbol:       "£",
			Deposit:              decimal.NewFromInt(500),
			EmptyCatalogFallback: true,
			DistributorEmail:     "riftbike@outlook.com",
			DistributorWhatsApp:  "07817174391",
			DistributorPhone:     "01985-844563",
		},
		SMTP:      &config.SMTP{},
		Stripe:    &config.Stripe{},
		RateLimit: &config.RateLimit{Requests: 20, Window: time.Minute},
	}
}

func TestNewWiresStorefront(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Redis.Address = mr.Addr()

	application, err := New(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, application.RedisClient)
	require.NotNil(t, application.Tokens)

	engine := application.HTTPRouter.Engine()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	token, err := application.Tokens.CreateToken("ops@riftbikes.co.uk", domain.Admin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/bikes",
		strings.NewReader(`{"name":"RIFT Aero","description":"Carbon aero frame","basePrice":4700}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/test-drive",
		strings.NewReader(`{"bikeId":1,"name":"Jane Rider","email":"jane@example.com","phone":"07700900123","preferredDate":"2026-11-02","preferredTime":"10:00"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "20", w.Header().Get("X-RateLimit-Limit"))

	require.NoError(t, application.Stop(context.Background()))
}

func TestNewWithoutRedis(t *testing.T) {
	application, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	assert.Nil(t, application.RedisClient)

	req := httptest.NewRequest(http.MethodPost, "/test-drive",
		strings.NewReader(`{"bikeId":1,"name":"Jane Rider","email":"jane@example.com","phone":"07700900123","preferredDate":"2026-11-02","preferredTime":"10:00"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	application.HTTPRouter.Engine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))

	require.NoError(t, application.Stop(context.Background()))
}

func TestNewFailsFast(t *testing.T) {
	cfg := testConfig(t)
	cfg.Redis.Address = "127.0.0.1:1"
	_, err := New(context.Background(), cfg)
	assert.Error(t, err)

	cfg = testConfig(t)
	cfg.Token.Duration = "a day"
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)

	cfg = testConfig(t)
	cfg.DB.Driver = "mysql"
	_, err = New(context.Background(), cfg)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTokenServiceNeedsOnlyTokenSettings(t *testing.T) {
	tokens, err := NewTokenService(&config.Token{Secret: "app-test-secret", Duration: "1h"}, logger.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, tokens)

	token, err := tokens.CreateToken("ops@riftbikes.co.uk", domain.Admin)
	require.NoError(t, err)

	// A token minted offline is accepted by a running app with the same secret.
	cfg := testConfig(t)
	application, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer application.Stop(context.Background())

	payload, err := application.Tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@riftbikes.co.uk", payload.Subject)
	assert.Equal(t, domain.Admin, payload.Role)

	tokens, err = NewTokenService(&config.Token{}, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Nil(t, tokens)

	_, err = NewTokenService(&config.Token{Secret: "s", Duration: "a day"}, logger.NewNopLogger())
	assert.Error(t, err)
}
