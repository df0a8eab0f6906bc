package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/riftbikes/rift_storefront/internal/adapter/logger"
	"github.com/riftbikes/rift_storefront/internal/config"
	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDrive() map[string]interface{} {
	return map[string]interface{}{
		"bikeId":        9,
		"name":          "Jane Rider",
		"email":         "jane@example.com",
		"phone":         "07700900123",
		"preferredDate": "2026-11-02",
		"preferredTime": "10:00",
	}
}

func TestRateLimitExhaustsWindow(t *testing.T) {
	env := newTestEnv(t, envOptions{rateLimit: &config.RateLimit{Requests: 2, Window: time.Minute}})

	for i := 0; i < 2; i++ {
		w := env.do(http.MethodPost, "/test-drive", testDrive())
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := env.do(http.MethodPost, "/test-drive", testDrive())
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.InDelta(t, 60, body.RetryAfter, 1)

	// other routes keep their own budget
	w = env.do(http.MethodPost, "/orders", map[string]interface{}{"bikeId": 9, "totalPrice": 4700})
	assert.Equal(t, http.StatusCreated, w.Code)

	env.redis.FastForward(time.Minute + time.Second)
	w = env.do(http.MethodPost, "/test-drive", testDrive())
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	env := newTestEnv(t, envOptions{rateLimit: &config.RateLimit{Requests: 1, Window: time.Minute}})
	env.redis.Close()

	for i := 0; i < 3; i++ {
		w := env.do(http.MethodPost, "/test-drive", testDrive())
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}

func TestRequestID(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := env.do(http.MethodGet, "/health", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = env.do(http.MethodGet, "/health", nil, "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestJWTTokenService(t *testing.T) {
	tokens := NewJWTTokenService(testSecret, time.Hour, logger.NewNopLogger())

	token, err := tokens.CreateToken("ops@riftbikes.co.uk", domain.Admin)
	require.NoError(t, err)

	payload, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@riftbikes.co.uk", payload.Subject)
	assert.Equal(t, domain.Admin, payload.Role)

	forged, err := NewJWTTokenService("other-secret", time.Hour, logger.NewNopLogger()).CreateToken("x", domain.Admin)
	require.NoError(t, err)
	_, err = tokens.VerifyToken(forged)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	expired, err := NewJWTTokenService(testSecret, -time.Minute, logger.NewNopLogger()).CreateToken("x", domain.Admin)
	require.NoError(t, err)
	_, err = tokens.VerifyToken(expired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "x", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.VerifyToken(none)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "x", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = tokens.VerifyToken(noRole)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	env.do(http.MethodGet, "/bikes", nil)
	w := env.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/bikes",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `catalog_fallback_total{reason="empty"} 1`)
}

func TestCORSCredentials(t *testing.T) {
	for _, origins := range []string{"*", " , ", "http://localhost:3000,*"} {
		env := newTestEnv(t, envOptions{origins: origins})
		w := env.do(http.MethodGet, "/health", nil, "Origin", "http://shop.example.com")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), origins)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"), origins)
	}

	env := newTestEnv(t, envOptions{origins: "http://localhost:3000"})
	w := env.do(http.MethodGet, "/health", nil, "Origin", "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
