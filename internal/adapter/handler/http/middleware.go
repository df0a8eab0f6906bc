package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/riftbikes/rift_storefront/internal/config"
	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags each request with the caller's X-Request-ID or a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// AuthMiddleware admits requests carrying a valid bearer token with the
// admin role.
func AuthMiddleware(tokenService ports.TokenService, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeaderKey)
		fields := strings.Fields(header)
		if len(fields) != 2 || strings.ToLower(fields[0]) != authorizationTypeBearer {
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		payload, err := tokenService.VerifyToken(fields[1])
		if err != nil {
			logger.Warn("Rejected bearer token", map[string]interface{}{
				"ip":         c.ClientIP(),
				"request_id": c.GetString(requestIDKey),
			})
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if payload.Role != domain.Admin {
			logger.Warn("Access denied", map[string]interface{}{
				"subject": payload.Subject,
				"role":    string(payload.Role),
			})
			newErrorResponse(c, http.StatusForbidden, "Access denied")
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Next()
	}
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok
}

// AuditAdmin logs every admin write with the subject that made it.
func AuditAdmin(logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.Method == http.MethodGet {
			return
		}
		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(requestIDKey),
		}
		if payload, ok := getAuthPayload(c, authorizationPayloadKey); ok {
			fields["subject"] = payload.Subject
		}
		logger.Info("Admin change", fields)
	}
}

// RateLimit allows cfg.Requests calls per client IP and route in each
// cfg.Window. Counter failures let the request through.
func RateLimit(cache ports.CachePort, cfg *config.RateLimit, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate_limit:" + c.FullPath() + ":" + c.ClientIP()

		count, ttl, err := cache.Incr(c.Request.Context(), key, cfg.Window)
		if err != nil {
			logger.Warn("Rate limiter unavailable", map[string]interface{}{
				"error": err.Error(),
				"route": c.FullPath(),
			})
			c.Next()
			return
		}

		remaining := int64(cfg.Requests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Requests) {
			retryAfter := int(ttl.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			logger.Warn("Rate limit exceeded", map[string]interface{}{
				"ip":    c.ClientIP(),
				"route": c.FullPath(),
			})
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests, please try again later",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
