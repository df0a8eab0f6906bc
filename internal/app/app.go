package app

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/riftbikes/rift_storefront/internal/adapter/database"
	"github.com/riftbikes/rift_storefront/internal/adapter/handler/http"
	"github.com/riftbikes/rift_storefront/internal/adapter/logger"
	"github.com/riftbikes/rift_storefront/internal/adapter/mailer"
	"github.com/riftbikes/rift_storefront/internal/adapter/prometheus"
	"github.com/riftbikes/rift_storefront/internal/adapter/redis"
	"github.com/riftbikes/rift_storefront/internal/adapter/stripe"
	"github.com/riftbikes/rift_storefront/internal/config"
	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"
	"github.com/riftbikes/rift_storefront/internal/core/services"

	"github.com/gin-gonic/gin"
	redisClient "github.com/redis/go-redis/v9"
)

type App struct {
	Config        *config.Container
	Logger        *logger.LoggerAdapter
	Store         *database.Store
	RedisClient   *redisClient.Client
	Notifications *services.NotificationService
	Tokens        *http.JWTTokenService
	HTTPRouter    *http.Router

	server *nethttp.Server
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Connect DB and migrate
	store, err := database.Open(ctx, cfg.DB.Driver, cfg.DB.DSN(), loggerAdapter)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set redis
	var redisConn *redisClient.Client
	var cacheAdapter ports.CachePort
	if cfg.Redis.Enabled() {
		redisConn = redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cacheAdapter = redis.NewRedisAdapter(redisConn)
	} else {
		loggerAdapter.Warn("REDIS_ADDRESS is empty, rate limiting and idempotency keys are off", nil)
	}

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	bikeRepo := database.NewBikeRepository(store)
	orderRepo := database.NewOrderRepository(store)
	testDriveRepo := database.NewTestDriveRepository(store)

	// Notification relay
	var sender ports.NotificationSender
	if cfg.SMTP.Enabled() {
		sender = mailer.NewMailer(cfg.SMTP, cfg.Store.DistributorEmail)
	}
	notifications := services.NewNotificationService(sender, loggerAdapter, metrics, domain.DistributorContacts{
		Email:    cfg.Store.DistributorEmail,
		WhatsApp: cfg.Store.DistributorWhatsApp,
		Phone:    cfg.Store.DistributorPhone,
	}, cfg.Store.CurrencySymbol)

	// Card payments
	var gateway ports.PaymentGateway
	if cfg.Stripe.Enabled() {
		gateway = stripe.NewGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
		if cfg.Stripe.WebhookSecret == "" {
			loggerAdapter.Warn("STRIPE_WEBHOOK_SECRET is empty, payment webhooks will be refused", nil)
		}
	}

	// Services
	bikeService := services.NewBikeService(bikeRepo, loggerAdapter, validate, metrics, services.CatalogPolicy{
		EmptyCatalogFallback: cfg.Store.EmptyCatalogFallback,
	})
	orderService := services.NewOrderService(orderRepo, bikeService, notifications, loggerAdapter, validate, metrics, cfg.Store.Deposit)
	testDriveService := services.NewTestDriveService(testDriveRepo, loggerAdapter, validate)
	componentService := services.NewComponentService(loggerAdapter)
	paymentService := services.NewPaymentService(gateway, orderRepo, notifications, loggerAdapter, metrics, cfg.Store.Currency)

	// Auth
	tokens, err := NewTokenService(cfg.Token, loggerAdapter)
	if err != nil {
		store.Close()
		return nil, err
	}
	var tokenService ports.TokenService
	if tokens != nil {
		tokenService = tokens
	}

	var limiter gin.HandlerFunc
	if cacheAdapter != nil && cfg.RateLimit.Enabled() {
		limiter = http.RateLimit(cacheAdapter, cfg.RateLimit, loggerAdapter)
	}

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		loggerAdapter,
		tokenService,
		limiter,
		metrics.Handler(),
		http.Handlers{
			Bike:      http.NewBikeHandler(bikeService, loggerAdapter, metrics),
			Order:     http.NewOrderHandler(orderService, cacheAdapter, loggerAdapter, metrics),
			TestDrive: http.NewTestDriveHandler(testDriveService, loggerAdapter, metrics),
			Notify:    http.NewNotifyHandler(notifications, loggerAdapter, metrics),
			Component: http.NewComponentHandler(componentService, loggerAdapter, metrics),
			Payment:   http.NewPaymentHandler(paymentService, loggerAdapter, metrics),
		},
	)
	if err != nil {
		store.Close()
		if redisConn != nil {
			redisConn.Close()
		}
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:        cfg,
		Logger:        loggerAdapter,
		Store:         store,
		RedisClient:   redisConn,
		Notifications: notifications,
		Tokens:        tokens,
		HTTPRouter:    router,
		server: &nethttp.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port),
			Handler:           router.Engine(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves HTTP until Stop is called.
func (a *App) Run() error {
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": a.server.Addr,
	})

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stop drains HTTP requests and pending notifications, then closes storage.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := a.Notifications.Wait(ctx); err != nil {
		a.Logger.Warn("Pending notifications abandoned", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close database
	if err := a.Store.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Logger.Info("Application stopped successfully", nil)
	a.Logger.Sync()
	return nil
}

// NewTokenService builds the bearer token service from the token settings
// alone. It returns nil when no secret is configured.
func NewTokenService(cfg *config.Token, log ports.LoggerPort) (*http.JWTTokenService, error) {
	if cfg.Secret == "" {
		return nil, nil
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return nil, fmt.Errorf("TOKEN_DURATION: %w", err)
	}
	return http.NewJWTTokenService(cfg.Secret, duration, log), nil
}
