package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/riftbikes/rift_storefront/internal/config"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

type Handlers struct {
	Bike      *BikeHandler
	Order     *OrderHandler
	TestDrive *TestDriveHandler
	Notify    *NotifyHandler
	Component *ComponentHandler
	Payment   *PaymentHandler
}

// NewRouter wires every route. A nil tokenService leaves the admin routes
// open; a nil limiter turns off rate limiting.
func NewRouter(
	cfg *config.HTTP,
	logger ports.LoggerPort,
	tokenService ports.TokenService,
	limiter gin.HandlerFunc,
	metricsHandler http.Handler,
	h Handlers,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(RequestID())

	// CORS. Browsers refuse credentials on a wildcard origin.
	origins := allowedOrigins(cfg.AllowedOrigins)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", idempotencyHeader, requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: !slices.Contains(origins, "*"),
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var adminChain []gin.HandlerFunc
	if tokenService != nil {
		adminChain = append(adminChain, AuthMiddleware(tokenService, logger))
	} else {
		logger.Warn("TOKEN_SECRET is empty, admin routes are open", nil)
	}
	adminChain = append(adminChain, AuditAdmin(logger))
	admin := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return chain(adminChain, handler)
	}

	var limitChain []gin.HandlerFunc
	if limiter != nil {
		limitChain = append(limitChain, limiter)
	}
	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return chain(limitChain, handler)
	}

	// Bikes routes
	bikes := router.Group("/bikes")
	{
		bikes.GET("", h.Bike.ListBikes)
		bikes.GET("/:id", h.Bike.GetBike)
		bikes.POST("", admin(h.Bike.CreateBike)...)
		bikes.PUT("/:id", admin(h.Bike.UpdateBike)...)
		bikes.DELETE("/:id", admin(h.Bike.DeleteBike)...)
	}

	// Orders routes
	orders := router.Group("/orders")
	{
		orders.POST("", limited(h.Order.CreateOrder)...)
		orders.POST("/quote", h.Order.Quote)
		orders.GET("", admin(h.Order.ListOrders)...)
		orders.GET("/:id", admin(h.Order.GetOrder)...)
		orders.PATCH("/:id/status", admin(h.Order.UpdateOrderStatus)...)
	}

	router.POST("/test-drive", limited(h.TestDrive.CreateTestDrive)...)
	router.GET("/test-drives", admin(h.TestDrive.ListTestDrives)...)
	router.POST("/notify-order", limited(h.Notify.NotifyOrder)...)

	// Components routes
	components := router.Group("/components")
	{
		components.GET("", h.Component.ListComponents)
		components.GET("/:id", h.Component.GetComponent)
	}

	// Payments routes
	router.POST("/create-payment-intent", limited(h.Payment.CreatePaymentIntent)...)
	router.POST("/payments/webhook", h.Payment.Webhook)

	return &Router{router: router}, nil
}

func chain(middleware []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(middleware)+1)
	out = append(out, middleware...)
	return append(out, handler)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}

func allowedOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
