package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

type OrderHandler struct {
	orderService ports.OrderService
	cache        ports.CachePort
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

// OrderRequest is the checkout submission. Omitted deposit and totalPrice
// are filled in from the deposit policy and the bike's price.
type OrderRequest struct {
	BikeID        domain.BikeRef   `json:"bikeId" swaggertype:"integer" example:"9"`
	Customization domain.Document  `json:"customization" swaggertype:"object"`
	CustomerInfo  domain.Document  `json:"customerInfo" swaggertype:"object"`
	Deposit       *decimal.Decimal `json:"deposit" swaggertype:"number" example:"500"`
	TotalPrice    *decimal.Decimal `json:"totalPrice" swaggertype:"number" example:"4700"`
	PaymentMethod string           `json:"paymentMethod" example:"bank_transfer"`
	Status        string           `json:"status" example:"pending"`
}

type QuoteRequest struct {
	BikeID        domain.BikeRef   `json:"bikeId" swaggertype:"integer" example:"9"`
	Customization domain.Document  `json:"customization" swaggertype:"object"`
	Deposit       *decimal.Decimal `json:"deposit" swaggertype:"number" example:"500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"deposit_paid"`
}

type OrderResponse struct {
	*domain.Order
	RemainingBalance decimal.Decimal `json:"remainingBalance" swaggertype:"number" example:"4200"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{Order: o, RemainingBalance: o.RemainingBalance()}
}

// NewOrderHandler builds the order endpoints. cache may be nil, which turns
// off Idempotency-Key replay.
func NewOrderHandler(
	orderService ports.OrderService,
	cache ports.CachePort,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cache:        cache,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary Place order
// @Description Stores the order, then notifies the distributor in the background. A repeated Idempotency-Key replays the first receipt.
// @Tags orders
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replay protection key"
// @Param request body OrderRequest true "Order"
// @Success 201 {object} domain.OrderReceipt "Order created"
// @Failure 400 {object} errorResponse "Invalid order"
// @Failure 429 {object} errorResponse "Too many requests"
// @Failure 500 {object} errorResponse "Storage failure"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	key := c.GetHeader(idempotencyHeader)
	if cached := h.replay(c, key); cached != nil {
		c.Header("Idempotent-Replayed", "true")
		c.Data(http.StatusCreated, "application/json; charset=utf-8", cached)
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create order", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	receipt, err := h.orderService.CreateOrder(c.Request.Context(), &domain.OrderRequest{
		BikeID:        req.BikeID.Int64(),
		Customization: req.Customization,
		CustomerInfo:  req.CustomerInfo,
		Deposit:       req.Deposit,
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.OrderStatus(req.Status),
	})
	if err != nil {
		handleServiceError(c, err, "Bike", "create order")
		return
	}

	body, err := json.Marshal(receipt)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create order")
		return
	}
	h.remember(c, key, body)

	c.Data(http.StatusCreated, "application/json; charset=utf-8", body)
}

func idempotencyKey(key string) string {
	return "idempotency:orders:" + key
}

func (h *OrderHandler) replay(c *gin.Context, key string) []byte {
	if h.cache == nil || key == "" {
		return nil
	}
	cached, err := h.cache.Get(c.Request.Context(), idempotencyKey(key))
	if err != nil {
		h.logger.Warn("Idempotency lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return cached
}

func (h *OrderHandler) remember(c *gin.Context, key string, body []byte) {
	if h.cache == nil || key == "" {
		return
	}
	if err := h.cache.Set(c.Request.Context(), idempotencyKey(key), body, idempotencyTTL); err != nil {
		h.logger.Warn("Failed to store idempotent receipt", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// @Summary Price a bike
// @Description Base price plus selected add-ons, with the deposit split. Nothing is stored.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Bike and customization"
// @Success 200 {object} domain.Quote "Price breakdown"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /orders/quote [post]
func (h *OrderHandler) Quote(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	quote, err := h.orderService.Quote(c.Request.Context(), req.BikeID.Int64(), req.Customization, req.Deposit)
	if err != nil {
		handleServiceError(c, err, "Bike", "price bike")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// @Summary List orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} OrderResponse "Orders, newest first"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Order", "fetch orders")
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = newOrderResponse(o)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderResponse "Order found"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Order not found"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Order", "fetch order")
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// @Summary Set order status
// @Description The manual step taken once the distributor has confirmed payment.
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} successResponse "Status updated"
// @Failure 400 {object} errorResponse "Unknown status"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Order not found"
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c)
	if !ok {
		newErrorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	if err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		handleServiceError(c, err, "Order", "update order")
		return
	}

	newSuccessResponse(c, http.StatusOK)
}
