package http

import (
	"io"
	"net/http"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 64 << 10

type PaymentHandler struct {
	paymentService ports.PaymentService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type PaymentIntentRequest struct {
	OrderID       int64  `json:"orderId" binding:"required" example:"12"`
	CustomerEmail string `json:"customerEmail" example:"jane@example.com"`
}

type webhookResponse struct {
	Received bool `json:"received" example:"true"`
}

func NewPaymentHandler(
	paymentService ports.PaymentService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Start a card deposit
// @Description Opens a payment intent for exactly the order's deposit.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentIntentRequest true "Order to pay"
// @Success 200 {object} domain.PaymentIntent "Intent created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Order not found"
// @Failure 503 {object} errorResponse "Card payments are not configured"
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "orderId is required")
		return
	}

	intent, err := h.paymentService.CreateDepositIntent(c.Request.Context(), req.OrderID, req.CustomerEmail)
	if err != nil {
		h.logger.Error("Failed to create payment intent", map[string]interface{}{
			"order_id": req.OrderID,
			"error":    err.Error(),
		})
		handleServiceError(c, err, "Order", "create payment intent")
		return
	}

	c.JSON(http.StatusOK, intent)
}

// @Summary Payment provider callback
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string false "Webhook signature"
// @Success 200 {object} webhookResponse "Event accepted"
// @Failure 400 {object} errorResponse "Malformed event"
// @Failure 401 {object} errorResponse "Bad signature"
// @Failure 503 {object} errorResponse "Card payments are not configured"
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Unreadable webhook body")
		return
	}

	if err := h.paymentService.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		handleServiceError(c, err, "Order", "process webhook")
		return
	}

	c.JSON(http.StatusOK, webhookResponse{Received: true})
}
