package http

import (
	"net/http"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const notifyOrderMessage = "Order notification logged. Distributor should manually contact customer."

type NotifyHandler struct {
	notifications ports.NotificationService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

// NotifyOrderRequest is the flat record the checkout posts after an order
// is stored. The bank-transfer form sends a single amount instead of the
// deposit and total.
type NotifyOrderRequest struct {
	OrderID          int64            `json:"orderId" example:"12"`
	CustomerName     string           `json:"customerName" example:"Jane Rider"`
	CustomerEmail    string           `json:"customerEmail" example:"jane@example.com"`
	CustomerPhone    string           `json:"customerPhone" example:"07700900123"`
	BikeID           domain.BikeRef   `json:"bikeId" swaggertype:"integer" example:"9"`
	Deposit          *decimal.Decimal `json:"deposit" swaggertype:"number" example:"500"`
	TotalPrice       *decimal.Decimal `json:"totalPrice" swaggertype:"number" example:"4700"`
	RemainingBalance *decimal.Decimal `json:"remainingBalance" swaggertype:"number" example:"4200"`
	Amount           *decimal.Decimal `json:"amount,omitempty" swaggertype:"number" example:"500"`
	Message          string           `json:"message" example:"Please call after 5pm"`
}

func (r *NotifyOrderRequest) toDomain() domain.OrderNotification {
	n := domain.OrderNotification{
		OrderID:       r.OrderID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		BikeID:        r.BikeID.Int64(),
		Message:       r.Message,
	}
	switch {
	case r.Deposit != nil:
		n.Deposit = *r.Deposit
	case r.Amount != nil:
		n.Deposit = *r.Amount
	}
	switch {
	case r.TotalPrice != nil:
		n.TotalPrice = *r.TotalPrice
	case r.Amount != nil:
		n.TotalPrice = *r.Amount
	}
	if r.RemainingBalance != nil {
		n.RemainingBalance = *r.RemainingBalance
	} else {
		n.RemainingBalance = n.TotalPrice.Sub(n.Deposit)
	}
	return n
}

type NotifyOrderResponse struct {
	Success bool                       `json:"success" example:"true"`
	Message string                     `json:"message"`
	Details domain.NotificationDetails `json:"details"`
}

func NewNotifyHandler(
	notifications ports.NotificationService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *NotifyHandler {
	return &NotifyHandler{
		notifications: notifications,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary Notify the distributor
// @Description Relays an order summary to the distributor. Delivery is best effort and never reported back.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body NotifyOrderRequest true "Order summary"
// @Success 200 {object} NotifyOrderResponse "Notification accepted"
// @Failure 400 {object} errorResponse "Invalid JSON"
// @Router /notify-order [post]
func (h *NotifyHandler) NotifyOrder(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req NotifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in notify order", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	n := req.toDomain()
	h.notifications.Dispatch(n)

	c.JSON(http.StatusOK, NotifyOrderResponse{
		Success: true,
		Message: notifyOrderMessage,
		Details: h.notifications.Details(n),
	})
}
