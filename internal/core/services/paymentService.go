package services

import (
	"context"
	"fmt"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"
)

// PaymentService connects orders to the card-payment provider. A nil gateway
// means card payments are switched off.
type PaymentService struct {
	gateway  ports.PaymentGateway
	orders   ports.OrderRepository
	notifier ports.OrderNotifier
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
	currency string
}

func NewPaymentService(
	gateway ports.PaymentGateway,
	orders ports.OrderRepository,
	notifier ports.OrderNotifier,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	currency string,
) *PaymentService {
	return &PaymentService{
		gateway:  gateway,
		orders:   orders,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		currency: currency,
	}
}

// CreateDepositIntent opens a payment for exactly the order's deposit.
func (s *PaymentService) CreateDepositIntent(ctx context.Context, orderID int64, customerEmail string) (*domain.PaymentIntent, error) {
	if s.gateway == nil {
		return nil, domain.ErrPaymentsDisabled
	}
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: orderId is required", domain.ErrValidation)
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Deposit.IsPositive() {
		return nil, fmt.Errorf("%w: order %d has no deposit to collect", domain.ErrValidation, orderID)
	}
	if customerEmail == "" {
		customerEmail = order.CustomerInfo.String("email")
	}

	intent, err := s.gateway.CreateIntent(ctx, domain.PaymentIntentRequest{
		OrderID:       order.ID,
		Amount:        order.Deposit,
		Currency:      s.currency,
		CustomerEmail: customerEmail,
	})
	if err != nil {
		s.logger.Error("Failed to create payment intent", map[string]interface{}{
			"order_id": orderID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Payment intent created", map[string]interface{}{
		"order_id":  orderID,
		"intent_id": intent.ID,
		"amount":    intent.Amount.String(),
	})
	return intent, nil
}

// HandleWebhook records a verified provider event. A succeeded intent counts
// as the deposit being collected; the order status is still advanced by
// hand, so the distributor is told rather than the row changed.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil {
		return domain.ErrPaymentsDisabled
	}

	event, err := s.gateway.ParseEvent(payload, signature)
	if err != nil {
		s.logger.Warn("Rejected payment webhook", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	s.metrics.PaymentEvent(event.Type)

	if event.Type != domain.PaymentIntentSucceeded {
		s.logger.Debug("Ignoring payment event", map[string]interface{}{
			"type": event.Type,
		})
		return nil
	}

	s.logger.Info("Deposit collected", map[string]interface{}{
		"order_id":  event.OrderID,
		"intent_id": event.IntentID,
		"amount":    event.Amount.String(),
		"currency":  event.Currency,
	})

	if event.OrderID == 0 {
		return nil
	}
	order, err := s.orders.GetOrderByID(ctx, event.OrderID)
	if err != nil {
		s.logger.Warn("Paid order not found", map[string]interface{}{
			"order_id": event.OrderID,
			"error":    err.Error(),
		})
		return nil
	}

	s.notifier.Dispatch(domain.NewOrderNotification(order,
		fmt.Sprintf("Card deposit of %s %s received (payment %s). Update the order status.",
			event.Amount.StringFixed(2), event.Currency, event.IntentID)))
	return nil
}
