package services

import (
	"context"
	"fmt"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orderRepo ports.OrderRepository
	bikes     ports.BikeService
	notifier  ports.OrderNotifier
	logger    ports.LoggerPort
	validate  *validator.Validate
	metrics   ports.MetricsPort
	deposit   decimal.Decimal
}

// NewOrderService wires checkout. deposit is the amount charged up front when
// a request does not name one.
func NewOrderService(
	orderRepo ports.OrderRepository,
	bikes ports.BikeService,
	notifier ports.OrderNotifier,
	logger ports.LoggerPort,
	validate *validator.Validate,
	metrics ports.MetricsPort,
	deposit decimal.Decimal,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		bikes:     bikes,
		notifier:  notifier,
		logger:    logger,
		validate:  validate,
		metrics:   metrics,
		deposit:   deposit,
	}
}

// CreateOrder stores a purchase intent and then notifies the distributor in
// the background. The notification outcome never reaches the caller.
func (s *OrderService) CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.OrderReceipt, error) {
	if err := s.checkRequest(req); err != nil {
		s.logger.Error("Order validation failed", map[string]interface{}{
			"bike_id": req.BikeID,
			"error":   err.Error(),
		})
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.OrderPending
	}

	deposit := s.deposit
	if req.Deposit != nil {
		deposit = *req.Deposit
	}

	var total decimal.Decimal
	if req.TotalPrice != nil {
		total = *req.TotalPrice
	} else {
		bike, err := s.bikes.GetBike(ctx, req.BikeID)
		if err != nil {
			s.logger.Error("Failed to price order", map[string]interface{}{
				"bike_id": req.BikeID,
				"error":   err.Error(),
			})
			return nil, err
		}
		total = domain.PriceWithAddOns(bike.BasePrice, req.Customization)
	}

	order := &domain.Order{
		BikeID:        req.BikeID,
		Customization: req.Customization,
		CustomerInfo:  req.CustomerInfo,
		Deposit:       deposit,
		TotalPrice:    total,
		Status:        status,
		PaymentMethod: paymentMethod(req),
	}
	if err := s.validate.Struct(order); err != nil {
		return nil, validationError(err)
	}
	if err := order.CheckAmounts(); err != nil {
		s.logger.Error("Order amounts rejected", map[string]interface{}{
			"bike_id":     req.BikeID,
			"deposit":     deposit.String(),
			"total_price": total.String(),
		})
		return nil, err
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Failed to create order", map[string]interface{}{
			"bike_id": req.BikeID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.metrics.OrderCreated(created.PaymentMethod)
	s.logger.Info("Order created successfully", map[string]interface{}{
		"order_id":       created.ID,
		"bike_id":        created.BikeID,
		"payment_method": created.PaymentMethod,
		"status":         string(created.Status),
	})

	s.notifier.Dispatch(domain.NewOrderNotification(created, orderMessage(created.CustomerInfo)))

	return domain.NewOrderReceipt(created), nil
}

func (s *OrderService) checkRequest(req *domain.OrderRequest) error {
	if req.BikeID <= 0 {
		return fmt.Errorf("%w: bikeId is required", domain.ErrValidation)
	}
	if err := req.Customization.Validate(); err != nil {
		return fmt.Errorf("customization: %w", err)
	}
	if err := req.CustomerInfo.Validate(); err != nil {
		return fmt.Errorf("customerInfo: %w", err)
	}
	if req.Status != "" && !req.Status.Initial() {
		return fmt.Errorf("%w: an order cannot be created with status %q", domain.ErrValidation, req.Status)
	}
	return nil
}

// paymentMethod picks the explicit field, then the one the bank-transfer
// form tucks into customerInfo, then bank transfer.
func paymentMethod(req *domain.OrderRequest) string {
	if req.PaymentMethod != "" {
		return req.PaymentMethod
	}
	if m := req.CustomerInfo.String("paymentMethod"); m != "" {
		return m
	}
	return domain.PaymentBankTransfer
}

func orderMessage(info domain.Document) string {
	for _, key := range []string{"message", "notes"} {
		if m := info.String(key); m != "" {
			return m
		}
	}
	return ""
}

// Quote prices a bike with the given customization without storing anything.
func (s *OrderService) Quote(ctx context.Context, bikeID int64, customization domain.Document, deposit *decimal.Decimal) (*domain.Quote, error) {
	if bikeID <= 0 {
		return nil, fmt.Errorf("%w: bikeId is required", domain.ErrValidation)
	}
	if err := customization.Validate(); err != nil {
		return nil, fmt.Errorf("customization: %w", err)
	}

	bike, err := s.bikes.GetBike(ctx, bikeID)
	if err != nil {
		return nil, err
	}

	dep := s.deposit
	if deposit != nil {
		dep = *deposit
	}
	order := &domain.Order{
		Deposit:    dep,
		TotalPrice: domain.PriceWithAddOns(bike.BasePrice, customization),
	}
	if err := order.CheckAmounts(); err != nil {
		return nil, err
	}

	return &domain.Quote{
		BikeID:           bike.ID,
		BasePrice:        bike.BasePrice,
		AddOns:           domain.SelectedAddOns(customization),
		TotalPrice:       order.TotalPrice,
		Deposit:          order.Deposit,
		RemainingBalance: order.RemainingBalance(),
	}, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get order", map[string]interface{}{
			"order_id": id,
			"error":    err.Error(),
		})
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus is the manual step an operator takes once payment is
// confirmed. Unlike bike updates, a missing order is reported.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		s.logger.Error("Failed to update order status", map[string]interface{}{
			"order_id": id,
			"status":   string(status),
			"error":    err.Error(),
		})
		return err
	}

	s.logger.Info("Order status updated", map[string]interface{}{
		"order_id": id,
		"status":   string(status),
	})
	return nil
}
