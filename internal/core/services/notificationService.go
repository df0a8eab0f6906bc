package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"
)

const (
	NotificationSent   = "sent"
	NotificationLogged = "logged"
	NotificationFailed = "failed"

	defaultNotifyTimeout = 30 * time.Second
)

// NotificationService tells the distributor about new orders. Delivery is
// best effort: every attempt is logged, e-mailed when a sender is set, and
// never retried.
type NotificationService struct {
	sender   ports.NotificationSender
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
	contacts domain.DistributorContacts
	symbol   string
	timeout  time.Duration

	wg sync.WaitGroup
}

// NewNotificationService builds the relay. sender may be nil, in which case
// notifications are only logged.
func NewNotificationService(
	sender ports.NotificationSender,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	contacts domain.DistributorContacts,
	currencySymbol string,
) *NotificationService {
	return &NotificationService{
		sender:   sender,
		logger:   logger,
		metrics:  metrics,
		contacts: contacts,
		symbol:   currencySymbol,
		timeout:  defaultNotifyTimeout,
	}
}

func (s *NotificationService) money(n domain.OrderNotification) (string, string, string) {
	return domain.FormatMoney(s.symbol, n.Deposit),
		domain.FormatMoney(s.symbol, n.TotalPrice),
		domain.FormatMoney(s.symbol, n.RemainingBalance)
}

func (s *NotificationService) Compose(n domain.OrderNotification) domain.NotificationSummary {
	deposit, total, remaining := s.money(n)

	var b strings.Builder
	fmt.Fprintln(&b, "=== NEW ORDER NOTIFICATION ===")
	fmt.Fprintf(&b, "Order ID: %d\n", n.OrderID)
	fmt.Fprintf(&b, "Customer: %s\n", n.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", n.CustomerEmail)
	fmt.Fprintf(&b, "Phone: %s\n", n.CustomerPhone)
	fmt.Fprintf(&b, "Bike ID: %d\n", n.BikeID)
	fmt.Fprintf(&b, "Deposit: %s\n", deposit)
	fmt.Fprintf(&b, "Total Price: %s\n", total)
	fmt.Fprintf(&b, "Remaining Balance: %s\n", remaining)
	if n.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", n.Message)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "DISTRIBUTOR ACTION REQUIRED:")
	fmt.Fprintf(&b, "1. Contact customer to arrange %s deposit payment\n", deposit)
	fmt.Fprintln(&b, "2. Discuss bike specifications and customization")
	fmt.Fprintln(&b, "3. Send invoice with payment breakdown:")
	fmt.Fprintf(&b, "   - Total Price: %s\n", total)
	fmt.Fprintf(&b, "   - Deposit Paid: %s\n", deposit)
	fmt.Fprintf(&b, "   - Remaining Balance: %s\n", remaining)
	fmt.Fprintln(&b, "4. Update order status after deposit received")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Contact Distributor:")
	fmt.Fprintf(&b, "Email: %s\n", s.contacts.Email)
	fmt.Fprintf(&b, "WhatsApp: %s\n", s.contacts.WhatsApp)
	fmt.Fprintf(&b, "Phone: %s\n", s.contacts.Phone)

	name := n.CustomerName
	if name == "" {
		name = "Unknown customer"
	}
	return domain.NotificationSummary{
		Subject: fmt.Sprintf("New Order #%d - %s - Action Required", n.OrderID, name),
		Body:    b.String(),
	}
}

func (s *NotificationService) Details(n domain.OrderNotification) domain.NotificationDetails {
	return domain.NotificationDetails{
		OrderID:             n.OrderID,
		Deposit:             n.Deposit,
		TotalPrice:          n.TotalPrice,
		RemainingBalance:    n.RemainingBalance,
		DistributorEmail:    s.contacts.Email,
		DistributorWhatsApp: s.contacts.WhatsApp,
		DistributorPhone:    s.contacts.Phone,
	}
}

// Relay logs the summary and hands it to the sender, if any. It reports the
// result and is used directly only by Dispatch and tests.
func (s *NotificationService) Relay(ctx context.Context, n domain.OrderNotification) (string, error) {
	summary := s.Compose(n)
	s.logger.Info("New order notification", map[string]interface{}{
		"order_id": n.OrderID,
		"subject":  summary.Subject,
		"body":     summary.Body,
	})

	if s.sender == nil {
		return NotificationLogged, nil
	}
	if err := s.sender.Send(ctx, summary); err != nil {
		return NotificationFailed, fmt.Errorf("%w: order %d: %w", domain.ErrNotificationFailed, n.OrderID, err)
	}
	return NotificationSent, nil
}

// Dispatch relays n in the background. The caller's request may already be
// finished, so the attempt runs on its own deadline.
func (s *NotificationService) Dispatch(n domain.OrderNotification) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Notification panicked", map[string]interface{}{
					"order_id": n.OrderID,
					"panic":    fmt.Sprint(r),
				})
				s.metrics.NotificationResult(NotificationFailed)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		result, err := s.Relay(ctx, n)
		if err != nil {
			s.logger.Error("Failed to deliver order notification", map[string]interface{}{
				"order_id": n.OrderID,
				"error":    err.Error(),
			})
		}
		s.metrics.NotificationResult(result)
	}()
}

// Wait blocks until in-flight notifications finish or ctx ends.
func (s *NotificationService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
