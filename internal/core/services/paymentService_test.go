package services

import (
	"context"
	"testing"

	"github.com/riftbikes/rift_storefront/internal/adapter/logger"
	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, repo *fakeOrderRepo) *domain.Order {
	t.Helper()
	order, err := repo.CreateOrder(context.Background(), &domain.Order{
		BikeID:        9,
		CustomerInfo:  customer(),
		Deposit:       decimal.NewFromInt(500),
		TotalPrice:    decimal.NewFromInt(4700),
		Status:        domain.OrderPendingPayment,
		PaymentMethod: domain.PaymentCard,
	})
	require.NoError(t, err)
	return order
}

func TestCreateDepositIntentUsesOrderDeposit(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(t, repo)
	gateway := &fakeGateway{}
	svc := NewPaymentService(gateway, repo, &fakeNotifier{}, logger.NewNopLogger(), &fakeMetrics{}, "gbp")

	intent, err := svc.CreateDepositIntent(context.Background(), order.ID, "")
	require.NoError(t, err)

	require.Len(t, gateway.requests, 1)
	req := gateway.requests[0]
	assert.True(t, decimal.NewFromInt(500).Equal(req.Amount))
	assert.Equal(t, "gbp", req.Currency)
	assert.Equal(t, "jane@example.com", req.CustomerEmail)
	assert.Equal(t, order.ID, intent.OrderID)
	assert.Equal(t, "pi_test_secret", intent.ClientSecret)
}

func TestCreateDepositIntentErrors(t *testing.T) {
	repo := newFakeOrderRepo()
	disabled := NewPaymentService(nil, repo, &fakeNotifier{}, logger.NewNopLogger(), &fakeMetrics{}, "gbp")
	_, err := disabled.CreateDepositIntent(context.Background(), 1, "")
	assert.ErrorIs(t, err, domain.ErrPaymentsDisabled)

	svc := NewPaymentService(&fakeGateway{}, repo, &fakeNotifier{}, logger.NewNopLogger(), &fakeMetrics{}, "gbp")
	_, err = svc.CreateDepositIntent(context.Background(), 42, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.CreateDepositIntent(context.Background(), 0, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHandleWebhookSucceededNotifiesWithoutChangingStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	order := seedOrder(t, repo)
	notifier := &fakeNotifier{}
	metrics := &fakeMetrics{}
	gateway := &fakeGateway{event: &domain.PaymentEvent{
		Type:     domain.PaymentIntentSucceeded,
		IntentID: "pi_1",
		OrderID:  order.ID,
		Amount:   decimal.NewFromInt(500),
		Currency: "gbp",
	}}
	svc := NewPaymentService(gateway, repo, notifier, logger.NewNopLogger(), metrics, "gbp")

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))

	stored, err := repo.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPendingPayment, stored.Status)

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Message, "500.00 gbp")
	assert.Equal(t, []string{domain.PaymentIntentSucceeded}, metrics.payments)
}

func TestHandleWebhookIgnoresOtherEvents(t *testing.T) {
	notifier := &fakeNotifier{}
	gateway := &fakeGateway{event: &domain.PaymentEvent{Type: "payment_intent.created"}}
	svc := NewPaymentService(gateway, newFakeOrderRepo(), notifier, logger.NewNopLogger(), &fakeMetrics{}, "gbp")

	require.NoError(t, svc.HandleWebhook(context.Background(), []byte(`{}`), ""))
	assert.Empty(t, notifier.sent)
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	gateway := &fakeGateway{err: domain.ErrUnauthorized}
	svc := NewPaymentService(gateway, newFakeOrderRepo(), &fakeNotifier{}, logger.NewNopLogger(), &fakeMetrics{}, "gbp")

	assert.ErrorIs(t, svc.HandleWebhook(context.Background(), []byte(`{}`), "bad"), domain.ErrUnauthorized)
}
