package ports

import (
	"context"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

type PaymentGateway interface {
	CreateIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error)
	ParseEvent(payload []byte, signature string) (*domain.PaymentEvent, error)
}

type PaymentService interface {
	CreateDepositIntent(ctx context.Context, orderID int64, customerEmail string) (*domain.PaymentIntent, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}
