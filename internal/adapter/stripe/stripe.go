package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/webhook"
)

const metadataOrderID = "order_id"

// Gateway creates deposit payment intents and verifies webhook callbacks.
type Gateway struct {
	intents       *paymentintent.Client
	webhookSecret string
}

func NewGateway(secretKey, webhookSecret string) *Gateway {
	return NewGatewayWithBackend(secretKey, webhookSecret, stripe.GetBackend(stripe.APIBackend))
}

func NewGatewayWithBackend(secretKey, webhookSecret string, backend stripe.Backend) *Gateway {
	return &Gateway{
		intents:       &paymentintent.Client{B: backend, Key: secretKey},
		webhookSecret: webhookSecret,
	}
}

func (g *Gateway) CreateIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(domain.MinorUnits(req.Amount)),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			metadataOrderID: strconv.FormatInt(req.OrderID, 10),
		},
	}
	if req.CustomerEmail != "" {
		params.ReceiptEmail = stripe.String(req.CustomerEmail)
		params.Metadata["email"] = req.CustomerEmail
	}
	params.Context = ctx

	intent, err := g.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	return &domain.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       domain.FromMinorUnits(intent.Amount),
		Currency:     string(intent.Currency),
		OrderID:      req.OrderID,
	}, nil
}

// ParseEvent verifies the Stripe-Signature header. Without a webhook secret
// no event is accepted.
func (g *Gateway) ParseEvent(payload []byte, signature string) (*domain.PaymentEvent, error) {
	if g.webhookSecret == "" {
		return nil, fmt.Errorf("%w: STRIPE_WEBHOOK_SECRET is not set", domain.ErrPaymentsDisabled)
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	out := &domain.PaymentEvent{Type: string(event.Type)}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		// not a payment intent event; the type alone is enough
		return out, nil
	}
	out.IntentID = pi.ID
	out.Amount = domain.FromMinorUnits(pi.Amount)
	out.Currency = string(pi.Currency)
	if raw := pi.Metadata[metadataOrderID]; raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: order_id metadata %q", domain.ErrValidation, raw)
		}
		out.OrderID = id
	}
	return out, nil
}
