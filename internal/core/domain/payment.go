package domain

import "github.com/shopspring/decimal"

const PaymentIntentSucceeded = "payment_intent.succeeded"

type PaymentIntentRequest struct {
	OrderID       int64
	Amount        decimal.Decimal
	Currency      string
	CustomerEmail string
}

type PaymentIntent struct {
	ID           string          `json:"paymentIntentId"`
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	OrderID      int64           `json:"orderId"`
}

// PaymentEvent is a verified callback from the card-payment provider.
type PaymentEvent struct {
	Type     string
	IntentID string
	OrderID  int64
	Amount   decimal.Decimal
	Currency string
}
