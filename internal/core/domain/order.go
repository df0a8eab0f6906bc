package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderDepositPaid    OrderStatus = "deposit_paid"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderCompleted      OrderStatus = "completed"
	OrderCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPendingPayment, OrderDepositPaid, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Initial reports whether an order may be created in this status.
func (s OrderStatus) Initial() bool {
	return s == OrderPending || s == OrderPendingPayment
}

const (
	PaymentBankTransfer = "bank_transfer"
	PaymentCard         = "card"
)

type Order struct {
	ID            int64           `json:"id"`
	BikeID        int64           `json:"bikeId" validate:"required,gt=0"`
	Customization Document        `json:"customization"`
	CustomerInfo  Document        `json:"customerInfo"`
	Deposit       decimal.Decimal `json:"deposit"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        OrderStatus     `json:"status" validate:"required"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,max=50"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (o *Order) RemainingBalance() decimal.Decimal {
	return o.TotalPrice.Sub(o.Deposit)
}

// CheckAmounts enforces totalPrice >= deposit >= 0.
func (o *Order) CheckAmounts() error {
	if o.Deposit.IsNegative() {
		return fmt.Errorf("%w: deposit must not be negative", ErrValidation)
	}
	if o.TotalPrice.LessThan(o.Deposit) {
		return fmt.Errorf("%w: totalPrice %s is below deposit %s", ErrValidation, o.TotalPrice, o.Deposit)
	}
	return nil
}

// OrderRequest is a checkout submission. Nil amounts are filled in from the
// deposit policy and the bike's price.
type OrderRequest struct {
	BikeID        int64
	Customization Document
	CustomerInfo  Document
	Deposit       *decimal.Decimal
	TotalPrice    *decimal.Decimal
	PaymentMethod string
	Status        OrderStatus
}

// OrderReceipt is what the checkout gets back once the order row is written.
type OrderReceipt struct {
	ID               int64           `json:"id"`
	Success          bool            `json:"success"`
	Deposit          decimal.Decimal `json:"deposit"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Status           OrderStatus     `json:"status"`
	PaymentMethod    string          `json:"paymentMethod"`
}

func NewOrderReceipt(o *Order) *OrderReceipt {
	return &OrderReceipt{
		ID:               o.ID,
		Success:          true,
		Deposit:          o.Deposit,
		TotalPrice:       o.TotalPrice,
		RemainingBalance: o.RemainingBalance(),
		Status:           o.Status,
		PaymentMethod:    o.PaymentMethod,
	}
}
