package domain

import (
	"github.com/shopspring/decimal"
)

// OrderNotification is the flat record handed to the notification relay.
type OrderNotification struct {
	OrderID          int64           `json:"orderId"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	CustomerPhone    string          `json:"customerPhone"`
	BikeID           int64           `json:"bikeId"`
	Deposit          decimal.Decimal `json:"deposit"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	Message          string          `json:"message"`
}

func NewOrderNotification(o *Order, message string) OrderNotification {
	return OrderNotification{
		OrderID:          o.ID,
		CustomerName:     o.CustomerInfo.String("name"),
		CustomerEmail:    o.CustomerInfo.String("email"),
		CustomerPhone:    o.CustomerInfo.String("phone"),
		BikeID:           o.BikeID,
		Deposit:          o.Deposit,
		TotalPrice:       o.TotalPrice,
		RemainingBalance: o.RemainingBalance(),
		Message:          message,
	}
}

type DistributorContacts struct {
	Email    string
	WhatsApp string
	Phone    string
}

// NotificationSummary is the operator-facing rendering of a notification.
type NotificationSummary struct {
	Subject string
	Body    string
}

type NotificationDetails struct {
	OrderID             int64           `json:"orderId"`
	Deposit             decimal.Decimal `json:"deposit"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	RemainingBalance    decimal.Decimal `json:"remainingBalance"`
	DistributorEmail    string          `json:"distributorEmail"`
	DistributorWhatsApp string          `json:"distributorWhatsApp"`
	DistributorPhone    string          `json:"distributorPhone"`
}
