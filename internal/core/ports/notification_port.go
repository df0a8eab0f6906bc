package ports

import (
	"context"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

// OrderNotifier hands a notification off without waiting for its delivery.
type OrderNotifier interface {
	Dispatch(n domain.OrderNotification)
}

type NotificationService interface {
	OrderNotifier
	Compose(n domain.OrderNotification) domain.NotificationSummary
	Details(n domain.OrderNotification) domain.NotificationDetails
}

// NotificationSender delivers a rendered summary to the distributor.
type NotificationSender interface {
	Send(ctx context.Context, summary domain.NotificationSummary) error
}
