package ports

import (
	"context"

	"github.com/riftbikes/rift_storefront/internal/core/domain"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, req *domain.OrderRequest) (*domain.OrderReceipt, error)
	Quote(ctx context.Context, bikeID int64, customization domain.Document, deposit *decimal.Decimal) (*domain.Quote, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}
