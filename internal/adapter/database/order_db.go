package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/riftbikes/rift_storefront/internal/core/domain"
)

const orderColumns = `id, bike_id, customization, customer_info, deposit, total_price, status, payment_method, created_at`

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// CreateOrder inserts the order as given. bike_id is not checked against the
// catalog.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `INSERT INTO orders (bike_id, customization, customer_info, deposit, total_price, status, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	if order.Customization == nil {
		order.Customization = domain.Document{}
	}
	if order.CustomerInfo == nil {
		order.CustomerInfo = domain.Document{}
	}
	order.CreatedAt = time.Now().UTC()

	id, err := r.store.RunReturningID(ctx, query,
		order.BikeID,
		order.Customization,
		order.CustomerInfo,
		order.Deposit,
		order.TotalPrice,
		string(order.Status),
		order.PaymentMethod,
		order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating order: %w", err)
	}
	order.ID = id
	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := scanOrder(r.store.GetOne(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("get order", err)
	}
	return order, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY id DESC`

	rows, err := r.store.GetAll(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, unavailable("scan order", err)
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, unavailable("list orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`

	n, err := r.store.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("error updating order status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("order %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	order := &domain.Order{}
	var status string
	err := row.Scan(
		&order.ID,
		&order.BikeID,
		&order.Customization,
		&order.CustomerInfo,
		&order.Deposit,
		&order.TotalPrice,
		&status,
		&order.PaymentMethod,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	return order, nil
}
