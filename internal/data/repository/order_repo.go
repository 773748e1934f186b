package repository

import (
	"context"
	"fmt"

	"shop-booking/internal/data/entity"
	"shop-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// Tx-scoped writes used by checkout and the status transition. The
	// caller owns the transaction and its commit/rollback.
	CreateTx(ctx context.Context, q database.Queryer, order *entity.Order) error
	CreateDetailTx(ctx context.Context, q database.Queryer, detail *entity.OrderDetail) error
	FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error)
	UpdateStatusTx(ctx context.Context, q database.Queryer, id uuid.UUID, status entity.OrderStatus) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindDetailsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDetail, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, order_code, customer_id, total_amount, status, created_at, updated_at`

func (r *orderRepository) CreateTx(ctx context.Context, q database.Queryer, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_code, customer_id, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		order.ID,
		order.OrderCode,
		order.CustomerID,
		order.TotalAmount,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_code", order.OrderCode),
			zap.String("customer_id", order.CustomerID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.OrderCode, err)
	}

	return nil
}

func (r *orderRepository) CreateDetailTx(ctx context.Context, q database.Queryer, detail *entity.OrderDetail) error {
	query := `
		INSERT INTO order_details (id, order_id, product_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		detail.ID,
		detail.OrderID,
		detail.ProductID,
		detail.Quantity,
		detail.UnitPrice,
		detail.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order detail",
			zap.Error(err),
			zap.String("order_id", detail.OrderID.String()),
			zap.String("product_id", detail.ProductID.String()),
		)
		return fmt.Errorf("create order detail for order %s: %w", detail.OrderID.String(), err)
	}

	return nil
}

func (r *orderRepository) FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error) {
	return r.findByID(ctx, q, id)
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *orderRepository) findByID(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var order entity.Order
	err := q.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.OrderCode,
		&order.CustomerID,
		&order.TotalAmount,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) UpdateStatusTx(ctx context.Context, q database.Queryer, id uuid.UUID, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := q.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *orderRepository) FindDetailsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderDetail, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, created_at
		FROM order_details
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order details",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find details for order %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var details []*entity.OrderDetail
	for rows.Next() {
		var detail entity.OrderDetail
		err := rows.Scan(
			&detail.ID,
			&detail.OrderID,
			&detail.ProductID,
			&detail.Quantity,
			&detail.UnitPrice,
			&detail.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order detail row", zap.Error(err))
			return nil, fmt.Errorf("scan order detail row: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate details for order %s: %w", orderID.String(), err)
	}

	return details, nil
}

func (r *orderRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list orders",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.OrderCode,
			&order.CustomerID,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Order deleted", zap.String("order_id", id.String()))
	return nil
}
