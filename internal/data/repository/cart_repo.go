package repository

import (
	"context"
	"fmt"
	"time"

	"shop-booking/internal/data/entity"
	"shop-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartRepository interface {
	// AddItem merges by (customer, product): an existing line gets its
	// quantity incremented, otherwise a new line is inserted. Returns the
	// resulting line id.
	AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.PricedCartLine, error)
	// FindByCustomerForUpdate reads the cart joined with current catalog
	// prices inside the caller's transaction, locking the cart rows so a
	// concurrent checkout for the same customer serializes behind it.
	FindByCustomerForUpdate(ctx context.Context, q database.Queryer, customerID uuid.UUID) ([]*entity.PricedCartLine, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context, customerID uuid.UUID) error
	ClearTx(ctx context.Context, q database.Queryer, customerID uuid.UUID) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int) (uuid.UUID, error) {
	query := `
		INSERT INTO cart (id, customer_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (customer_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, uuid.New(), customerID, productID, quantity, time.Now()).Scan(&id)
	if err != nil {
		r.log.Error("Failed to add cart item",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("product_id", productID.String()),
		)
		return uuid.Nil, fmt.Errorf("add cart item for customer %s: %w", customerID.String(), err)
	}

	return id, nil
}

func (r *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error) {
	query := `
		SELECT id, customer_id, product_id, quantity, created_at, updated_at
		FROM cart
		WHERE id = $1
	`

	var line entity.CartLine
	err := r.db.QueryRow(ctx, query, id).Scan(
		&line.ID,
		&line.CustomerID,
		&line.ProductID,
		&line.Quantity,
		&line.CreatedAt,
		&line.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cart line by ID",
			zap.Error(err),
			zap.String("line_id", id.String()),
		)
		return nil, fmt.Errorf("find cart line by ID %s: %w", id.String(), err)
	}

	return &line, nil
}

const pricedCartLinesQuery = `
	SELECT c.id, c.customer_id, c.product_id, c.quantity, c.created_at, c.updated_at, p.price
	FROM cart c
	JOIN products p ON p.id = c.product_id
	WHERE c.customer_id = $1
	ORDER BY c.created_at
`

func (r *cartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.PricedCartLine, error) {
	return r.findPricedLines(ctx, r.db, customerID, pricedCartLinesQuery)
}

func (r *cartRepository) FindByCustomerForUpdate(ctx context.Context, q database.Queryer, customerID uuid.UUID) ([]*entity.PricedCartLine, error) {
	// Lock only the cart rows; product rows stay readable to other carts.
	return r.findPricedLines(ctx, q, customerID, pricedCartLinesQuery+` FOR UPDATE OF c`)
}

func (r *cartRepository) findPricedLines(ctx context.Context, q database.Queryer, customerID uuid.UUID, query string) ([]*entity.PricedCartLine, error) {
	rows, err := q.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find cart lines by customer",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find cart lines for customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var lines []*entity.PricedCartLine
	for rows.Next() {
		var line entity.PricedCartLine
		err := rows.Scan(
			&line.ID,
			&line.CustomerID,
			&line.ProductID,
			&line.Quantity,
			&line.CreatedAt,
			&line.UpdatedAt,
			&line.UnitPrice,
		)
		if err != nil {
			r.log.Error("Failed to scan cart line row", zap.Error(err))
			return nil, fmt.Errorf("scan cart line row: %w", err)
		}
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart lines for customer %s: %w", customerID.String(), err)
	}

	return lines, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `UPDATE cart SET quantity = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		r.log.Error("Failed to update cart line quantity",
			zap.Error(err),
			zap.String("line_id", id.String()),
			zap.Int("quantity", quantity),
		)
		return fmt.Errorf("update cart line %s quantity: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cart WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete cart line",
			zap.Error(err),
			zap.String("line_id", id.String()),
		)
		return fmt.Errorf("delete cart line %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, customerID uuid.UUID) error {
	return r.clear(ctx, r.db, customerID)
}

func (r *cartRepository) ClearTx(ctx context.Context, q database.Queryer, customerID uuid.UUID) error {
	return r.clear(ctx, q, customerID)
}

func (r *cartRepository) clear(ctx context.Context, q database.Queryer, customerID uuid.UUID) error {
	query := `DELETE FROM cart WHERE customer_id = $1`

	_, err := q.Exec(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return fmt.Errorf("clear cart for customer %s: %w", customerID.String(), err)
	}

	return nil
}
