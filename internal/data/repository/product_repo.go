package repository

import (
	"context"
	"fmt"

	"shop-booking/internal/data/entity"
	"shop-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductRepository is the read side of the catalog plus the one mutation
// this service performs: the post-checkout stock decrement.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetUnitPrice(ctx context.Context, id uuid.UUID) (*decimal.Decimal, error)
	// DecrementStock subtracts quantity from stock, guarded so stock never
	// goes negative. Returns the number of affected rows: zero means the
	// product is missing or under-stocked and the caller must compensate.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (int64, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Stock,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return &product, nil
}

func (r *productRepository) GetUnitPrice(ctx context.Context, id uuid.UUID) (*decimal.Decimal, error) {
	query := `SELECT price FROM products WHERE id = $1`

	var price decimal.Decimal
	err := r.db.QueryRow(ctx, query, id).Scan(&price)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get unit price for product %s: %w", id.String(), err)
	}

	return &price, nil
}

func (r *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (int64, error) {
	query := `
		UPDATE products
		SET stock = stock - $2, updated_at = NOW()
		WHERE id = $1 AND stock >= $2
	`

	result, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		r.log.Error("Failed to decrement product stock",
			zap.Error(err),
			zap.String("product_id", id.String()),
			zap.Int("quantity", quantity),
		)
		return 0, fmt.Errorf("decrement stock for product %s: %w", id.String(), err)
	}

	return result.RowsAffected(), nil
}
