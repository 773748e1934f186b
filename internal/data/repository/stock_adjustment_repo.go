package repository

import (
	"context"
	"fmt"

	"shop-booking/internal/data/entity"
	"shop-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StockAdjustmentRepository interface {
	Create(ctx context.Context, adjustment *entity.StockAdjustment) error
	FindPending(ctx context.Context) ([]*entity.StockAdjustment, error)
	MarkApplied(ctx context.Context, id uuid.UUID) error
}

type stockAdjustmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStockAdjustmentRepository(db database.PgxIface, log *zap.Logger) StockAdjustmentRepository {
	return &stockAdjustmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "stock_adjustment")),
	}
}

func (r *stockAdjustmentRepository) Create(ctx context.Context, adjustment *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (id, product_id, room_id, quantity, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		adjustment.ID,
		adjustment.ProductID,
		adjustment.RoomID,
		adjustment.Quantity,
		adjustment.Reason,
		adjustment.Status,
		adjustment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create stock adjustment",
			zap.Error(err),
			zap.String("reason", adjustment.Reason),
		)
		return fmt.Errorf("create stock adjustment: %w", err)
	}

	return nil
}

func (r *stockAdjustmentRepository) FindPending(ctx context.Context) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT id, product_id, room_id, quantity, reason, status, created_at
		FROM stock_adjustments
		WHERE status = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, entity.AdjustmentStatusPending)
	if err != nil {
		r.log.Error("Failed to list pending stock adjustments", zap.Error(err))
		return nil, fmt.Errorf("list pending stock adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []*entity.StockAdjustment
	for rows.Next() {
		var adjustment entity.StockAdjustment
		err := rows.Scan(
			&adjustment.ID,
			&adjustment.ProductID,
			&adjustment.RoomID,
			&adjustment.Quantity,
			&adjustment.Reason,
			&adjustment.Status,
			&adjustment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan stock adjustment row", zap.Error(err))
			return nil, fmt.Errorf("scan stock adjustment row: %w", err)
		}
		adjustments = append(adjustments, &adjustment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock adjustments: %w", err)
	}

	return adjustments, nil
}

func (r *stockAdjustmentRepository) MarkApplied(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE stock_adjustments SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, entity.AdjustmentStatusApplied)
	if err != nil {
		r.log.Error("Failed to mark stock adjustment applied",
			zap.Error(err),
			zap.String("adjustment_id", id.String()),
		)
		return fmt.Errorf("mark stock adjustment %s applied: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
