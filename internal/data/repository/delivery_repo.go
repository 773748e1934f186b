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

type DeliveryRepository interface {
	// CreateTx and FindByOrderIDTx run inside the accept-transition
	// transaction so the status write and the note insert land together.
	CreateTx(ctx context.Context, q database.Queryer, note *entity.DeliveryNote) error
	FindByOrderIDTx(ctx context.Context, q database.Queryer, orderID uuid.UUID) (*entity.DeliveryNote, error)

	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryNote, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.DeliveryNote, error)
	Count(ctx context.Context) (int64, error)
}

type deliveryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDeliveryRepository(db database.PgxIface, log *zap.Logger) DeliveryRepository {
	return &deliveryRepository{
		db:  db,
		log: log.With(zap.String("repository", "delivery")),
	}
}

func (r *deliveryRepository) CreateTx(ctx context.Context, q database.Queryer, note *entity.DeliveryNote) error {
	query := `
		INSERT INTO delivery_notes (id, order_id, delivery_date, delivery_address, status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		note.ID,
		note.OrderID,
		note.DeliveryDate,
		note.DeliveryAddress,
		note.Status,
		note.Note,
		note.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create delivery note",
			zap.Error(err),
			zap.String("order_id", note.OrderID.String()),
		)
		return fmt.Errorf("create delivery note for order %s: %w", note.OrderID.String(), err)
	}

	return nil
}

func (r *deliveryRepository) FindByOrderIDTx(ctx context.Context, q database.Queryer, orderID uuid.UUID) (*entity.DeliveryNote, error) {
	return r.findByOrderID(ctx, q, orderID)
}

func (r *deliveryRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.DeliveryNote, error) {
	return r.findByOrderID(ctx, r.db, orderID)
}

func (r *deliveryRepository) findByOrderID(ctx context.Context, q database.Queryer, orderID uuid.UUID) (*entity.DeliveryNote, error) {
	query := `
		SELECT id, order_id, delivery_date, delivery_address, status, note, created_at
		FROM delivery_notes
		WHERE order_id = $1
	`

	var note entity.DeliveryNote
	err := q.QueryRow(ctx, query, orderID).Scan(
		&note.ID,
		&note.OrderID,
		&note.DeliveryDate,
		&note.DeliveryAddress,
		&note.Status,
		&note.Note,
		&note.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find delivery note by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find delivery note for order %s: %w", orderID.String(), err)
	}

	return &note, nil
}

func (r *deliveryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.DeliveryNote, error) {
	query := `
		SELECT id, order_id, delivery_date, delivery_address, status, note, created_at
		FROM delivery_notes
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list delivery notes", zap.Error(err))
		return nil, fmt.Errorf("list delivery notes: %w", err)
	}
	defer rows.Close()

	var notes []*entity.DeliveryNote
	for rows.Next() {
		var note entity.DeliveryNote
		err := rows.Scan(
			&note.ID,
			&note.OrderID,
			&note.DeliveryDate,
			&note.DeliveryAddress,
			&note.Status,
			&note.Note,
			&note.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan delivery note row", zap.Error(err))
			return nil, fmt.Errorf("scan delivery note row: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate delivery notes: %w", err)
	}

	return notes, nil
}

func (r *deliveryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM delivery_notes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count delivery notes: %w", err)
	}

	return count, nil
}
