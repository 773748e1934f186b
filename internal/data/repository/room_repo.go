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

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	// DecrementAvailability takes one unit of availability, guarded above
	// zero. Zero affected rows means the room is gone or fully booked.
	DecrementAvailability(ctx context.Context, id uuid.UUID) (int64, error)
	IncrementAvailability(ctx context.Context, id uuid.UUID) (int64, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, hotel_id, room_number, price_per_night, availability, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.HotelID,
		&room.RoomNumber,
		&room.PricePerNight,
		&room.Availability,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) DecrementAvailability(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		UPDATE rooms
		SET availability = availability - 1, updated_at = NOW()
		WHERE id = $1 AND availability > 0
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to decrement room availability",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return 0, fmt.Errorf("decrement availability for room %s: %w", id.String(), err)
	}

	return result.RowsAffected(), nil
}

func (r *roomRepository) IncrementAvailability(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		UPDATE rooms
		SET availability = availability + 1, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to increment room availability",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return 0, fmt.Errorf("increment availability for room %s: %w", id.String(), err)
	}

	return result.RowsAffected(), nil
}
