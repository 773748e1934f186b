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

// UserRepository reads contact data from the user vertical. Account
// management and authentication are owned by another service.
type UserRepository interface {
	GetContactInfo(ctx context.Context, userID uuid.UUID) (*entity.ContactInfo, error)
	GetContactInfoTx(ctx context.Context, q database.Queryer, userID uuid.UUID) (*entity.ContactInfo, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) GetContactInfo(ctx context.Context, userID uuid.UUID) (*entity.ContactInfo, error) {
	return r.getContactInfo(ctx, r.db, userID)
}

func (r *userRepository) GetContactInfoTx(ctx context.Context, q database.Queryer, userID uuid.UUID) (*entity.ContactInfo, error) {
	return r.getContactInfo(ctx, q, userID)
}

func (r *userRepository) getContactInfo(ctx context.Context, q database.Queryer, userID uuid.UUID) (*entity.ContactInfo, error) {
	query := `SELECT full_name, address, phone FROM users WHERE id = $1`

	var contact entity.ContactInfo
	err := q.QueryRow(ctx, query, userID).Scan(
		&contact.FullName,
		&contact.Address,
		&contact.Phone,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get user contact info",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get contact info for user %s: %w", userID.String(), err)
	}

	return &contact, nil
}
