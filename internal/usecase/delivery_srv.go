package usecase

import (
	"context"
	"fmt"

	"shop-booking/internal/data/repository"
	"shop-booking/internal/dto/request"
	"shop-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeliveryService is the read side of delivery notes; creation happens only
// through the order accept transition.
type DeliveryService interface {
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DeliveryNoteResponse], error)
	GetByOrderID(ctx context.Context, orderID string) (*response.DeliveryNoteResponse, error)
}

type deliveryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDeliveryService(repo *repository.Repository, log *zap.Logger) DeliveryService {
	return &deliveryService{
		repo: repo,
		log:  log.With(zap.String("service", "delivery")),
	}
}

func (s *deliveryService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DeliveryNoteResponse], error) {
	notes, err := s.repo.Delivery.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list delivery notes: %w", err)
	}

	total, err := s.repo.Delivery.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count delivery notes: %w", err)
	}

	noteResponses := make([]response.DeliveryNoteResponse, len(notes))
	for i, note := range notes {
		noteResponses[i] = response.DeliveryNoteToResponse(note)
	}

	return response.NewPaginatedResponse(noteResponses, req.Page, req.PerPage, total), nil
}

func (s *deliveryService) GetByOrderID(ctx context.Context, orderID string) (*response.DeliveryNoteResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid order ID %s", ErrValidation, orderID)
	}

	note, err := s.repo.Delivery.FindByOrderID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery note for order %s: %w", orderID, err)
	}
	if note == nil {
		return nil, repository.ErrNotFound
	}

	resp := response.DeliveryNoteToResponse(note)
	return &resp, nil
}
