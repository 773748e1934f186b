package usecase

import (
	"context"
	"fmt"

	"shop-booking/internal/data/repository"
	"shop-booking/internal/dto/request"
	"shop-booking/internal/dto/response"
	"shop-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	// AddItem merges by (customer, product) and returns the line id.
	AddItem(ctx context.Context, req *request.AddCartItemRequest) (string, error)
	GetCart(ctx context.Context, customerID string) (*response.CartResponse, error)
	// UpdateQuantity sets the absolute quantity; zero or negative removes
	// the line.
	UpdateQuantity(ctx context.Context, lineID string, req *request.UpdateCartItemRequest) error
	RemoveItem(ctx context.Context, lineID string) error
	Clear(ctx context.Context, customerID string) error
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) AddItem(ctx context.Context, req *request.AddCartItemRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add cart item validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid customer ID %s", ErrValidation, req.CustomerID)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return "", fmt.Errorf("%w: invalid product ID %s", ErrValidation, req.ProductID)
	}

	// Reject unknown products up front; the checkout join would silently
	// drop the line otherwise.
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return "", fmt.Errorf("check product %s: %w", req.ProductID, err)
	}
	if product == nil {
		return "", fmt.Errorf("%w: product %s not found", ErrValidation, req.ProductID)
	}

	lineID, err := s.repo.Cart.AddItem(ctx, customerID, productID, req.Quantity)
	if err != nil {
		return "", fmt.Errorf("add item to cart: %w", err)
	}

	s.log.Info("Cart item added",
		zap.String("line_id", lineID.String()),
		zap.String("customer_id", req.CustomerID),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)

	return lineID.String(), nil
}

func (s *cartService) GetCart(ctx context.Context, customerID string) (*response.CartResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	lines, err := s.repo.Cart.FindByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cart for customer %s: %w", customerID, err)
	}

	return response.CartToResponse(customerID, lines), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, lineID string, req *request.UpdateCartItemRequest) error {
	id, err := uuid.Parse(lineID)
	if err != nil {
		return fmt.Errorf("%w: invalid cart line ID %s", ErrValidation, lineID)
	}

	// Zero or negative quantity removes the line, keeping the "cart line
	// quantity is always positive" invariant.
	if req.Quantity <= 0 {
		return s.removeLine(ctx, id)
	}

	if err := s.repo.Cart.UpdateQuantity(ctx, id, req.Quantity); err != nil {
		return err
	}

	s.log.Info("Cart line quantity updated",
		zap.String("line_id", lineID),
		zap.Int("quantity", req.Quantity),
	)

	return nil
}

func (s *cartService) RemoveItem(ctx context.Context, lineID string) error {
	id, err := uuid.Parse(lineID)
	if err != nil {
		return fmt.Errorf("%w: invalid cart line ID %s", ErrValidation, lineID)
	}

	return s.removeLine(ctx, id)
}

func (s *cartService) removeLine(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Cart.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Cart line removed", zap.String("line_id", id.String()))
	return nil
}

func (s *cartService) Clear(ctx context.Context, customerID string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	if err := s.repo.Cart.Clear(ctx, id); err != nil {
		return err
	}

	s.log.Info("Cart cleared", zap.String("customer_id", customerID))
	return nil
}
