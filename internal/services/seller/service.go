// Package seller is the service layer for sellers
package seller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/staffdesk/internal/models"
)

// Service defines all seller-related business operations
type Service interface {
	FindAll(ctx context.Context) ([]*models.Seller, error)
	FindByDepartment(ctx context.Context, d *models.Department) ([]*models.Seller, error)
	SaveOrUpdate(ctx context.Context, s *models.Seller) error
	Remove(ctx context.Context, s *models.Seller) error
}

// repository defines the data access methods needed by the seller service
type repository interface {
	FindAll(ctx context.Context) ([]*models.Seller, error)
	FindByDepartment(ctx context.Context, departmentID int) ([]*models.Seller, error)
	Insert(ctx context.Context, s *models.Seller) error
	Update(ctx context.Context, s *models.Seller) error
	DeleteByID(ctx context.Context, id int) error
}

type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new seller service. A nil logger falls back to
// slog.Default.
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger.With("service", "seller"),
	}
}

// FindAll retrieves all sellers with their departments
func (s *service) FindAll(ctx context.Context) ([]*models.Seller, error) {
	return s.repo.FindAll(ctx)
}

// FindByDepartment retrieves the sellers that belong to a department
func (s *service) FindByDepartment(ctx context.Context, d *models.Department) ([]*models.Seller, error) {
	if d == nil || d.ID == nil {
		return nil, ErrInvalidID
	}
	return s.repo.FindByDepartment(ctx, *d.ID)
}

// SaveOrUpdate routes to insert when the seller has no ID, update otherwise
func (s *service) SaveOrUpdate(ctx context.Context, seller *models.Seller) error {
	if seller == nil {
		return ErrNilSeller
	}

	if seller.IsNew() {
		if err := s.repo.Insert(ctx, seller); err != nil {
			return fmt.Errorf("failed to insert seller: %w", err)
		}
		s.logger.Info("seller inserted", "id", seller.GetID(), "email", seller.Email)
		return nil
	}

	if err := s.repo.Update(ctx, seller); err != nil {
		return fmt.Errorf("failed to update seller: %w", err)
	}
	s.logger.Info("seller updated", "id", seller.GetID(), "email", seller.Email)
	return nil
}

// Remove deletes a seller by its ID
func (s *service) Remove(ctx context.Context, seller *models.Seller) error {
	if seller == nil || seller.ID == nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteByID(ctx, *seller.ID); err != nil {
		return fmt.Errorf("failed to delete seller: %w", err)
	}
	s.logger.Info("seller deleted", "id", *seller.ID)
	return nil
}
