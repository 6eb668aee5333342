// Package department is the service layer for departments
package department

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/staffdesk/internal/models"
)

// Service defines all department-related business operations
type Service interface {
	FindAll(ctx context.Context) ([]*models.Department, error)
	SaveOrUpdate(ctx context.Context, d *models.Department) error
	Remove(ctx context.Context, d *models.Department) error
}

// repository defines the data access methods needed by the department service
// This interface is private to the service layer
type repository interface {
	FindAll(ctx context.Context) ([]*models.Department, error)
	Insert(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, d *models.Department) error
	DeleteByID(ctx context.Context, id int) error
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	logger *slog.Logger
}

// NewService creates a new department service. A nil logger falls back to
// slog.Default.
func NewService(repo repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger.With("service", "department"),
	}
}

// FindAll retrieves all departments
func (s *service) FindAll(ctx context.Context) ([]*models.Department, error) {
	return s.repo.FindAll(ctx)
}

// SaveOrUpdate inserts a department without ID and updates one with ID
func (s *service) SaveOrUpdate(ctx context.Context, d *models.Department) error {
	if d == nil {
		return ErrNilDepartment
	}

	if d.IsNew() {
		if err := s.repo.Insert(ctx, d); err != nil {
			return fmt.Errorf("failed to insert department: %w", err)
		}
		s.logger.Info("department inserted", "id", d.GetID(), "name", d.Name)
		return nil
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	s.logger.Info("department updated", "id", d.GetID(), "name", d.Name)
	return nil
}

// Remove deletes a department by its ID
func (s *service) Remove(ctx context.Context, d *models.Department) error {
	if d == nil || d.ID == nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteByID(ctx, *d.ID); err != nil {
		s.logger.Warn("department delete rejected", "id", *d.ID, "error", err)
		return fmt.Errorf("failed to delete department: %w", err)
	}
	s.logger.Info("department deleted", "id", *d.ID)
	return nil
}
