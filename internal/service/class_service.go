package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
)

// ClassService handles class business logic.
type ClassService struct {
	classRepo *repository.ClassRepository
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo *repository.ClassRepository) *ClassService {
	return &ClassService{classRepo: classRepo}
}

// List retrieves all classes.
func (s *ClassService) List(ctx context.Context) ([]model.Class, error) {
	return s.classRepo.List(ctx)
}

// GetByID retrieves a class by its ID.
func (s *ClassService) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// Create creates a new class.
func (s *ClassService) Create(ctx context.Context, c *model.Class) error {
	return s.classRepo.Create(ctx, c)
}

// Update modifies an existing class.
func (s *ClassService) Update(ctx context.Context, c *model.Class) error {
	return s.classRepo.Update(ctx, c)
}

// Delete removes a class.
func (s *ClassService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.classRepo.Delete(ctx, id)
}
