package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
)

// CategoryService handles category business logic.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List retrieves all categories.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}

// GetByID retrieves a category by its ID.
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// Create creates a new category. Name uniqueness is enforced by the store.
func (s *CategoryService) Create(ctx context.Context, cat *model.Category) error {
	return s.categoryRepo.Create(ctx, cat)
}

// Update modifies an existing category.
func (s *CategoryService) Update(ctx context.Context, cat *model.Category) error {
	return s.categoryRepo.Update(ctx, cat)
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}
