package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
)

// BatchService handles batch business logic.
type BatchService struct {
	batchRepo *repository.BatchRepository
}

// NewBatchService creates a new BatchService.
func NewBatchService(batchRepo *repository.BatchRepository) *BatchService {
	return &BatchService{batchRepo: batchRepo}
}

// List retrieves all batches.
func (s *BatchService) List(ctx context.Context) ([]model.Batch, error) {
	return s.batchRepo.List(ctx)
}

// GetByID retrieves a batch by its ID.
func (s *BatchService) GetByID(ctx context.Context, id uuid.UUID) (*model.Batch, error) {
	return s.batchRepo.GetByID(ctx, id)
}

// Create creates a new batch. Name uniqueness is enforced by the store.
func (s *BatchService) Create(ctx context.Context, b *model.Batch) error {
	return s.batchRepo.Create(ctx, b)
}

// Update modifies an existing batch.
func (s *BatchService) Update(ctx context.Context, b *model.Batch) error {
	return s.batchRepo.Update(ctx, b)
}

// Delete removes a batch.
func (s *BatchService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.batchRepo.Delete(ctx, id)
}
