package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
)

// ModuleService handles module business logic, including the cascading
// class cleanup on delete.
type ModuleService struct {
	moduleRepo *repository.ModuleRepository
	classRepo  *repository.ClassRepository
	log        zerolog.Logger
}

// NewModuleService creates a new ModuleService.
func NewModuleService(moduleRepo *repository.ModuleRepository, classRepo *repository.ClassRepository, log zerolog.Logger) *ModuleService {
	return &ModuleService{
		moduleRepo: moduleRepo,
		classRepo:  classRepo,
		log:        log.With().Str("component", "module_service").Logger(),
	}
}

// List retrieves all modules.
func (s *ModuleService) List(ctx context.Context) ([]model.Module, error) {
	return s.moduleRepo.List(ctx)
}

// GetByID retrieves a module by its ID.
func (s *ModuleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	return s.moduleRepo.GetByID(ctx, id)
}

// Create creates a new module.
func (s *ModuleService) Create(ctx context.Context, m *model.Module) error {
	return s.moduleRepo.Create(ctx, m)
}

// Update modifies an existing module.
func (s *ModuleService) Update(ctx context.Context, m *model.Module) error {
	return s.moduleRepo.Update(ctx, m)
}

// Delete removes a module, then its classes. Two single-document operations,
// not a transaction: a failure between the steps leaves orphaned classes.
// That inconsistency window is accepted; the second step's failure is logged
// and not surfaced.
func (s *ModuleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.moduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.classRepo.DeleteByModule(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("module_id", id.String()).
			Msg("module deleted but class cleanup failed; orphaned classes remain")
		return nil
	}
	if removed > 0 {
		s.log.Info().Int64("classes", removed).Str("module_id", id.String()).
			Msg("cascaded class deletion")
	}
	return nil
}
