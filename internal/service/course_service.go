package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
)

// CourseService handles course business logic.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

// GetByID retrieves a course by its ID.
func (s *CourseService) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Create creates a new course. Name uniqueness is enforced by the store.
func (s *CourseService) Create(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Create(ctx, c)
}

// Update modifies an existing course.
func (s *CourseService) Update(ctx context.Context, c *model.Course) error {
	return s.courseRepo.Update(ctx, c)
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.courseRepo.Delete(ctx, id)
}
