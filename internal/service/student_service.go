package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/edustack/edustack-backend/internal/model"
)

// StudentStore is the student persistence surface the service needs.
type StudentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	GetByUsername(ctx context.Context, username string) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]model.Student, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Student, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StudentService handles student account business logic. Password hashing
// happens here, exactly once per raw-password change.
type StudentService struct {
	students StudentStore
	auth     *AuthService
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, auth *AuthService) *StudentService {
	return &StudentService{students: students, auth: auth}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	return s.students.GetByID(ctx, id)
}

// GetByUsername retrieves a student by their unique username.
func (s *StudentService) GetByUsername(ctx context.Context, username string) (*model.Student, error) {
	return s.students.GetByUsername(ctx, username)
}

// List retrieves all students.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.students.List(ctx)
}

// ListByBatch retrieves students assigned to a batch.
func (s *StudentService) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]model.Student, error) {
	return s.students.ListByBatch(ctx, batchID)
}

// ListByCourse retrieves students enrolled in a course.
func (s *StudentService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Student, error) {
	return s.students.ListByCourse(ctx, courseID)
}

// Register creates a new account with a hashed password. The raw password
// never reaches the store. Duplicate usernames surface as
// repository.ErrDuplicateUsername from the store's unique index.
func (s *StudentService) Register(ctx context.Context, student *model.Student, password string) error {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	student.PasswordHash = hash
	if student.Role == "" {
		student.Role = model.RoleStudent
	}
	return s.students.Create(ctx, student)
}

// Update modifies a student's details. The stored hash is replaced only when
// a new raw password is supplied; unrelated field updates leave it untouched.
func (s *StudentService) Update(ctx context.Context, student *model.Student, newPassword string) error {
	if err := s.students.Update(ctx, student); err != nil {
		return err
	}
	if newPassword != "" {
		hash, err := s.auth.HashPassword(newPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		return s.students.UpdatePassword(ctx, student.ID, hash)
	}
	return nil
}

// Delete removes a student by ID.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.students.Delete(ctx, id)
}
