package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustack/edustack-backend/internal/model"
)

// StudentRepository handles student account data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, username, password_hash, role, image, batch_id, created_at, updated_at`

func scanStudent(row pgx.Row, s *model.Student) error {
	return row.Scan(&s.ID, &s.Username, &s.PasswordHash, &s.Role, &s.Image, &s.BatchID, &s.CreatedAt, &s.UpdatedAt)
}

// GetByID retrieves a student by ID, course references included.
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	s := &model.Student{}
	row := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	if err := scanStudent(row, s); err != nil {
		return nil, err
	}
	if err := r.loadCourseIDs(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByUsername retrieves a student by their unique username.
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*model.Student, error) {
	s := &model.Student{}
	row := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE username = $1`, username)
	if err := scanStudent(row, s); err != nil {
		return nil, err
	}
	if err := r.loadCourseIDs(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all students.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	return r.queryStudents(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY username`)
}

// ListByBatch retrieves students assigned to a batch.
func (r *StudentRepository) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]model.Student, error) {
	return r.queryStudents(ctx,
		`SELECT `+studentColumns+` FROM students WHERE batch_id = $1 ORDER BY username`, batchID)
}

// ListByCourse retrieves students enrolled in a course.
func (r *StudentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Student, error) {
	return r.queryStudents(ctx,
		`SELECT s.id, s.username, s.password_hash, s.role, s.image, s.batch_id, s.created_at, s.updated_at
		 FROM students s
		 JOIN student_courses sc ON sc.student_id = s.id
		 WHERE sc.course_id = $1
		 ORDER BY s.username`, courseID)
}

// Create inserts a new student. The caller supplies an already-hashed password.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (username, password_hash, role, image, batch_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.Username, s.PasswordHash, s.Role, s.Image, s.BatchID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	if len(s.CourseIDs) > 0 {
		return r.replaceCourses(ctx, s.ID, s.CourseIDs)
	}
	return nil
}

// Update modifies a student's fields, excluding the password hash.
// Returns ErrNotFound if the id is missing.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE students
		 SET username = $1, role = $2, image = $3, batch_id = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5
		 RETURNING created_at, updated_at`,
		s.Username, s.Role, s.Image, s.BatchID, s.ID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	return r.replaceCourses(ctx, s.ID, s.CourseIDs)
}

// UpdatePassword replaces a student's stored password hash.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		hash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a student by ID. Returns ErrNotFound if the id is missing.
func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...interface{}) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range students {
		if err := r.loadCourseIDs(ctx, &students[i]); err != nil {
			return nil, err
		}
	}
	return students, nil
}

// loadCourseIDs fills s.CourseIDs from the student_courses join table.
func (r *StudentRepository) loadCourseIDs(ctx context.Context, s *model.Student) error {
	rows, err := r.pool.Query(ctx,
		`SELECT course_id FROM student_courses WHERE student_id = $1`, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	s.CourseIDs = []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return err
		}
		s.CourseIDs = append(s.CourseIDs, id)
	}
	return rows.Err()
}

// replaceCourses rewrites the student's course set. Two statements, no
// transaction — single-document semantics only, matching the rest of the
// store operations.
func (r *StudentRepository) replaceCourses(ctx context.Context, studentID uuid.UUID, courseIDs []uuid.UUID) error {
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM student_courses WHERE student_id = $1`, studentID); err != nil {
		return err
	}
	for _, courseID := range courseIDs {
		if _, err := r.pool.Exec(ctx,
			`INSERT INTO student_courses (student_id, course_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`, studentID, courseID); err != nil {
			return err
		}
	}
	return nil
}
