package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustack/edustack-backend/internal/model"
)

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

const classColumns = `id, module_id, name, description, pdf, video, created_at, updated_at`

func scanClass(row pgx.Row, c *model.Class) error {
	return row.Scan(&c.ID, &c.ModuleID, &c.Name, &c.Description, &c.PDF, &c.Video, &c.CreatedAt, &c.UpdatedAt)
}

// List retrieves all classes.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := scanClass(rows, &c); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// GetByID retrieves a class by its ID.
func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	c := &model.Class{}
	row := r.pool.QueryRow(ctx,
		`SELECT `+classColumns+` FROM classes WHERE id = $1`, id)
	if err := scanClass(row, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (module_id, name, description, pdf, video)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.ModuleID, c.Name, c.Description, c.PDF, c.Video,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update replaces a class's fields. Returns ErrNotFound if the id is missing.
func (r *ClassRepository) Update(ctx context.Context, c *model.Class) error {
	return r.pool.QueryRow(ctx,
		`UPDATE classes
		 SET module_id = $1, name = $2, description = $3, pdf = $4, video = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		c.ModuleID, c.Name, c.Description, c.PDF, c.Video, c.ID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// Delete removes a class by its ID. Returns ErrNotFound if the id is missing.
func (r *ClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByModule removes all classes belonging to a module. Returns the
// number of classes removed.
func (r *ClassRepository) DeleteByModule(ctx context.Context, moduleID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM classes WHERE module_id = $1`, moduleID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
