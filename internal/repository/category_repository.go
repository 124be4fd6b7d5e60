package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustack/edustack-backend/internal/model"
)

// CategoryRepository handles category data access.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// List retrieves all categories.
func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	cat := &model.Category{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM categories WHERE id = $1`, id,
	).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Create inserts a new category.
func (r *CategoryRepository) Create(ctx context.Context, cat *model.Category) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		cat.Name, cat.Description,
	).Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}

// Update replaces a category's fields. Returns ErrNotFound if the id is missing.
func (r *CategoryRepository) Update(ctx context.Context, cat *model.Category) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE categories SET name = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3
		 RETURNING created_at, updated_at`,
		cat.Name, cat.Description, cat.ID,
	).Scan(&cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}

// Delete removes a category by its ID. Returns ErrNotFound if the id is missing.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
