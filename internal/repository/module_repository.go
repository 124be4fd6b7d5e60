package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustack/edustack-backend/internal/model"
)

// ModuleRepository handles module data access.
type ModuleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository creates a new ModuleRepository.
func NewModuleRepository(pool *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{pool: pool}
}

const moduleColumns = `id, name, type, price, description, subheader, img, star_rating, author, category, created_at, updated_at`

func scanModule(row pgx.Row, m *model.Module) error {
	return row.Scan(&m.ID, &m.Name, &m.Type, &m.Price, &m.Description, &m.Subheader,
		&m.Img, &m.StarRating, &m.Author, &m.Category, &m.CreatedAt, &m.UpdatedAt)
}

// List retrieves all modules.
func (r *ModuleRepository) List(ctx context.Context) ([]model.Module, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+moduleColumns+` FROM modules ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []model.Module
	for rows.Next() {
		var m model.Module
		if err := scanModule(rows, &m); err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

// GetByID retrieves a module by its ID.
func (r *ModuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	m := &model.Module{}
	row := r.pool.QueryRow(ctx,
		`SELECT `+moduleColumns+` FROM modules WHERE id = $1`, id)
	if err := scanModule(row, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a new module.
func (r *ModuleRepository) Create(ctx context.Context, m *model.Module) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO modules (name, type, price, description, subheader, img, star_rating, author, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		m.Name, m.Type, m.Price, m.Description, m.Subheader, m.Img, m.StarRating, m.Author, m.Category,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// Update replaces a module's fields. Returns ErrNotFound if the id is missing.
func (r *ModuleRepository) Update(ctx context.Context, m *model.Module) error {
	return r.pool.QueryRow(ctx,
		`UPDATE modules
		 SET name = $1, type = $2, price = $3, description = $4, subheader = $5,
		     img = $6, star_rating = $7, author = $8, category = $9, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $10
		 RETURNING created_at, updated_at`,
		m.Name, m.Type, m.Price, m.Description, m.Subheader, m.Img, m.StarRating, m.Author, m.Category, m.ID,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
}

// Delete removes a module by its ID. Returns ErrNotFound if the id is missing.
func (r *ModuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM modules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
