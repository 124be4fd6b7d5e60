package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustack/edustack-backend/internal/model"
)

// BatchRepository handles batch data access.
type BatchRepository struct {
	pool *pgxpool.Pool
}

// NewBatchRepository creates a new BatchRepository.
func NewBatchRepository(pool *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{pool: pool}
}

// List retrieves all batches.
func (r *BatchRepository) List(ctx context.Context) ([]model.Batch, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, batch_name, created_at, updated_at
		 FROM batches ORDER BY batch_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []model.Batch
	for rows.Next() {
		var b model.Batch
		if err := rows.Scan(&b.ID, &b.BatchName, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// GetByID retrieves a batch by its ID.
func (r *BatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Batch, error) {
	b := &model.Batch{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, batch_name, created_at, updated_at
		 FROM batches WHERE id = $1`, id,
	).Scan(&b.ID, &b.BatchName, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a new batch.
func (r *BatchRepository) Create(ctx context.Context, b *model.Batch) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO batches (batch_name)
		 VALUES ($1)
		 RETURNING id, created_at, updated_at`,
		b.BatchName,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateBatch
		}
		return err
	}
	return nil
}

// Update replaces a batch's fields. Returns ErrNotFound if the id is missing.
func (r *BatchRepository) Update(ctx context.Context, b *model.Batch) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE batches SET batch_name = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $2
		 RETURNING created_at, updated_at`,
		b.BatchName, b.ID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateBatch
		}
		return err
	}
	return nil
}

// Delete removes a batch by its ID. Returns ErrNotFound if the id is missing.
func (r *BatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
