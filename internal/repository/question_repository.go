package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edustack/edustack-backend/internal/model"
)

// QuestionRepository handles quiz question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// Sample draws a uniform random sample of up to size questions, optionally
// filtered by category. ORDER BY random() is the relational analog of a
// document-store $sample stage; the population here is small enough that
// a full sort is acceptable.
func (r *QuestionRepository) Sample(ctx context.Context, category string, size int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question_text, options, correct_answer, category, created_at, updated_at
		 FROM questions
		 WHERE ($1 = '' OR category = $1)
		 ORDER BY random()
		 LIMIT $2`, category, size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Options, &q.CorrectAnswer, &q.Category, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetByID retrieves a question by its ID, answer key included.
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	q := &model.Question{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, question_text, options, correct_answer, category, created_at, updated_at
		 FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.Text, &q.Options, &q.CorrectAnswer, &q.Category, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts a new question.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (question_text, options, correct_answer, category)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		q.Text, q.Options, q.CorrectAnswer, q.Category,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// Update replaces all mutable question fields. Returns ErrNotFound if the
// id is missing.
func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`UPDATE questions
		 SET question_text = $1, options = $2, correct_answer = $3, category = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5
		 RETURNING created_at, updated_at`,
		q.Text, q.Options, q.CorrectAnswer, q.Category, q.ID,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
}
