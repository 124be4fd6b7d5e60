package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/edustack/edustack-backend/internal/model"
)

// Quiz engine errors.
var (
	ErrNoSubmissions    = errors.New("no submissions provided")
	ErrQuestionNotFound = errors.New("question not found")
)

// DefaultSampleSize is the number of questions served per quiz by default.
const DefaultSampleSize = 20

// QuestionStore is the question persistence surface the quiz engine needs.
type QuestionStore interface {
	Sample(ctx context.Context, category string, size int) ([]model.Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	Create(ctx context.Context, q *model.Question) error
	Update(ctx context.Context, q *model.Question) error
}

// AttemptRecorder receives scored quiz attempts for asynchronous persistence.
type AttemptRecorder interface {
	Record(ctx context.Context, result *model.ScoreResult) error
}

// QuizService samples questions, validates question writes, and scores
// submitted answers.
type QuizService struct {
	questions QuestionStore
	attempts  AttemptRecorder
	log       zerolog.Logger
}

// NewQuizService creates a new QuizService. attempts may be nil, in which
// case scored attempts are not recorded.
func NewQuizService(questions QuestionStore, attempts AttemptRecorder, log zerolog.Logger) *QuizService {
	return &QuizService{
		questions: questions,
		attempts:  attempts,
		log:       log.With().Str("component", "quiz_service").Logger(),
	}
}

// SampleQuestions returns up to size randomly sampled questions, optionally
// filtered by category, with answer keys stripped. If fewer questions exist
// than requested, all of them are returned.
func (s *QuizService) SampleQuestions(ctx context.Context, category string, size int) ([]model.SanitizedQuestion, error) {
	if size <= 0 {
		size = DefaultSampleSize
	}

	questions, err := s.questions.Sample(ctx, category, size)
	if err != nil {
		return nil, fmt.Errorf("sample questions: %w", err)
	}

	sanitized := make([]model.SanitizedQuestion, 0, len(questions))
	for i := range questions {
		sanitized = append(sanitized, questions[i].Sanitize())
	}
	return sanitized, nil
}

// ScoreSubmissions evaluates a batch of submissions against stored answers.
// Lookups run concurrently, one per submission; each submission resolves to
// an independent boolean so the final sum needs no shared counter. A
// submission referencing an unknown question contributes 0 and is logged,
// never surfaced as an error.
func (s *QuizService) ScoreSubmissions(ctx context.Context, submissions []model.Submission) (*model.ScoreResult, error) {
	if len(submissions) == 0 {
		return nil, ErrNoSubmissions
	}

	correct := make([]bool, len(submissions))

	var wg sync.WaitGroup
	for i := range submissions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			correct[i] = s.checkSubmission(ctx, submissions[i])
		}(i)
	}
	wg.Wait()

	score := 0
	for _, ok := range correct {
		if ok {
			score++
		}
	}

	result := model.NewScoreResult(score, len(submissions))

	if s.attempts != nil {
		// Attempt persistence is best-effort; scoring never fails on it.
		if err := s.attempts.Record(ctx, result); err != nil {
			s.log.Warn().Err(err).Msg("failed to record quiz attempt")
		}
	}

	return result, nil
}

// checkSubmission resolves a single submission to correct/incorrect.
// Any lookup failure counts as incorrect.
func (s *QuizService) checkSubmission(ctx context.Context, sub model.Submission) bool {
	id, err := uuid.Parse(sub.QuestionID)
	if err != nil {
		s.log.Warn().Str("question_id", sub.QuestionID).Msg("submission references malformed question id")
		return false
	}

	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("question_id", sub.QuestionID).Msg("submission question lookup failed")
		return false
	}

	return question.CorrectAnswer == sub.Answer
}

// AddQuestion validates and persists a new question.
func (s *QuizService) AddQuestion(ctx context.Context, req *model.QuestionRequest) (*model.Question, error) {
	question := &model.Question{
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Category:      req.Category,
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

// UpdateQuestion replaces all mutable fields of an existing question and
// re-validates the answer invariant. Returns ErrQuestionNotFound if the id
// does not exist.
func (s *QuizService) UpdateQuestion(ctx context.Context, id uuid.UUID, req *model.QuestionRequest) (*model.Question, error) {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("load question: %w", err)
	}

	question := &model.Question{
		ID:            id,
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Category:      req.Category,
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.questions.Update(ctx, question); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("update question: %w", err)
	}
	return question, nil
}
