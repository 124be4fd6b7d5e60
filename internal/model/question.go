package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Question invariant violations.
var (
	ErrOptionsCount     = errors.New("exactly 4 options are required")
	ErrOptionsDuplicate = errors.New("options must be distinct")
	ErrAnswerNotOption  = errors.New("correct answer must be one of the options")
)

// QuestionOptionCount is the fixed number of answer options per question.
const QuestionOptionCount = 4

// Question is a quiz question. CorrectAnswer is never serialized to quiz
// takers; see SanitizedQuestion.
type Question struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"questionText"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correctAnswer"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Validate enforces the question invariant: exactly 4 distinct options and
// a correct answer that is one of them.
func (q *Question) Validate() error {
	if len(q.Options) != QuestionOptionCount {
		return ErrOptionsCount
	}
	seen := make(map[string]struct{}, QuestionOptionCount)
	for _, opt := range q.Options {
		if _, dup := seen[opt]; dup {
			return ErrOptionsDuplicate
		}
		seen[opt] = struct{}{}
	}
	if _, ok := seen[q.CorrectAnswer]; !ok {
		return ErrAnswerNotOption
	}
	return nil
}

// Sanitize strips the answer key before transmission to quiz takers.
func (q *Question) Sanitize() SanitizedQuestion {
	return SanitizedQuestion{
		ID:      q.ID,
		Text:    q.Text,
		Options: q.Options,
	}
}

// SanitizedQuestion is a question with its answer key removed.
type SanitizedQuestion struct {
	ID      uuid.UUID `json:"id"`
	Text    string    `json:"questionText"`
	Options []string  `json:"options"`
}

// QuestionRequest is the payload for creating or fully updating a question.
type QuestionRequest struct {
	Text          string   `json:"questionText" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
	Category      string   `json:"category"`
}
