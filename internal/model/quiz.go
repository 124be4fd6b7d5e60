package model

import "fmt"

// Submission is a client-supplied answer to a single question. It is never
// persisted; a quiz submit request carries an ordered sequence of these.
type Submission struct {
	QuestionID string `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
}

// ScoreResult is the outcome of scoring a batch of submissions.
type ScoreResult struct {
	TotalQuestions int    `json:"totalQuestions"`
	Score          int    `json:"score"`
	Mark           string `json:"mark"`
}

// NewScoreResult derives the mark string from a score over a total.
func NewScoreResult(score, total int) *ScoreResult {
	return &ScoreResult{
		TotalQuestions: total,
		Score:          score,
		Mark:           fmt.Sprintf("%d out of %d", score, total),
	}
}
