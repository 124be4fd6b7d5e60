package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edustack/edustack-backend/internal/config"
	"github.com/edustack/edustack-backend/internal/model"
)

// attemptPayload is the wire format queued between the quiz engine and the
// attempt worker.
type attemptPayload struct {
	TotalQuestions int       `json:"total_questions"`
	Score          int       `json:"score"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// AttemptQueue pushes scored quiz attempts onto the Redis persistence queue.
// It implements service.AttemptRecorder.
type AttemptQueue struct {
	rdb *redis.Client
}

// NewAttemptQueue creates a new AttemptQueue.
func NewAttemptQueue(rdb *redis.Client) *AttemptQueue {
	return &AttemptQueue{rdb: rdb}
}

// Record enqueues a scored attempt for asynchronous persistence.
func (q *AttemptQueue) Record(ctx context.Context, result *model.ScoreResult) error {
	raw, err := json.Marshal(attemptPayload{
		TotalQuestions: result.TotalQuestions,
		Score:          result.Score,
		SubmittedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return q.rdb.RPush(ctx, config.WorkerKey.QuizAttemptQueue, raw).Err()
}
