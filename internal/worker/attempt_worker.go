package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edustack/edustack-backend/internal/config"
)

const (
	AttemptBatchSize    = 50
	AttemptBatchTimeout = 2 * time.Second
	AttemptPollTimeout  = 1 * time.Second
)

// AttemptWorker drains the quiz attempt queue and bulk-inserts attempts
// into PostgreSQL.
type AttemptWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewAttemptWorker creates a new AttemptWorker.
func NewAttemptWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *AttemptWorker {
	return &AttemptWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "attempt_worker").Logger(),
	}
}

// Start runs the worker loop until ctx is cancelled. Remaining batched items
// are flushed on shutdown.
func (w *AttemptWorker) Start(ctx context.Context) {
	w.log.Info().Msg("AttemptWorker started")

	batch := make([]*attemptPayload, 0, AttemptBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= AttemptBatchSize || time.Since(lastFlush) >= AttemptBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, AttemptPollTimeout, config.WorkerKey.QuizAttemptQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var p attemptPayload
			if err := json.Unmarshal([]byte(item[1]), &p); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &p)
		}
	}
}

// flushSafe persists a batch, falling back to per-item inserts with requeue
// on failure so no attempt is silently dropped.
func (w *AttemptWorker) flushSafe(ctx context.Context, batch []*attemptPayload) {
	if len(batch) == 0 {
		return
	}

	if err := w.bulkInsertAttempts(ctx, batch); err != nil {
		w.log.Warn().Err(err).Msg("bulk attempt insert failed, using fallback")

		for _, p := range batch {
			if err := w.insertSingle(ctx, p); err != nil {
				w.log.Error().Err(err).Msg("insertSingle failed, requeueing")
				raw, _ := json.Marshal(p)
				w.rdb.RPush(ctx, config.WorkerKey.QuizAttemptQueue, raw)
			}
		}
	}
}

// bulkInsertAttempts writes a whole batch with a single UNNEST insert.
func (w *AttemptWorker) bulkInsertAttempts(ctx context.Context, batch []*attemptPayload) error {
	n := len(batch)

	totals := make([]int, 0, n)
	scores := make([]int, 0, n)
	submittedAts := make([]time.Time, 0, n)

	for _, p := range batch {
		totals = append(totals, p.TotalQuestions)
		scores = append(scores, p.Score)
		submittedAts = append(submittedAts, p.SubmittedAt)
	}

	_, err := w.pool.Exec(ctx,
		`INSERT INTO quiz_attempts (total_questions, score, submitted_at)
		 SELECT * FROM UNNEST($1::int[], $2::int[], $3::timestamptz[])`,
		totals, scores, submittedAts,
	)
	return err
}

func (w *AttemptWorker) insertSingle(ctx context.Context, p *attemptPayload) error {
	_, err := w.pool.Exec(ctx,
		`INSERT INTO quiz_attempts (total_questions, score, submitted_at)
		 VALUES ($1, $2, $3)`,
		p.TotalQuestions, p.Score, p.SubmittedAt,
	)
	return err
}
