package config

// workerKeys centralizes Redis queue names used by background workers.
type workerKeys struct {
	// QuizAttemptQueue buffers scored quiz attempts awaiting persistence.
	QuizAttemptQueue string
}

// WorkerKey holds the Redis key names shared between producers and workers.
var WorkerKey = workerKeys{
	QuizAttemptQueue: "worker:quiz_attempts",
}
