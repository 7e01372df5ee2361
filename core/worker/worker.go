package worker

import "context"

// Worker is a long-running background task owned by a module. Run
// blocks until the worker stops or the context is canceled.
type Worker interface {
	Run(ctx context.Context) error
}
