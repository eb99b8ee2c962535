package workflows

import (
	"go.temporal.io/sdk/workflow"
)

// WorkerCore defines the interface for processing admitted webhook events
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// ProcessWebhookEvent runs the processing pipeline for one admitted event:
	// load, mark verified, dispatch by event type, mark processed. On failure
	// the event is marked failed and the error is re-raised so Temporal's
	// retry policy drives further attempts.
	ProcessWebhookEvent(ctx workflow.Context, eventID string) error
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{
		executor: executor,
	}
}
