package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/hookline/gateway/internal/logger"
	"github.com/hookline/gateway/internal/store/schema"
)

// ProcessWebhookEvent runs the processing pipeline for one admitted event.
// Every attempt re-loads durable state, so a replayed or retried event goes
// through the same path as a fresh one.
func (w *workerCore) ProcessWebhookEvent(ctx workflow.Context, eventID string) error {
	logger.InfoWf(ctx, "Starting webhook event processing",
		zap.String("id", eventID))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: 5 * time.Second,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	// Load the event. A missing row is a hard failure: the id came off the
	// queue, so the admitted row must exist.
	var event *schema.WebhookEvent
	if err := workflow.ExecuteActivity(activityCtx, w.executor.GetWebhookEvent, eventID).Get(activityCtx, &event); err != nil {
		return err
	}

	// Claim the event before doing any work
	if err := workflow.ExecuteActivity(activityCtx, w.executor.MarkEventVerified, eventID).Get(activityCtx, nil); err != nil {
		return w.failEvent(ctx, activityCtx, eventID, err)
	}

	// Dispatch by event type. Handlers are effect-free beyond logging;
	// unrecognized types complete as a no-op rather than failing, so new
	// provider event types never poison the queue.
	action, known := classifyEvent(event.EventType)
	if known {
		logger.InfoWf(ctx, "Handling webhook event",
			zap.String("id", eventID),
			zap.String("event_type", event.EventType),
			zap.String("action", action))
	} else {
		logger.WarnWf(ctx, "Unhandled webhook event type",
			zap.String("id", eventID),
			zap.String("event_type", event.EventType))
	}

	if err := workflow.ExecuteActivity(activityCtx, w.executor.MarkEventProcessed, eventID).Get(activityCtx, nil); err != nil {
		return w.failEvent(ctx, activityCtx, eventID, err)
	}

	logger.InfoWf(ctx, "Webhook event processed",
		zap.String("id", eventID),
		zap.String("event_type", event.EventType))

	return nil
}

// failEvent records the processing error on the event and re-raises it.
// The failed marker itself is best effort: if it cannot be written the
// original error still propagates for Temporal to retry.
func (w *workerCore) failEvent(ctx workflow.Context, activityCtx workflow.Context, eventID string, cause error) error {
	if err := workflow.ExecuteActivity(activityCtx, w.executor.MarkEventFailed, eventID, cause.Error()).Get(activityCtx, nil); err != nil {
		logger.ErrorWf(ctx, err, zap.String("id", eventID))
	}
	return cause
}
