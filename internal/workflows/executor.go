package workflows

import (
	"context"
	"fmt"

	"github.com/hookline/gateway/internal/domain"
	"github.com/hookline/gateway/internal/store"
	"github.com/hookline/gateway/internal/store/schema"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// GetWebhookEvent loads a stored webhook event by its id
	GetWebhookEvent(ctx context.Context, eventID string) (*schema.WebhookEvent, error)

	// MarkEventVerified transitions an event to verified, claiming it for processing
	MarkEventVerified(ctx context.Context, eventID string) error

	// MarkEventProcessed transitions an event to processed and stamps processed_at
	MarkEventProcessed(ctx context.Context, eventID string) error

	// MarkEventFailed transitions an event to failed, recording the error and
	// incrementing the retry counter
	MarkEventFailed(ctx context.Context, eventID string, errorMessage string) error
}

// executor is the concrete implementation of Executor
type executor struct {
	store store.Store
}

// NewExecutor creates a new activity executor over the event store
func NewExecutor(dataStore store.Store) Executor {
	return &executor{
		store: dataStore,
	}
}

// GetWebhookEvent loads a stored webhook event by its id
func (e *executor) GetWebhookEvent(ctx context.Context, eventID string) (*schema.WebhookEvent, error) {
	event, err := e.store.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", eventID, err)
	}
	return event, nil
}

// MarkEventVerified transitions an event to verified
func (e *executor) MarkEventVerified(ctx context.Context, eventID string) error {
	return e.store.UpdateEventStatus(ctx, store.UpdateEventStatusInput{
		EventID: eventID,
		Status:  domain.EventStatusVerified,
	})
}

// MarkEventProcessed transitions an event to processed
func (e *executor) MarkEventProcessed(ctx context.Context, eventID string) error {
	return e.store.UpdateEventStatus(ctx, store.UpdateEventStatusInput{
		EventID: eventID,
		Status:  domain.EventStatusProcessed,
	})
}

// MarkEventFailed transitions an event to failed with the processing error
func (e *executor) MarkEventFailed(ctx context.Context, eventID string, errorMessage string) error {
	return e.store.UpdateEventStatus(ctx, store.UpdateEventStatusInput{
		EventID:      eventID,
		Status:       domain.EventStatusFailed,
		ErrorMessage: errorMessage,
	})
}
