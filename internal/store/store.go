package store

import (
	"context"

	"github.com/hookline/gateway/internal/domain"
	"github.com/hookline/gateway/internal/store/schema"
)

// UpdateEventStatusInput carries a status transition for a stored event
type UpdateEventStatusInput struct {
	// EventID is the internal event identifier
	EventID string
	// Status is the new lifecycle state
	Status domain.EventStatus
	// ErrorMessage is recorded when the transition is to failed
	ErrorMessage string
}

// ListEventsFilter narrows and pages the event listing
type ListEventsFilter struct {
	// Status filters by lifecycle state when non-empty
	Status domain.EventStatus
	// SourceID filters by source when non-empty
	SourceID string
	// Limit caps the number of returned rows
	Limit int
	// Offset skips rows for paging
	Offset int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateSource registers a new webhook source
	CreateSource(ctx context.Context, source *schema.WebhookSource) error
	// GetSourceByName retrieves an active webhook source by its provider name
	GetSourceByName(ctx context.Context, name string) (*schema.WebhookSource, error)
	// GetSourceByID retrieves a webhook source by its identifier, active or not
	GetSourceByID(ctx context.Context, id string) (*schema.WebhookSource, error)
	// InsertEventIfAbsent inserts an event unless one with the same
	// (source_id, event_id) already exists. It reports whether the row was inserted.
	InsertEventIfAbsent(ctx context.Context, event *schema.WebhookEvent) (bool, error)
	// GetEventByID retrieves an event by its internal identifier
	GetEventByID(ctx context.Context, id string) (*schema.WebhookEvent, error)
	// UpdateEventStatus applies a lifecycle transition to a stored event
	UpdateEventStatus(ctx context.Context, input UpdateEventStatusInput) error
	// ListEvents returns events matching the filter, newest first, with the total count
	ListEvents(ctx context.Context, filter ListEventsFilter) ([]schema.WebhookEvent, int64, error)
}
