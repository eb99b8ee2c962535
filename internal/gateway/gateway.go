package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/hookline/gateway/internal/adapter"
	"github.com/hookline/gateway/internal/domain"
	"github.com/hookline/gateway/internal/logger"
	"github.com/hookline/gateway/internal/messaging"
	"github.com/hookline/gateway/internal/signature"
	"github.com/hookline/gateway/internal/store"
	"github.com/hookline/gateway/internal/store/schema"
)

// IngestResult reports the outcome of admitting a webhook delivery
type IngestResult struct {
	// Event is the stored event. For duplicate deliveries it is the
	// previously stored row.
	Event *schema.WebhookEvent
	// Deduped is true when the delivery matched an already admitted event
	Deduped bool
}

// ListFilter narrows and pages the event listing by provider-facing names
type ListFilter struct {
	Status     domain.EventStatus
	SourceName string
	Limit      int
	Offset     int
}

// Gateway implements webhook admission, replay, and inspection
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// Ingest verifies and admits one webhook delivery for the given provider
	Ingest(ctx context.Context, provider domain.Provider, body []byte, headers http.Header) (*IngestResult, error)
	// Replay forces a stored event back to received and enqueues it again
	Replay(ctx context.Context, eventID string) (*schema.WebhookEvent, error)
	// ListEvents returns stored events matching the filter, newest first
	ListEvents(ctx context.Context, filter ListFilter) ([]schema.WebhookEvent, int64, error)
}

// Config tunes gateway behavior
type Config struct {
	// TimestampTolerance bounds timestamped signature drift.
	// Zero means signature.DefaultTimestampTolerance.
	TimestampTolerance time.Duration
}

type gateway struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	json      adapter.JSON
	config    Config
}

// New creates a Gateway backed by the given store and queue publisher
func New(s store.Store, publisher messaging.Publisher, clock adapter.Clock, jsonAdapter adapter.JSON, cfg Config) Gateway {
	return &gateway{
		store:     s,
		publisher: publisher,
		clock:     clock,
		json:      jsonAdapter,
		config:    cfg,
	}
}

// Ingest verifies and admits one webhook delivery.
// Signature verification runs against the raw body before any parsing,
// since re-serializing JSON can change byte layout and break the digest.
func (g *gateway) Ingest(ctx context.Context, provider domain.Provider, body []byte, headers http.Header) (*IngestResult, error) {
	// GitHub deliveries carry the event type in a header and are rejected without it
	if provider == domain.ProviderGitHub && headers.Get(headerGitHubEvent) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingHeader, headerGitHubEvent)
	}

	source, err := g.store.GetSourceByName(ctx, provider.String())
	if err != nil {
		return nil, err
	}

	signatureHeader := headers.Get(source.SignatureHeader)
	if signatureHeader == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingHeader, source.SignatureHeader)
	}

	verifier, err := signature.ForProvider(provider, source.Secret, signature.Options{
		Clock:              g.clock,
		TimestampTolerance: g.config.TimestampTolerance,
	})
	if err != nil {
		return nil, err
	}

	if !verifier.Verify(signatureHeader, body) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSignature, provider)
	}

	// Parse only after the signature checks out
	var payload map[string]interface{}
	if err := g.json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}

	eventType, eventID := g.deriveIdentity(provider, headers, payload)

	headersJSON, err := g.json.Marshal(logger.RedactMap(flattenHeaders(headers)))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal headers: %w", err)
	}

	event := &schema.WebhookEvent{
		ID:         ulid.Make().String(),
		SourceID:   source.ID,
		EventID:    eventID,
		EventType:  eventType,
		Signature:  signatureHeader,
		Payload:    datatypes.JSON(body),
		Headers:    datatypes.JSON(headersJSON),
		Status:     domain.EventStatusReceived,
		ReceivedAt: g.clock.Now().UTC(),
	}

	inserted, err := g.store.InsertEventIfAbsent(ctx, event)
	if err != nil {
		return nil, err
	}

	if !inserted {
		logger.InfoCtx(ctx, "Duplicate webhook delivery",
			zap.String("source", provider.String()),
			zap.String("event_id", eventID),
		)
		return &IngestResult{Event: event, Deduped: true}, nil
	}

	if err := g.publisher.PublishProcess(ctx, &domain.ProcessMessage{
		EventID: event.ID,
		Source:  provider.String(),
	}); err != nil {
		// The event is durably stored as received, so replay can recover it
		return nil, fmt.Errorf("failed to enqueue event %s: %w", event.ID, err)
	}

	logger.InfoCtx(ctx, "Webhook event admitted",
		zap.String("source", provider.String()),
		zap.String("id", event.ID),
		zap.String("event_id", eventID),
		zap.String("event_type", eventType),
	)

	return &IngestResult{Event: event}, nil
}

// Replay loads an event, forces it back to received regardless of prior
// state, and enqueues it again. Retry history is kept.
func (g *gateway) Replay(ctx context.Context, eventID string) (*schema.WebhookEvent, error) {
	event, err := g.store.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := g.store.UpdateEventStatus(ctx, store.UpdateEventStatusInput{
		EventID: event.ID,
		Status:  domain.EventStatusReceived,
	}); err != nil {
		return nil, err
	}

	source, err := g.store.GetSourceByID(ctx, event.SourceID)
	if err != nil {
		return nil, err
	}

	if err := g.publisher.PublishProcess(ctx, &domain.ProcessMessage{
		EventID: event.ID,
		Source:  source.Name,
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue event %s: %w", event.ID, err)
	}

	logger.InfoCtx(ctx, "Webhook event replayed", zap.String("id", event.ID))

	return event, nil
}

// ListEvents returns stored events matching the filter, newest first.
// An unknown source name matches nothing rather than failing.
func (g *gateway) ListEvents(ctx context.Context, filter ListFilter) ([]schema.WebhookEvent, int64, error) {
	storeFilter := store.ListEventsFilter{
		Status: filter.Status,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	if filter.SourceName != "" {
		source, err := g.store.GetSourceByName(ctx, filter.SourceName)
		if err != nil {
			if errors.Is(err, domain.ErrSourceNotConfigured) {
				return []schema.WebhookEvent{}, 0, nil
			}
			return nil, 0, err
		}
		storeFilter.SourceID = source.ID
	}

	return g.store.ListEvents(ctx, storeFilter)
}
