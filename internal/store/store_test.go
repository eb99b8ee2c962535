package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/hookline/gateway/internal/domain"
	"github.com/hookline/gateway/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestSource creates a test webhook source
func buildTestSource(name string) *schema.WebhookSource {
	return &schema.WebhookSource{
		ID:              uuid.NewString(),
		Name:            name,
		Secret:          "test-secret-" + name,
		SignatureHeader: "X-Hub-Signature-256",
		IsActive:        true,
	}
}

// buildTestEvent creates a test webhook event for the given source
func buildTestEvent(sourceID, eventID, eventType string) *schema.WebhookEvent {
	return &schema.WebhookEvent{
		ID:         ulid.Make().String(),
		SourceID:   sourceID,
		EventID:    eventID,
		EventType:  eventType,
		Signature:  "sha256=deadbeef",
		Payload:    datatypes.JSON([]byte(`{"action":"opened"}`)),
		Headers:    datatypes.JSON([]byte(`{"x-github-event":"` + eventType + `"}`)),
		Status:     domain.EventStatusReceived,
		ReceivedAt: time.Now().UTC(),
	}
}

// mustCreateSource creates a source and fails the test on error
func mustCreateSource(t *testing.T, store Store, name string) *schema.WebhookSource {
	source := buildTestSource(name)
	require.NoError(t, store.CreateSource(context.Background(), source))
	return source
}

// =============================================================================
// Test: Sources
// =============================================================================

func testGetSourceByName(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("returns active source", func(t *testing.T) {
		created := mustCreateSource(t, store, "github")

		source, err := store.GetSourceByName(ctx, "github")
		require.NoError(t, err)
		assert.Equal(t, created.ID, source.ID)
		assert.Equal(t, "github", source.Name)
		assert.Equal(t, created.Secret, source.Secret)
		assert.Equal(t, "X-Hub-Signature-256", source.SignatureHeader)
		assert.True(t, source.IsActive)
	})

	t.Run("unknown source", func(t *testing.T) {
		source, err := store.GetSourceByName(ctx, "unknown")
		assert.ErrorIs(t, err, domain.ErrSourceNotConfigured)
		assert.Nil(t, source)
	})

	t.Run("inactive source is treated as missing", func(t *testing.T) {
		inactive := buildTestSource("stripe")
		inactive.IsActive = false
		require.NoError(t, store.CreateSource(ctx, inactive))

		source, err := store.GetSourceByName(ctx, "stripe")
		assert.ErrorIs(t, err, domain.ErrSourceNotConfigured)
		assert.Nil(t, source)
	})

	t.Run("lookup by id includes inactive sources", func(t *testing.T) {
		inactive := buildTestSource("postmark")
		inactive.IsActive = false
		require.NoError(t, store.CreateSource(ctx, inactive))

		source, err := store.GetSourceByID(ctx, inactive.ID)
		require.NoError(t, err)
		assert.Equal(t, "postmark", source.Name)

		_, err = store.GetSourceByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrSourceNotConfigured)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		mustCreateSource(t, store, "resend")
		err := store.CreateSource(ctx, buildTestSource("resend"))
		assert.Error(t, err)
	})
}

// =============================================================================
// Test: InsertEventIfAbsent
// =============================================================================

func testInsertEventIfAbsent(t *testing.T, store Store) {
	ctx := context.Background()
	source := mustCreateSource(t, store, "github")

	t.Run("inserts new event", func(t *testing.T) {
		event := buildTestEvent(source.ID, "delivery-1", "push")

		inserted, err := store.InsertEventIfAbsent(ctx, event)
		require.NoError(t, err)
		assert.True(t, inserted)

		stored, err := store.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, "delivery-1", stored.EventID)
		assert.Equal(t, "push", stored.EventType)
		assert.Equal(t, domain.EventStatusReceived, stored.Status)
		assert.Equal(t, 0, stored.RetryCount)
		assert.Nil(t, stored.ProcessedAt)
		assert.JSONEq(t, `{"action":"opened"}`, string(stored.Payload))
	})

	t.Run("duplicate delivery is not inserted", func(t *testing.T) {
		first := buildTestEvent(source.ID, "delivery-2", "push")
		inserted, err := store.InsertEventIfAbsent(ctx, first)
		require.NoError(t, err)
		require.True(t, inserted)

		// Same provider event id, different internal id
		second := buildTestEvent(source.ID, "delivery-2", "push")
		inserted, err = store.InsertEventIfAbsent(ctx, second)
		require.NoError(t, err)
		assert.False(t, inserted)

		// Only the first row survives
		_, err = store.GetEventByID(ctx, first.ID)
		assert.NoError(t, err)
		_, err = store.GetEventByID(ctx, second.ID)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("same event id across sources is allowed", func(t *testing.T) {
		other := mustCreateSource(t, store, "stripe")

		inserted, err := store.InsertEventIfAbsent(ctx, buildTestEvent(source.ID, "shared-id", "push"))
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = store.InsertEventIfAbsent(ctx, buildTestEvent(other.ID, "shared-id", "checkout.session.completed"))
		require.NoError(t, err)
		assert.True(t, inserted)
	})
}

// =============================================================================
// Test: GetEventByID
// =============================================================================

func testGetEventByID(t *testing.T, store Store) {
	ctx := context.Background()
	source := mustCreateSource(t, store, "github")

	t.Run("returns stored event", func(t *testing.T) {
		event := buildTestEvent(source.ID, "delivery-1", "issues")
		inserted, err := store.InsertEventIfAbsent(ctx, event)
		require.NoError(t, err)
		require.True(t, inserted)

		stored, err := store.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, event.ID, stored.ID)
		assert.Equal(t, source.ID, stored.SourceID)
	})

	t.Run("unknown id", func(t *testing.T) {
		stored, err := store.GetEventByID(ctx, ulid.Make().String())
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Nil(t, stored)
	})
}

// =============================================================================
// Test: UpdateEventStatus
// =============================================================================

func testUpdateEventStatus(t *testing.T, store Store) {
	ctx := context.Background()
	source := mustCreateSource(t, store, "github")

	insertEvent := func(t *testing.T, eventID string) *schema.WebhookEvent {
		event := buildTestEvent(source.ID, eventID, "push")
		inserted, err := store.InsertEventIfAbsent(ctx, event)
		require.NoError(t, err)
		require.True(t, inserted)
		return event
	}

	t.Run("transition to verified", func(t *testing.T) {
		event := insertEvent(t, "delivery-1")

		err := store.UpdateEventStatus(ctx, UpdateEventStatusInput{
			EventID: event.ID,
			Status:  domain.EventStatusVerified,
		})
		require.NoError(t, err)

		stored, err := store.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusVerified, stored.Status)
		assert.Nil(t, stored.ProcessedAt)
		assert.Equal(t, 0, stored.RetryCount)
	})

	t.Run("transition to processed stamps processed_at", func(t *testing.T) {
		event := insertEvent(t, "delivery-2")

		err := store.UpdateEventStatus(ctx, UpdateEventStatusInput{
			EventID: event.ID,
			Status:  domain.EventStatusProcessed,
		})
		require.NoError(t, err)

		stored, err := store.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusProcessed, stored.Status)
		require.NotNil(t, stored.ProcessedAt)
		assert.WithinDuration(t, time.Now(), *stored.ProcessedAt, time.Minute)
	})

	t.Run("transition to failed records error and increments retry count", func(t *testing.T) {
		event := insertEvent(t, "delivery-3")

		for i := 1; i <= 3; i++ {
			err := store.UpdateEventStatus(ctx, UpdateEventStatusInput{
				EventID:      event.ID,
				Status:       domain.EventStatusFailed,
				ErrorMessage: "boom",
			})
			require.NoError(t, err)

			stored, err := store.GetEventByID(ctx, event.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.EventStatusFailed, stored.Status)
			assert.Equal(t, "boom", stored.ErrorMessage)
			assert.Equal(t, i, stored.RetryCount)
			assert.Nil(t, stored.ProcessedAt)
		}
	})

	t.Run("replay transition back to received", func(t *testing.T) {
		event := insertEvent(t, "delivery-4")

		require.NoError(t, store.UpdateEventStatus(ctx, UpdateEventStatusInput{
			EventID:      event.ID,
			Status:       domain.EventStatusFailed,
			ErrorMessage: "boom",
		}))
		require.NoError(t, store.UpdateEventStatus(ctx, UpdateEventStatusInput{
			EventID: event.ID,
			Status:  domain.EventStatusReceived,
		}))

		stored, err := store.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusReceived, stored.Status)
		// Replays keep the retry history
		assert.Equal(t, 1, stored.RetryCount)
	})

	t.Run("replay of a processed event clears processed_at", func(t *testing.T) {
		event := insertEvent(t, "delivery-5")

		require.NoError(t, store.UpdateEventStatus(ctx, UpdateEventStatusInput{
			EventID: event.ID,
			Status:  domain.EventStatusProcessed,
		}))
		require.NoError(t, store.UpdateEventStatus(ctx, UpdateEventStatusInput{
			EventID: event.ID,
			Status:  domain.EventStatusReceived,
		}))

		stored, err := store.GetEventByID(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusReceived, stored.Status)
		assert.Nil(t, stored.ProcessedAt)
	})

	t.Run("unknown event", func(t *testing.T) {
		err := store.UpdateEventStatus(ctx, UpdateEventStatusInput{
			EventID: ulid.Make().String(),
			Status:  domain.EventStatusVerified,
		})
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}

// =============================================================================
// Test: ListEvents
// =============================================================================

func testListEvents(t *testing.T, store Store) {
	ctx := context.Background()
	github := mustCreateSource(t, store, "github")
	stripe := mustCreateSource(t, store, "stripe")

	// Seed events with distinct received_at values so ordering is deterministic
	base := time.Now().UTC().Add(-time.Hour)
	var githubIDs []string
	for i := 0; i < 5; i++ {
		event := buildTestEvent(github.ID, ulid.Make().String(), "push")
		event.ReceivedAt = base.Add(time.Duration(i) * time.Minute)
		inserted, err := store.InsertEventIfAbsent(ctx, event)
		require.NoError(t, err)
		require.True(t, inserted)
		githubIDs = append(githubIDs, event.ID)
	}

	stripeEvent := buildTestEvent(stripe.ID, ulid.Make().String(), "checkout.session.completed")
	stripeEvent.ReceivedAt = base.Add(time.Hour)
	inserted, err := store.InsertEventIfAbsent(ctx, stripeEvent)
	require.NoError(t, err)
	require.True(t, inserted)

	require.NoError(t, store.UpdateEventStatus(ctx, UpdateEventStatusInput{
		EventID: githubIDs[0],
		Status:  domain.EventStatusProcessed,
	}))

	t.Run("returns newest first with total count", func(t *testing.T) {
		events, total, err := store.ListEvents(ctx, ListEventsFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		require.Len(t, events, 6)
		assert.Equal(t, stripeEvent.ID, events[0].ID)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].ReceivedAt.After(events[i-1].ReceivedAt))
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		events, total, err := store.ListEvents(ctx, ListEventsFilter{Status: domain.EventStatusProcessed})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, events, 1)
		assert.Equal(t, githubIDs[0], events[0].ID)
	})

	t.Run("filter by source", func(t *testing.T) {
		events, total, err := store.ListEvents(ctx, ListEventsFilter{SourceID: stripe.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, events, 1)
		assert.Equal(t, stripeEvent.ID, events[0].ID)
	})

	t.Run("paging", func(t *testing.T) {
		firstPage, total, err := store.ListEvents(ctx, ListEventsFilter{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		require.Len(t, firstPage, 2)

		secondPage, total, err := store.ListEvents(ctx, ListEventsFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		require.Len(t, secondPage, 2)
		assert.NotEqual(t, firstPage[0].ID, secondPage[0].ID)
		assert.NotEqual(t, firstPage[1].ID, secondPage[1].ID)
	})

	t.Run("unmatched status filter returns empty", func(t *testing.T) {
		events, total, err := store.ListEvents(ctx, ListEventsFilter{Status: domain.EventStatusVerified})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, events)
	})
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the store test suite against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"GetSourceByName", testGetSourceByName},
		{"InsertEventIfAbsent", testInsertEventIfAbsent},
		{"GetEventByID", testGetEventByID},
		{"UpdateEventStatus", testUpdateEventStatus},
		{"ListEvents", testListEvents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
