package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hookline/gateway/internal/domain"
	"github.com/hookline/gateway/internal/store/schema"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateSource registers a new webhook source
func (s *pgStore) CreateSource(ctx context.Context, source *schema.WebhookSource) error {
	if err := s.db.WithContext(ctx).Create(source).Error; err != nil {
		return fmt.Errorf("failed to create source: %w", err)
	}
	return nil
}

// GetSourceByName retrieves an active webhook source by its provider name.
// Inactive sources are treated the same as missing ones.
func (s *pgStore) GetSourceByName(ctx context.Context, name string) (*schema.WebhookSource, error) {
	var source schema.WebhookSource

	err := s.db.WithContext(ctx).
		Where("name = ? AND is_active = ?", name, true).
		First(&source).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotConfigured, name)
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return &source, nil
}

// GetSourceByID retrieves a webhook source by its identifier, active or not.
// Replay of an event from a since-deactivated source still needs its name.
func (s *pgStore) GetSourceByID(ctx context.Context, id string) (*schema.WebhookSource, error) {
	var source schema.WebhookSource

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&source).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotConfigured, id)
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	return &source, nil
}

// InsertEventIfAbsent inserts an event unless one with the same (source_id, event_id)
// already exists. The unique index on (source_id, event_id) makes this safe under
// concurrent deliveries of the same event.
func (s *pgStore) InsertEventIfAbsent(ctx context.Context, event *schema.WebhookEvent) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source_id"}, {Name: "event_id"}},
			DoNothing: true,
		}).
		Create(event)

	if result.Error != nil {
		return false, fmt.Errorf("failed to insert event: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// GetEventByID retrieves an event by its internal identifier
func (s *pgStore) GetEventByID(ctx context.Context, id string) (*schema.WebhookEvent, error) {
	var event schema.WebhookEvent

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// UpdateEventStatus applies a lifecycle transition to a stored event.
// Transitions to processed stamp processed_at; transitions to failed
// record the error message and increment retry_count. Status values are
// a closed enum validated by the caller.
func (s *pgStore) UpdateEventStatus(ctx context.Context, input UpdateEventStatusInput) error {
	updates := map[string]interface{}{
		"status":     input.Status,
		"updated_at": time.Now(),
	}

	switch input.Status {
	case domain.EventStatusReceived:
		// Replay path: a re-queued event is no longer processed
		updates["processed_at"] = gorm.Expr("NULL")
	case domain.EventStatusProcessed:
		updates["processed_at"] = time.Now()
	case domain.EventStatusFailed:
		updates["retry_count"] = gorm.Expr("retry_count + 1")
		if input.ErrorMessage != "" {
			updates["error_message"] = input.ErrorMessage
		}
	}

	result := s.db.WithContext(ctx).
		Model(&schema.WebhookEvent{}).
		Where("id = ?", input.EventID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update event status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, input.EventID)
	}

	return nil
}

// ListEvents returns events matching the filter ordered newest first,
// along with the total count of matching rows before paging.
func (s *pgStore) ListEvents(ctx context.Context, filter ListEventsFilter) ([]schema.WebhookEvent, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.WebhookEvent{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SourceID != "" {
		query = query.Where("source_id = ?", filter.SourceID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var events []schema.WebhookEvent
	err := query.
		Order("received_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	return events, total, nil
}
