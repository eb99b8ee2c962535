package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/hookline/gateway/internal/domain"
)

// WebhookEvent represents the webhook_events table - admitted webhook deliveries
type WebhookEvent struct {
	// ID is a unique identifier for this event (ULID for time-sortable uniqueness)
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// SourceID is the webhook source this event was delivered by
	SourceID string `gorm:"column:source_id;not null;type:varchar(36);uniqueIndex:idx_webhook_events_source_event,priority:1"`
	// EventID is the provider-assigned delivery identifier, unique per source
	EventID string `gorm:"column:event_id;not null;type:varchar(255);uniqueIndex:idx_webhook_events_source_event,priority:2"`
	// EventType is the provider event type (e.g., "push", "checkout.session.completed")
	EventType string `gorm:"column:event_type;not null;type:varchar(100)"`
	// Signature is the raw signature header value, kept for audit
	Signature string `gorm:"column:signature;type:text"`
	// Payload is the raw webhook body as JSON
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// Headers is a selected subset of the delivery headers as JSON
	Headers datatypes.JSON `gorm:"column:headers;type:jsonb"`
	// Status is the current lifecycle state: received, verified, processed, failed
	Status domain.EventStatus `gorm:"column:status;not null;default:received;type:varchar(20)"`
	// ErrorMessage contains error details if processing failed
	ErrorMessage string `gorm:"column:error_message;type:text"`
	// RetryCount is the number of failed processing attempts recorded
	RetryCount int `gorm:"column:retry_count;not null;default:0"`
	// ReceivedAt is the timestamp when the delivery was admitted
	ReceivedAt time.Time `gorm:"column:received_at;not null;default:now();type:timestamptz"`
	// ProcessedAt is the timestamp when processing completed successfully
	ProcessedAt *time.Time `gorm:"column:processed_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WebhookEvent model
func (WebhookEvent) TableName() string {
	return "webhook_events"
}
