package schema

import (
	"time"
)

// WebhookSource represents the webhook_sources table - registered webhook providers
type WebhookSource struct {
	// ID is a unique identifier for the source (UUID)
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// Name is the provider key used in ingestion URLs (e.g., "github", "stripe", "resend")
	Name string `gorm:"column:name;not null;unique;type:varchar(50)"`
	// Secret is the shared key used for HMAC-SHA256 signature verification
	Secret string `gorm:"column:secret;not null;type:text"`
	// SignatureHeader is the HTTP header the provider carries its signature in
	SignatureHeader string `gorm:"column:signature_header;not null;type:varchar(100)"`
	// IsActive indicates whether deliveries from this source are accepted
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this source was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this source was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WebhookSource model
func (WebhookSource) TableName() string {
	return "webhook_sources"
}
