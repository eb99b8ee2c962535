package rest

import (
	"encoding/json"
	"time"

	"github.com/hookline/gateway/internal/store/schema"
)

// IngestResponse is returned for an admitted or deduplicated webhook delivery
type IngestResponse struct {
	Success   bool   `json:"success"`
	EventID   string `json:"eventId,omitempty"`
	EventType string `json:"eventType,omitempty"`
	Deduped   bool   `json:"deduped,omitempty"`
}

// ReplayResponse is returned for a replayed webhook event
type ReplayResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId"`
}

// ProbeResponse is returned for GET requests on intake paths
type ProbeResponse struct {
	Status string `json:"status"`
	Source string `json:"source"`
}

// EventDTO is the listing representation of a stored webhook event
type EventDTO struct {
	ID           string          `json:"id"`
	SourceID     string          `json:"sourceId"`
	EventID      string          `json:"eventId"`
	EventType    string          `json:"eventType"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	RetryCount   int             `json:"retryCount"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	ReceivedAt   time.Time       `json:"receivedAt"`
	ProcessedAt  *time.Time      `json:"processedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Pagination describes the page window of a listing response
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ListEventsResponse is returned by the event listing endpoint
type ListEventsResponse struct {
	Events     []EventDTO `json:"events"`
	Pagination Pagination `json:"pagination"`
}

// toEventDTO maps a stored event row to its listing representation
func toEventDTO(event schema.WebhookEvent) EventDTO {
	return EventDTO{
		ID:           event.ID,
		SourceID:     event.SourceID,
		EventID:      event.EventID,
		EventType:    event.EventType,
		Status:       string(event.Status),
		ErrorMessage: event.ErrorMessage,
		RetryCount:   event.RetryCount,
		Payload:      json.RawMessage(event.Payload),
		ReceivedAt:   event.ReceivedAt,
		ProcessedAt:  event.ProcessedAt,
		CreatedAt:    event.CreatedAt,
	}
}
