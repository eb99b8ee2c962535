package messaging

import (
	"context"

	"github.com/hookline/gateway/internal/domain"
)

// Publisher defines the interface for publishing admitted events to the message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishProcess publishes a processing request for an admitted webhook event
	PublishProcess(ctx context.Context, msg *domain.ProcessMessage) error
	// Close closes the connection
	Close()
}
