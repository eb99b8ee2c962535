package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/hookline/gateway/internal/adapter"
	"github.com/hookline/gateway/internal/domain"
	"github.com/hookline/gateway/internal/logger"
	temporalprovider "github.com/hookline/gateway/internal/providers/temporal"
	"github.com/hookline/gateway/internal/workflows"
)

const (
	// subjectFilter matches every per-source processing subject
	subjectFilter = "webhooks.process.>"

	defaultPoolSize  = 10
	defaultQueueSize = 100
)

// Config holds the configuration for the event bridge
type Config struct {
	URL               string
	StreamName        string
	ConsumerName      string
	MaxReconnects     int
	ReconnectWait     time.Duration
	ConnectionName    string
	AckWaitTimeout    time.Duration
	MaxDeliver        int
	TemporalTaskQueue string
	WorkflowAttempts  int
	PoolSize          int
	QueueSize         int
}

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run starts the event bridge
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc           adapter.NatsConn
	js           adapter.JetStream
	orchestrator temporalprovider.TemporalOrchestrator
	json         adapter.JSON
	config       Config
	pool         pond.Pool
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	orchestrator temporalprovider.TemporalOrchestrator,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	b := &bridge{
		nc:           nc,
		js:           js,
		orchestrator: orchestrator,
		json:         jsonAdapter,
		config:       cfg,
	}

	return b, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName))

	// Create or get consumer. MaxDeliver bounds queue-level redelivery for
	// messages that are NAKed or never acknowledged.
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: subjectFilter,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	poolSize := b.config.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	queueSize := b.config.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	// Bounded worker pool keeps a burst of deliveries from spawning an
	// unbounded number of workflow starts
	b.pool = pond.NewPool(
		poolSize,
		pond.WithQueueSize(queueSize),
		pond.WithContext(ctx),
	)
	defer b.pool.StopAndWait()

	sub, err := consumer.Consume(func(msg adapter.Message) {
		b.pool.SubmitErr(func() error {
			return b.handleMessage(ctx, msg)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	<-ctx.Done()
	logger.Info("Shutting down event bridge",
		zap.Uint64("submitted", b.pool.SubmittedTasks()),
		zap.Uint64("waiting", b.pool.WaitingTasks()))
	return ctx.Err()
}

// handleMessage processes a single queue message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) error {
	metadata, _ := msg.Metadata()

	var message domain.ProcessMessage
	if err := b.json.Unmarshal(msg.Data(), &message); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal process message"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return err
	}

	if message.EventID == "" {
		logger.Error(fmt.Errorf("process message without event id"),
			zap.String("source", message.Source))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return nil
	}

	deliveryCount := uint64(0)
	if metadata != nil {
		deliveryCount = metadata.NumDelivered
	}
	logger.Info("Received process message",
		zap.String("event_id", message.EventID),
		zap.String("source", message.Source),
		zap.Uint64("delivery_count", deliveryCount))

	if err := b.startWorkflow(ctx, &message); err != nil {
		logger.Error(err, zap.String("message", "Failed to start processing workflow"),
			zap.String("event_id", message.EventID))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return err
	}

	// ACK once the workflow is started; processing retries from here on are
	// owned by Temporal's retry policy, not queue redelivery
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}

	return nil
}

// startWorkflow starts the processing workflow for one admitted event
func (b *bridge) startWorkflow(ctx context.Context, message *domain.ProcessMessage) error {
	w := workflows.NewWorkerCore(nil)

	attempts := b.config.WorkflowAttempts
	if attempts <= 0 {
		attempts = 3
	}

	opt := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("process-webhook-%s", message.EventID),
		TaskQueue:             b.config.TemporalTaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowRunTimeout:    30 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: int32(attempts),
			InitialInterval: 5 * time.Second,
		},
	}

	_, err := b.orchestrator.ExecuteWorkflow(ctx, opt, w.ProcessWebhookEvent, message.EventID)
	if err != nil {
		return fmt.Errorf("failed to execute workflow: %w", err)
	}

	logger.Info("Processing workflow started",
		zap.String("event_id", message.EventID),
		zap.String("source", message.Source))

	return nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
