package bridge_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/hookline/gateway/internal/adapter"
	"github.com/hookline/gateway/internal/bridge"
	"github.com/hookline/gateway/internal/logger"
	mockspkg "github.com/hookline/gateway/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl         *gomock.Controller
	natsJS       *mockspkg.MockNatsJetStream
	natsConn     *mockspkg.MockNatsConn
	jetStream    *mockspkg.MockJetStream
	orchestrator *mockspkg.MockTemporalOrchestrator
}

// setupTestBridge creates all the mocks for testing
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	return &testBridgeMocks{
		ctrl:         ctrl,
		natsJS:       mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:     mockspkg.NewMockNatsConn(ctrl),
		jetStream:    mockspkg.NewMockJetStream(ctrl),
		orchestrator: mockspkg.NewMockTemporalOrchestrator(ctrl),
	}
}

// tearDownTestBridge cleans up the test mocks
func tearDownTestBridge(mocks *testBridgeMocks) {
	mocks.ctrl.Finish()
}

func testBridgeConfig() bridge.Config {
	return bridge.Config{
		URL:               "nats://localhost:4222",
		StreamName:        "WEBHOOK_EVENTS",
		ConsumerName:      "event-bridge",
		MaxReconnects:     10,
		ReconnectWait:     1 * time.Second,
		ConnectionName:    "test-bridge",
		AckWaitTimeout:    30 * time.Second,
		MaxDeliver:        3,
		TemporalTaskQueue: "webhook-processing",
		WorkflowAttempts:  3,
	}
}

func TestBridge_NewBridge_Success(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.orchestrator, adapter.NewJSON())

	assert.NoError(t, err)
	assert.NotNil(t, b)
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	b, err := bridge.NewBridge(testBridgeConfig(), mocks.natsJS, mocks.orchestrator, adapter.NewJSON())

	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestBridge_Run_CreateConsumerError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()
	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.orchestrator, adapter.NewJSON())
	require.NoError(t, err)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(),
			config.StreamName,
			jetstream.ConsumerConfig{
				Durable:       config.ConsumerName,
				AckPolicy:     jetstream.AckExplicitPolicy,
				AckWait:       config.AckWaitTimeout,
				MaxDeliver:    config.MaxDeliver,
				FilterSubject: "webhooks.process.>",
			}).
		Return(nil, assert.AnError)

	err = b.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestBridge_Run_ConsumerInfoError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(testBridgeConfig(), mocks.natsJS, mocks.orchestrator, adapter.NewJSON())
	require.NoError(t, err)

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumer.EXPECT().
		Info(gomock.Any()).
		Return(nil, assert.AnError)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	err = b.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get consumer info")
}

// startBridge runs the bridge and returns the captured message handler
func startBridge(t *testing.T, ctx context.Context, mocks *testBridgeMocks, b bridge.Bridge) (adapter.MessageHandler, chan error) {
	t.Helper()

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "event-bridge"}, nil)

	consumeCtx := mockspkg.NewMockConsumeContext(mocks.ctrl)
	consumeCtx.EXPECT().Stop()

	handlerCh := make(chan adapter.MessageHandler, 1)
	consumer.EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerCh <- handler
			return consumeCtx, nil
		})

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	runErr := make(chan error, 1)
	go func() {
		runErr <- b.Run(ctx)
	}()

	select {
	case handler := <-handlerCh:
		return handler, runErr
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not start consuming")
		return nil, nil
	}
}

func TestBridge_Run_StartsWorkflowAndAcks(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(testBridgeConfig(), mocks.natsJS, mocks.orchestrator, adapter.NewJSON())
	require.NoError(t, err)

	handler, runErr := startBridge(t, ctx, mocks, b)

	mocks.orchestrator.
		EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), "01J0000000000000000000TEST").
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "process-webhook-01J0000000000000000000TEST", options.ID)
			assert.Equal(t, "webhook-processing", options.TaskQueue)
			assert.EqualValues(t, 3, options.RetryPolicy.MaximumAttempts)
			return nil, nil
		})

	acked := make(chan struct{})
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return([]byte(`{"event_id":"01J0000000000000000000TEST","source":"github"}`)).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(acked)
		return nil
	})

	handler(msg)

	select {
	case <-acked:
	case <-time.After(5 * time.Second):
		t.Fatal("message was not acknowledged")
	}

	cancel()
	assert.ErrorIs(t, <-runErr, context.Canceled)
}

func TestBridge_Run_WorkflowStartFailureNaks(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(testBridgeConfig(), mocks.natsJS, mocks.orchestrator, adapter.NewJSON())
	require.NoError(t, err)

	handler, runErr := startBridge(t, ctx, mocks, b)

	mocks.orchestrator.
		EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	naked := make(chan struct{})
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return([]byte(`{"event_id":"01J0000000000000000000TEST","source":"github"}`)).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 2}, nil).AnyTimes()
	msg.EXPECT().Nak().DoAndReturn(func() error {
		close(naked)
		return nil
	})

	handler(msg)

	select {
	case <-naked:
	case <-time.After(5 * time.Second):
		t.Fatal("message was not NAKed")
	}

	cancel()
	assert.ErrorIs(t, <-runErr, context.Canceled)
}

func TestBridge_Run_MalformedMessageTerminated(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(testBridgeConfig(), mocks.natsJS, mocks.orchestrator, adapter.NewJSON())
	require.NoError(t, err)

	handler, runErr := startBridge(t, ctx, mocks, b)

	terminated := make(chan struct{})
	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return([]byte(`{not json`)).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(terminated)
		return nil
	})

	handler(msg)

	select {
	case <-terminated:
	case <-time.After(5 * time.Second):
		t.Fatal("message was not terminated")
	}

	cancel()
	assert.ErrorIs(t, <-runErr, context.Canceled)
}

func TestBridge_Close(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)
	mocks.natsConn.EXPECT().Close()

	b, err := bridge.NewBridge(testBridgeConfig(), mocks.natsJS, mocks.orchestrator, adapter.NewJSON())
	require.NoError(t, err)

	b.Close()
}
