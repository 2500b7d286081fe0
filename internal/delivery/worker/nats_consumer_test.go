package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/service"
	mockUsecase "pushcampaign/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// mockMessage implements jetstream.Msg for testing handleMessage
type mockMessage struct {
	data      []byte
	headers   nats.Header
	acked     bool
	nakCalled bool
	mu        sync.Mutex
}

func (m *mockMessage) Data() []byte         { return m.data }
func (m *mockMessage) Subject() string      { return "push.campaigns.dispatch" }
func (m *mockMessage) Reply() string        { return "" }
func (m *mockMessage) Headers() nats.Header { return m.headers }
func (m *mockMessage) Ack() error           { m.mu.Lock(); m.acked = true; m.mu.Unlock(); return nil }
func (m *mockMessage) Nak() error           { m.mu.Lock(); m.nakCalled = true; m.mu.Unlock(); return nil }
func (m *mockMessage) NakWithDelay(time.Duration) error {
	return m.Nak()
}
func (m *mockMessage) InProgress() error                         { return nil }
func (m *mockMessage) Term() error                               { return nil }
func (m *mockMessage) TermWithReason(string) error               { return nil }
func (m *mockMessage) DoubleAck(context.Context) error           { return nil }
func (m *mockMessage) Metadata() (*jetstream.MsgMetadata, error) { return nil, nil }

func (m *mockMessage) IsAcked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.acked
}

func (m *mockMessage) WasNakCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.nakCalled
}

func newTestNATSConsumer(t *testing.T, campaignUC *mockUsecase.MockCampaignUsecase) *natsConsumer {
	t.Helper()

	return NewNATSConsumer(NATSConsumerParams{
		Lc:          fxtest.NewLifecycle(t),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		CampaignSvc: campaignUC,
	}).(*natsConsumer)
}

func eventMessage(t *testing.T, event *service.CampaignDispatchEvent) *mockMessage {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return &mockMessage{data: data}
}

func TestNATSConsumer_HandleMessage(t *testing.T) {
	campaignID := uuid.New()

	tests := []struct {
		name        string
		dispatchErr error
		wantAck     bool
		wantNak     bool
	}{
		{name: "dispatched", wantAck: true},
		{name: "already dispatched", dispatchErr: domainerrors.ErrCampaignAlreadyDispatched, wantAck: true},
		{name: "upstream failure", dispatchErr: domainerrors.ErrUpstreamRead, wantNak: true},
		{name: "unexpected failure", dispatchErr: errors.New("connection refused"), wantNak: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaignUC := mockUsecase.NewMockCampaignUsecase(t)
			consumer := newTestNATSConsumer(t, campaignUC)

			call := campaignUC.EXPECT().DispatchScheduled(mock.Anything, campaignID)
			if tt.dispatchErr != nil {
				call.Return(nil, tt.dispatchErr)
			} else {
				call.Return(&entity.DispatchResult{CampaignID: campaignID, Sent: 1, Total: 1}, nil)
			}

			msg := eventMessage(t, &service.CampaignDispatchEvent{CampaignID: campaignID.String(), StoreID: "store-1"})
			consumer.handleMessage(context.Background(), msg)

			assert.Equal(t, tt.wantAck, msg.IsAcked())
			assert.Equal(t, tt.wantNak, msg.WasNakCalled())
		})
	}
}

func TestNATSConsumer_HandleMessage_BadPayloadIsAcked(t *testing.T) {
	consumer := newTestNATSConsumer(t, mockUsecase.NewMockCampaignUsecase(t))

	msg := &mockMessage{data: []byte("not json")}
	consumer.handleMessage(context.Background(), msg)

	assert.True(t, msg.IsAcked())
	assert.False(t, msg.WasNakCalled())
}

func TestNATSConsumer_Serve_WithoutConsumer(t *testing.T) {
	consumer := newTestNATSConsumer(t, mockUsecase.NewMockCampaignUsecase(t))

	assert.NoError(t, consumer.Serve(context.Background()))
	assert.NoError(t, consumer.stop(context.Background()))
	assert.NoError(t, consumer.stop(context.Background()))
}
