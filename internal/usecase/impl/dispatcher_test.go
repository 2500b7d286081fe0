package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"pushcampaign/config"
	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/repository"
	"pushcampaign/internal/domain/service"
	mockRepo "pushcampaign/internal/mocks/repository"
	mockSvc "pushcampaign/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherMocks struct {
	subscriptionRepo   *mockRepo.MockSubscriptionRepository
	campaignRepo       *mockRepo.MockCampaignRepository
	deliveryRecordRepo *mockRepo.MockDeliveryRecordRepository
	sender             *mockSvc.MockPushSender
}

func testDispatchConfig() *config.Config {
	return &config.Config{
		Push: &config.PushConfig{
			DefaultIcon:  "/icon.png",
			DefaultBadge: "/badge.png",
			DefaultURL:   "/",
		},
		Dispatch: &config.DispatchConfig{
			Concurrency:     4,
			DeliveryTimeout: time.Second,
		},
	}
}

func newTestDispatcher(t *testing.T, cfg *config.Config) (*dispatcher, dispatcherMocks) {
	t.Helper()

	mocks := dispatcherMocks{
		subscriptionRepo:   mockRepo.NewMockSubscriptionRepository(t),
		campaignRepo:       mockRepo.NewMockCampaignRepository(t),
		deliveryRecordRepo: mockRepo.NewMockDeliveryRecordRepository(t),
		sender:             mockSvc.NewMockPushSender(t),
	}

	d := NewDispatcher(DispatcherParams{
		Config:             cfg,
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		SubscriptionRepo:   mocks.subscriptionRepo,
		CampaignRepo:       mocks.campaignRepo,
		DeliveryRecordRepo: mocks.deliveryRecordRepo,
		Sender:             mocks.sender,
	}).(*dispatcher)

	return d, mocks
}

func newTestCampaign() *entity.Campaign {
	return &entity.Campaign{
		ID:      uuid.New(),
		StoreID: "store-1",
		UserID:  "user-1",
		Name:    "Promo",
		Title:   "Hola",
		Body:    "2x1 hoy",
		Status:  entity.CampaignStatusSent,
	}
}

func newTestSubscription(endpoint string) *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:       uuid.New(),
		StoreID:  "store-1",
		Endpoint: endpoint,
		P256dh:   "p256dh-" + endpoint,
		Auth:     "auth-" + endpoint,
		IsActive: true,
	}
}

func TestDispatcher_Dispatch_NoActiveSubscribers(t *testing.T) {
	d, mocks := newTestDispatcher(t, testDispatchConfig())
	ctx := context.Background()
	campaign := newTestCampaign()

	mocks.subscriptionRepo.EXPECT().
		FindActiveByStore(ctx, "store-1").
		Return([]*entity.PushSubscription{}, nil)
	mocks.campaignRepo.EXPECT().
		UpdateCounts(ctx, campaign.ID, 0, 0).
		Return(nil)

	result, err := d.Dispatch(ctx, campaign)
	require.NoError(t, err)

	assert.Equal(t, campaign.ID, result.CampaignID)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, "no active subscribers", result.Message)
	mocks.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_Dispatch_ClassifiesOutcomes(t *testing.T) {
	d, mocks := newTestDispatcher(t, testDispatchConfig())
	ctx := context.Background()
	campaign := newTestCampaign()

	gone := newTestSubscription("https://push.example/gone")
	unavailable := newTestSubscription("https://push.example/unavailable")
	ok := newTestSubscription("https://push.example/ok")

	mocks.subscriptionRepo.EXPECT().
		FindActiveByStore(ctx, "store-1").
		Return([]*entity.PushSubscription{gone, unavailable, ok}, nil)

	var (
		mu       sync.Mutex
		payloads [][]byte
	)
	mocks.sender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("entity.PushTarget"), mock.AnythingOfType("[]uint8")).
		RunAndReturn(func(_ context.Context, target entity.PushTarget, payload []byte) error {
			mu.Lock()
			payloads = append(payloads, payload)
			mu.Unlock()

			switch target.Endpoint {
			case gone.Endpoint:
				return &service.DeliveryError{StatusCode: http.StatusGone, Message: "push subscription has unsubscribed or expired"}
			case unavailable.Endpoint:
				return &service.DeliveryError{StatusCode: http.StatusServiceUnavailable, Message: "Service Unavailable"}
			default:
				return nil
			}
		}).
		Times(3)

	mocks.subscriptionRepo.EXPECT().
		SetActive(ctx, gone.ID, false).
		Return(nil).
		Once()
	mocks.deliveryRecordRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DeliveryRecord")).
		Return(nil).
		Times(3)
	mocks.campaignRepo.EXPECT().
		UpdateCounts(ctx, campaign.ID, 1, 2).
		Return(nil)

	result, err := d.Dispatch(ctx, campaign)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, campaign.SentCount)
	assert.Equal(t, 2, campaign.FailedCount)

	require.Len(t, result.Records, 3)
	byEndpoint := map[uuid.UUID]*entity.DeliveryRecord{}
	for _, record := range result.Records {
		assert.Equal(t, campaign.ID, record.CampaignID)
		byEndpoint[record.SubscriptionID] = record
	}

	assert.Equal(t, entity.DeliveryStatusFailed, byEndpoint[gone.ID].Status)
	require.NotNil(t, byEndpoint[gone.ID].ErrorMessage)
	assert.Equal(t, "410: push subscription has unsubscribed or expired", *byEndpoint[gone.ID].ErrorMessage)

	assert.Equal(t, entity.DeliveryStatusFailed, byEndpoint[unavailable.ID].Status)
	require.NotNil(t, byEndpoint[unavailable.ID].ErrorMessage)
	assert.Equal(t, "503: Service Unavailable", *byEndpoint[unavailable.ID].ErrorMessage)

	assert.Equal(t, entity.DeliveryStatusSent, byEndpoint[ok.ID].Status)
	assert.Nil(t, byEndpoint[ok.ID].ErrorMessage)

	// Every recipient receives the same serialized message
	require.Len(t, payloads, 3)
	assert.Equal(t, payloads[0], payloads[1])
	assert.Equal(t, payloads[1], payloads[2])

	var message entity.PushMessage
	require.NoError(t, json.Unmarshal(payloads[0], &message))
	assert.Equal(t, "Hola", message.Title)
	assert.Equal(t, "/icon.png", message.Icon)
	assert.Equal(t, "/badge.png", message.Badge)
	assert.Equal(t, "/", message.Data.URL)
	assert.Equal(t, campaign.ID.String(), message.Data.CampaignID)
	assert.Equal(t, "store-1", message.Data.StoreID)
	assert.Len(t, message.Actions, 2)
}

func TestDispatcher_Dispatch_DeactivatesGoneEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		deactivate bool
	}{
		{name: "gone", statusCode: http.StatusGone, deactivate: true},
		{name: "not found", statusCode: http.StatusNotFound, deactivate: true},
		{name: "unauthorized", statusCode: http.StatusUnauthorized, deactivate: true},
		{name: "bad request", statusCode: http.StatusBadRequest, deactivate: false},
		{name: "too many requests", statusCode: http.StatusTooManyRequests, deactivate: false},
		{name: "internal server error", statusCode: http.StatusInternalServerError, deactivate: false},
		{name: "service unavailable", statusCode: http.StatusServiceUnavailable, deactivate: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, mocks := newTestDispatcher(t, testDispatchConfig())
			ctx := context.Background()
			campaign := newTestCampaign()
			subscription := newTestSubscription("https://push.example/" + tt.name)

			mocks.subscriptionRepo.EXPECT().
				FindActiveByStore(ctx, "store-1").
				Return([]*entity.PushSubscription{subscription}, nil)
			mocks.sender.EXPECT().
				Send(mock.Anything, subscription.Target(), mock.Anything).
				Return(&service.DeliveryError{StatusCode: tt.statusCode, Message: http.StatusText(tt.statusCode)})
			if tt.deactivate {
				mocks.subscriptionRepo.EXPECT().
					SetActive(ctx, subscription.ID, false).
					Return(nil)
			}
			mocks.deliveryRecordRepo.EXPECT().
				Create(ctx, mock.Anything).
				Return(nil)
			mocks.campaignRepo.EXPECT().
				UpdateCounts(ctx, campaign.ID, 0, 1).
				Return(nil)

			result, err := d.Dispatch(ctx, campaign)
			require.NoError(t, err)
			assert.Equal(t, 1, result.Failed)

			if !tt.deactivate {
				mocks.subscriptionRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestDispatcher_Dispatch_ConservesOutcomes(t *testing.T) {
	cfg := testDispatchConfig()
	cfg.Dispatch.Concurrency = 3
	d, mocks := newTestDispatcher(t, cfg)
	ctx := context.Background()
	campaign := newTestCampaign()

	const total = 25
	subscriptions := make([]*entity.PushSubscription, 0, total)
	failing := map[string]bool{}
	for idx := range total {
		subscription := newTestSubscription(uuid.NewString())
		subscriptions = append(subscriptions, subscription)
		if idx%4 == 0 {
			failing[subscription.Endpoint] = true
		}
	}

	mocks.subscriptionRepo.EXPECT().
		FindActiveByStore(ctx, "store-1").
		Return(subscriptions, nil)
	mocks.sender.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, target entity.PushTarget, _ []byte) error {
			if failing[target.Endpoint] {
				return errors.New("connection reset by peer")
			}

			return nil
		})
	mocks.deliveryRecordRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil).
		Times(total)
	mocks.campaignRepo.EXPECT().
		UpdateCounts(ctx, campaign.ID, total-len(failing), len(failing)).
		Return(nil)

	result, err := d.Dispatch(ctx, campaign)
	require.NoError(t, err)

	assert.Equal(t, total, result.Sent+result.Failed)
	assert.Equal(t, total, result.Total)
	assert.Equal(t, len(failing), result.Failed)

	require.Len(t, result.Records, total)
	seen := map[uuid.UUID]bool{}
	for idx, record := range result.Records {
		require.NotNil(t, record)
		assert.Equal(t, subscriptions[idx].ID, record.SubscriptionID)
		seen[record.SubscriptionID] = true
	}
	assert.Len(t, seen, total)
}

func TestDispatcher_Dispatch_TimeoutIsFailedWithDistinctDetail(t *testing.T) {
	cfg := testDispatchConfig()
	cfg.Dispatch.DeliveryTimeout = 20 * time.Millisecond
	d, mocks := newTestDispatcher(t, cfg)
	ctx := context.Background()
	campaign := newTestCampaign()
	subscription := newTestSubscription("https://push.example/slow")

	mocks.subscriptionRepo.EXPECT().
		FindActiveByStore(ctx, "store-1").
		Return([]*entity.PushSubscription{subscription}, nil)
	mocks.sender.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(deliveryCtx context.Context, _ entity.PushTarget, _ []byte) error {
			<-deliveryCtx.Done()

			return deliveryCtx.Err()
		})
	mocks.deliveryRecordRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil)
	mocks.campaignRepo.EXPECT().
		UpdateCounts(ctx, campaign.ID, 0, 1).
		Return(nil)

	result, err := d.Dispatch(ctx, campaign)
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	record := result.Records[0]
	assert.Equal(t, entity.DeliveryStatusFailed, record.Status)
	require.NotNil(t, record.ErrorMessage)
	assert.Contains(t, *record.ErrorMessage, "timeout")
	mocks.subscriptionRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_Dispatch_TelemetryFailuresAreSwallowed(t *testing.T) {
	d, mocks := newTestDispatcher(t, testDispatchConfig())
	ctx := context.Background()
	campaign := newTestCampaign()
	gone := newTestSubscription("https://push.example/gone")
	ok := newTestSubscription("https://push.example/ok")

	mocks.subscriptionRepo.EXPECT().
		FindActiveByStore(ctx, "store-1").
		Return([]*entity.PushSubscription{gone, ok}, nil)
	mocks.sender.EXPECT().
		Send(mock.Anything, gone.Target(), mock.Anything).
		Return(&service.DeliveryError{StatusCode: http.StatusGone, Message: "Gone"})
	mocks.sender.EXPECT().
		Send(mock.Anything, ok.Target(), mock.Anything).
		Return(nil)
	mocks.subscriptionRepo.EXPECT().
		SetActive(ctx, gone.ID, false).
		Return(errors.New("connection refused"))
	mocks.deliveryRecordRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.New("connection refused"))
	mocks.campaignRepo.EXPECT().
		UpdateCounts(ctx, campaign.ID, 1, 1).
		Return(errors.New("connection refused"))

	result, err := d.Dispatch(ctx, campaign)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 2, result.Total)
}

func TestDispatcher_Dispatch_UpstreamReadFailure(t *testing.T) {
	d, mocks := newTestDispatcher(t, testDispatchConfig())
	ctx := context.Background()
	campaign := newTestCampaign()

	mocks.subscriptionRepo.EXPECT().
		FindActiveByStore(ctx, "store-1").
		Return(nil, errors.New("connection refused"))

	result, err := d.Dispatch(ctx, campaign)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamRead)

	mocks.campaignRepo.AssertNotCalled(t, "UpdateCounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_Dispatch_RejectsIncompleteCampaign(t *testing.T) {
	d, _ := newTestDispatcher(t, testDispatchConfig())

	tests := []struct {
		name     string
		campaign *entity.Campaign
	}{
		{name: "nil campaign", campaign: nil},
		{name: "missing title", campaign: &entity.Campaign{ID: uuid.New(), StoreID: "store-1", Body: "body"}},
		{name: "missing body", campaign: &entity.Campaign{ID: uuid.New(), StoreID: "store-1", Title: "title"}},
		{name: "missing store", campaign: &entity.Campaign{ID: uuid.New(), Title: "title", Body: "body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := d.Dispatch(context.Background(), tt.campaign)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDispatcher_Dispatch_ClaimsScheduledCampaign(t *testing.T) {
	d, mocks := newTestDispatcher(t, testDispatchConfig())
	sentAt := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return sentAt }
	ctx := context.Background()

	campaign := newTestCampaign()
	campaign.Status = entity.CampaignStatusScheduled
	scheduledFor := sentAt.Add(-time.Minute)
	campaign.ScheduledFor = &scheduledFor

	mocks.subscriptionRepo.EXPECT().
		FindActiveByStore(ctx, "store-1").
		Return([]*entity.PushSubscription{}, nil)
	mocks.campaignRepo.EXPECT().
		ClaimScheduled(ctx, campaign.ID, sentAt).
		Return(nil)
	mocks.campaignRepo.EXPECT().
		UpdateCounts(ctx, campaign.ID, 0, 0).
		Return(nil)

	_, err := d.Dispatch(ctx, campaign)
	require.NoError(t, err)

	assert.Equal(t, entity.CampaignStatusSent, campaign.Status)
	require.NotNil(t, campaign.SentAt)
	assert.Equal(t, sentAt, *campaign.SentAt)
}

func TestDispatcher_Dispatch_LostClaimDoesNotDeliver(t *testing.T) {
	d, mocks := newTestDispatcher(t, testDispatchConfig())
	ctx := context.Background()

	campaign := newTestCampaign()
	campaign.Status = entity.CampaignStatusScheduled

	mocks.subscriptionRepo.EXPECT().
		FindActiveByStore(ctx, "store-1").
		Return([]*entity.PushSubscription{newTestSubscription("https://push.example/a")}, nil)
	mocks.campaignRepo.EXPECT().
		ClaimScheduled(ctx, campaign.ID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrCampaignNotClaimable)

	result, err := d.Dispatch(ctx, campaign)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCampaignAlreadyDispatched)

	mocks.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	mocks.campaignRepo.AssertNotCalled(t, "UpdateCounts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
