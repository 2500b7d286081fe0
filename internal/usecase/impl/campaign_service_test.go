package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pushcampaign/config"
	deliverycontext "pushcampaign/internal/delivery/context"
	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/repository"
	"pushcampaign/internal/domain/service"
	mockRepo "pushcampaign/internal/mocks/repository"
	mockSvc "pushcampaign/internal/mocks/service"
	mockUsecase "pushcampaign/internal/mocks/usecase"
	"pushcampaign/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type campaignServiceMocks struct {
	campaignRepo *mockRepo.MockCampaignRepository
	dispatcher   *mockUsecase.MockDispatcher
	publisher    *mockSvc.MockEventPublisher
	qrcodeSvc    *mockSvc.MockQRCodeService
}

func newTestCampaignService(t *testing.T) (*campaignService, campaignServiceMocks) {
	t.Helper()

	mocks := campaignServiceMocks{
		campaignRepo: mockRepo.NewMockCampaignRepository(t),
		dispatcher:   mockUsecase.NewMockDispatcher(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		qrcodeSvc:    mockSvc.NewMockQRCodeService(t),
	}

	srv := NewCampaignService(CampaignServiceParams{
		CampaignRepo: mocks.campaignRepo,
		Dispatcher:   mocks.dispatcher,
		Publisher:    mocks.publisher,
		QRCodeSvc:    mocks.qrcodeSvc,
		Config: &config.Config{
			Dispatch: &config.DispatchConfig{ReleaseBatchSize: 10},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*campaignService)
	srv.now = func() time.Time { return fixedNow }

	return srv, mocks
}

func validCampaignInput() *usecase.CampaignInput {
	return &usecase.CampaignInput{
		StoreID: "store-1",
		UserID:  "user-1",
		Title:   "Hola",
		Body:    "2x1 hoy",
	}
}

func TestCampaignService_Send(t *testing.T) {
	srv, mocks := newTestCampaignService(t)
	ctx := context.Background()

	var created *entity.Campaign
	mocks.campaignRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Campaign")).
		Run(func(_ context.Context, campaign *entity.Campaign) {
			created = campaign
		}).
		Return(nil)
	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*entity.Campaign")).
		RunAndReturn(func(_ context.Context, campaign *entity.Campaign) (*entity.DispatchResult, error) {
			return &entity.DispatchResult{CampaignID: campaign.ID, Sent: 2, Failed: 1, Total: 3}, nil
		})

	result, err := srv.Send(ctx, validCampaignInput())
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, created.ID, result.CampaignID)
	assert.Equal(t, entity.CampaignStatusSent, created.Status)
	assert.Equal(t, "Campaña sin nombre", created.Name)
	require.NotNil(t, created.SentAt)
	assert.Equal(t, fixedNow, *created.SentAt)
	assert.Equal(t, 3, result.Total)
}

func TestCampaignService_Send_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CampaignInput
		message string
	}{
		{name: "nil input", input: nil},
		{name: "missing title", input: &usecase.CampaignInput{StoreID: "store-1", Body: "body"}, message: "Missing required fields: title"},
		{name: "missing everything", input: &usecase.CampaignInput{}, message: "Missing required fields: title, body, store_id"},
		{name: "blank body", input: &usecase.CampaignInput{StoreID: "store-1", Title: "title", Body: "  "}, message: "Missing required fields: body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestCampaignService(t)

			result, err := srv.Send(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestCampaignService_Send_CreateFailure(t *testing.T) {
	srv, mocks := newTestCampaignService(t)
	ctx := context.Background()

	mocks.campaignRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.New("connection refused"))

	result, err := srv.Send(ctx, validCampaignInput())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCampaignCreationFailed)
}

func TestCampaignService_Schedule(t *testing.T) {
	tests := []struct {
		name         string
		scheduledFor time.Time
		wantErr      error
	}{
		{name: "past", scheduledFor: fixedNow.Add(-time.Hour), wantErr: domainerrors.ErrScheduleNotInFuture},
		{name: "now", scheduledFor: fixedNow, wantErr: domainerrors.ErrScheduleNotInFuture},
		{name: "future", scheduledFor: fixedNow.Add(time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newTestCampaignService(t)
			ctx := context.Background()

			if tt.wantErr == nil {
				mocks.campaignRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*entity.Campaign")).
					Return(nil)
			}

			campaign, err := srv.Schedule(ctx, validCampaignInput(), tt.scheduledFor)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, campaign)
				mocks.campaignRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.CampaignStatusScheduled, campaign.Status)
			assert.Equal(t, "Campaña programada", campaign.Name)
			require.NotNil(t, campaign.ScheduledFor)
			assert.Equal(t, tt.scheduledFor, *campaign.ScheduledFor)
			assert.Nil(t, campaign.SentAt)
			mocks.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
		})
	}
}

func TestCampaignService_Schedule_RequiresUserID(t *testing.T) {
	srv, _ := newTestCampaignService(t)
	input := validCampaignInput()
	input.UserID = ""

	_, err := srv.Schedule(context.Background(), input, fixedNow.Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "Missing required fields: user_id", err.Error())
}

func TestCampaignService_ListByStore(t *testing.T) {
	srv, mocks := newTestCampaignService(t)
	ctx := context.Background()
	campaigns := []*entity.Campaign{{ID: uuid.New()}, {ID: uuid.New()}}

	mocks.campaignRepo.EXPECT().
		ListByStore(ctx, "store-1").
		Return(campaigns, nil)

	result, err := srv.ListByStore(ctx, "store-1")
	require.NoError(t, err)
	assert.Equal(t, campaigns, result)

	_, err = srv.ListByStore(ctx, " ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCampaignService_ListByStore_ReadFailure(t *testing.T) {
	srv, mocks := newTestCampaignService(t)
	ctx := context.Background()

	mocks.campaignRepo.EXPECT().
		ListByStore(ctx, "store-1").
		Return(nil, errors.New("connection refused"))

	_, err := srv.ListByStore(ctx, "store-1")
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamRead)
}

func TestCampaignService_ReleaseDue(t *testing.T) {
	srv, mocks := newTestCampaignService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	scheduledFor := fixedNow.Add(-time.Minute)
	first := &entity.Campaign{ID: uuid.New(), StoreID: "store-1", Status: entity.CampaignStatusScheduled, ScheduledFor: &scheduledFor}
	second := &entity.Campaign{ID: uuid.New(), StoreID: "store-2", Status: entity.CampaignStatusScheduled}

	mocks.campaignRepo.EXPECT().
		FindDueScheduled(ctx, fixedNow, 10).
		Return([]*entity.Campaign{first, second}, nil)
	mocks.publisher.EXPECT().
		PublishCampaignDispatch(ctx, &service.CampaignDispatchEvent{
			RequestID:    "req-1",
			CampaignID:   first.ID.String(),
			StoreID:      "store-1",
			ScheduledFor: "2026-10-15T11:59:00Z",
		}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishCampaignDispatch(ctx, &service.CampaignDispatchEvent{
			RequestID:  "req-1",
			CampaignID: second.ID.String(),
			StoreID:    "store-2",
		}).
		Return(errors.New("publishing disabled"))

	released, err := srv.ReleaseDue(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, released)
}

func TestCampaignService_ReleaseDue_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero uses batch size", limit: 0, want: 10},
		{name: "negative uses batch size", limit: -5, want: 10},
		{name: "within batch size", limit: 3, want: 3},
		{name: "above batch size", limit: 500, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newTestCampaignService(t)
			ctx := context.Background()

			mocks.campaignRepo.EXPECT().
				FindDueScheduled(ctx, fixedNow, tt.want).
				Return([]*entity.Campaign{}, nil)

			released, err := srv.ReleaseDue(ctx, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, 0, released)
		})
	}
}

func TestCampaignService_DispatchScheduled(t *testing.T) {
	campaignID := uuid.New()

	tests := []struct {
		name     string
		campaign *entity.Campaign
		findErr  error
		dispatch bool
		wantErr  error
	}{
		{
			name:     "scheduled campaign is dispatched",
			campaign: &entity.Campaign{ID: campaignID, StoreID: "store-1", Title: "t", Body: "b", Status: entity.CampaignStatusScheduled},
			dispatch: true,
		},
		{
			name:     "sent campaign is rejected",
			campaign: &entity.Campaign{ID: campaignID, Status: entity.CampaignStatusSent},
			wantErr:  domainerrors.ErrCampaignAlreadyDispatched,
		},
		{
			name:    "unknown campaign",
			findErr: repository.ErrCampaignNotFound,
			wantErr: domainerrors.ErrCampaignNotFound,
		},
		{
			name:    "read failure",
			findErr: errors.New("connection refused"),
			wantErr: domainerrors.ErrUpstreamRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newTestCampaignService(t)
			ctx := context.Background()

			mocks.campaignRepo.EXPECT().
				FindByID(ctx, campaignID).
				Return(tt.campaign, tt.findErr)
			if tt.dispatch {
				mocks.dispatcher.EXPECT().
					Dispatch(ctx, tt.campaign).
					Return(&entity.DispatchResult{CampaignID: campaignID, Sent: 1, Total: 1}, nil)
			}

			result, err := srv.DispatchScheduled(ctx, campaignID)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, result.Sent)
		})
	}
}

func TestCampaignService_GenerateStoreQR(t *testing.T) {
	srv, mocks := newTestCampaignService(t)
	ctx := context.Background()

	mocks.qrcodeSvc.EXPECT().
		GenerateStoreQR("store-1").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := srv.GenerateStoreQR(ctx, "store-1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	_, err = srv.GenerateStoreQR(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
