package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"pushcampaign/internal/domain/entity"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/repository"
	mockRepo "pushcampaign/internal/mocks/repository"
	"pushcampaign/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memorySubscriptionRepository keeps rows keyed by (endpoint, store_id) like the unique index does.
type memorySubscriptionRepository struct {
	mu   sync.Mutex
	rows map[[2]string]*entity.PushSubscription
}

func newMemorySubscriptionRepository() *memorySubscriptionRepository {
	return &memorySubscriptionRepository{rows: map[[2]string]*entity.PushSubscription{}}
}

func (r *memorySubscriptionRepository) FindActiveByStore(_ context.Context, storeID string) ([]*entity.PushSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var active []*entity.PushSubscription
	for _, row := range r.rows {
		if row.StoreID == storeID && row.IsActive {
			copied := *row
			active = append(active, &copied)
		}
	}

	return active, nil
}

func (r *memorySubscriptionRepository) Upsert(_ context.Context, subscription *entity.PushSubscription) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]string{subscription.Endpoint, subscription.StoreID}
	if existing, ok := r.rows[key]; ok {
		existing.P256dh = subscription.P256dh
		existing.Auth = subscription.Auth
		existing.UserAgent = subscription.UserAgent
		existing.IsActive = true
		existing.LastSeen = subscription.LastSeen
		existing.UpdatedAt = subscription.UpdatedAt
		subscription.ID = existing.ID
		subscription.CreatedAt = existing.CreatedAt

		return false, nil
	}

	copied := *subscription
	copied.ID = uuid.New()
	copied.IsActive = true
	r.rows[key] = &copied
	subscription.ID = copied.ID

	return true, nil
}

func (r *memorySubscriptionRepository) SetActive(_ context.Context, id uuid.UUID, isActive bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.ID == id {
			row.IsActive = isActive

			return nil
		}
	}

	return repository.ErrSubscriptionNotFound
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubscriptionService_Register_IsIdempotentPerEndpointAndStore(t *testing.T) {
	repo := newMemorySubscriptionRepository()
	srv := NewSubscriptionService(testLogger(), repo)
	ctx := context.Background()

	first, err := srv.Register(ctx, &usecase.SubscriptionInput{
		StoreID:  "store-1",
		Endpoint: "https://fcm.googleapis.com/fcm/send/abc",
		P256dh:   "key-1",
		Auth:     "auth-1",
	})
	require.NoError(t, err)
	assert.True(t, first.Created)

	// Deactivated by a previous dispatch, then the browser registers again with rotated keys
	require.NoError(t, repo.SetActive(ctx, first.SubscriptionID, false))

	second, err := srv.Register(ctx, &usecase.SubscriptionInput{
		StoreID:  "store-1",
		Endpoint: "https://fcm.googleapis.com/fcm/send/abc",
		P256dh:   "key-2",
		Auth:     "auth-2",
	})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.SubscriptionID, second.SubscriptionID)

	require.Len(t, repo.rows, 1)
	active, err := repo.FindActiveByStore(ctx, "store-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "key-2", active[0].P256dh)
	assert.Equal(t, "auth-2", active[0].Auth)
	assert.True(t, active[0].IsActive)
}

func TestSubscriptionService_Register_SameEndpointOtherStore(t *testing.T) {
	repo := newMemorySubscriptionRepository()
	srv := NewSubscriptionService(testLogger(), repo)
	ctx := context.Background()

	for _, storeID := range []string{"store-1", "store-2"} {
		result, err := srv.Register(ctx, &usecase.SubscriptionInput{
			StoreID:  storeID,
			Endpoint: "https://push.example/shared",
			P256dh:   "key",
			Auth:     "auth",
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
	}

	assert.Len(t, repo.rows, 2)
}

func TestSubscriptionService_Register_ConcurrentRegistrationsConverge(t *testing.T) {
	repo := newMemorySubscriptionRepository()
	srv := NewSubscriptionService(testLogger(), repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.Register(ctx, &usecase.SubscriptionInput{
				StoreID:  "store-1",
				Endpoint: "https://push.example/race",
				P256dh:   "key",
				Auth:     "auth",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, repo.rows, 1)
}

func TestSubscriptionService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.SubscriptionInput
		message string
	}{
		{name: "nil input", input: nil, message: "Missing or invalid fields"},
		{name: "empty", input: &usecase.SubscriptionInput{}, message: "Missing required fields: endpoint, p256dh, auth, store_id"},
		{name: "missing keys", input: &usecase.SubscriptionInput{StoreID: "store-1", Endpoint: "https://push.example/a"}, message: "Missing required fields: p256dh, auth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockSubscriptionRepository(t)
			srv := NewSubscriptionService(testLogger(), repo)

			result, err := srv.Register(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestSubscriptionService_Register_StoreFailure(t *testing.T) {
	repo := mockRepo.NewMockSubscriptionRepository(t)
	srv := NewSubscriptionService(testLogger(), repo)
	ctx := context.Background()

	repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.PushSubscription")).
		Return(false, errors.New("connection refused"))

	result, err := srv.Register(ctx, &usecase.SubscriptionInput{
		StoreID:  "store-1",
		Endpoint: "https://push.example/a",
		P256dh:   "key",
		Auth:     "auth",
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionRegistrationFailed)
}
