package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"pushcampaign/internal/domain/entity"
	"pushcampaign/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.err != nil {
		return "", f.err
	}

	return "projects/demo/messages/1", nil
}

func TestFirebaseSender_Send(t *testing.T) {
	client := &fakeMessagingClient{}
	sender := &firebaseSender{client: client, logger: slog.Default()}

	payload, err := json.Marshal(entity.PushMessage{
		Title: "Promo",
		Body:  "2x1 hoy",
		Icon:  "/icon.png",
		Data: entity.PushMessageData{
			URL:        "/promo",
			CampaignID: "c-1",
			StoreID:    "store-1",
		},
	})
	require.NoError(t, err)

	err = sender.Send(context.Background(), entity.PushTarget{Endpoint: "fcm-token"}, payload)
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	message := client.sent[0]
	assert.Equal(t, "fcm-token", message.Token)
	assert.Equal(t, "Promo", message.Notification.Title)
	assert.Equal(t, "2x1 hoy", message.Notification.Body)
	assert.Equal(t, "/promo", message.Data["url"])
	assert.Equal(t, "c-1", message.Data["campaign_id"])
	assert.Equal(t, "/promo", message.Webpush.FCMOptions.Link)
}

func TestFirebaseSender_Send_Errors(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		sender := &firebaseSender{client: &fakeMessagingClient{}, logger: slog.Default()}

		err := sender.Send(context.Background(), entity.PushTarget{Endpoint: "token"}, []byte("not json"))
		assert.Error(t, err)
	})

	t.Run("unclassified transport error", func(t *testing.T) {
		sender := &firebaseSender{client: &fakeMessagingClient{err: errors.New("dial tcp: connection refused")}, logger: slog.Default()}

		err := sender.Send(context.Background(), entity.PushTarget{Endpoint: "token"}, []byte(`{"title":"t","body":"b"}`))
		require.Error(t, err)

		var deliveryErr *service.DeliveryError
		assert.NotErrorAs(t, err, &deliveryErr)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
