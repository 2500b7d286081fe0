package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"pushcampaign/internal/domain/entity"
	"pushcampaign/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client the sender needs
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseSender struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseSender creates a sender that delivers through Firebase Cloud Messaging.
// Subscriptions stored for this provider carry the FCM registration token as their endpoint.
func NewFirebaseSender(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{
		client: client,
		logger: logger,
	}, nil
}

// Send delivers payload to the registration token held in target.Endpoint
func (s *firebaseSender) Send(ctx context.Context, target entity.PushTarget, payload []byte) error {
	var pushMessage entity.PushMessage
	if err := json.Unmarshal(payload, &pushMessage); err != nil {
		return errors.Wrap(err, "failed to decode push payload")
	}

	message := &messaging.Message{
		Token: target.Endpoint,
		Notification: &messaging.Notification{
			Title: pushMessage.Title,
			Body:  pushMessage.Body,
		},
		Data: map[string]string{
			"url":         pushMessage.Data.URL,
			"campaign_id": pushMessage.Data.CampaignID,
			"store_id":    pushMessage.Data.StoreID,
			"payload":     string(payload),
		},
		Webpush: &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: pushMessage.Data.URL,
			},
		},
	}

	// FCM only accepts absolute image URLs
	if strings.HasPrefix(pushMessage.Icon, "https://") {
		message.Notification.ImageURL = pushMessage.Icon
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if deliveryErr := classifyFirebaseError(err); deliveryErr != nil {
			return deliveryErr
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// classifyFirebaseError maps FCM error codes onto push service status codes.
// Unregistered tokens map to 410 so the dispatcher deactivates them.
func classifyFirebaseError(err error) *service.DeliveryError {
	switch {
	case messaging.IsUnregistered(err):
		return &service.DeliveryError{StatusCode: http.StatusGone, Message: "registration token is no longer valid"}
	case messaging.IsSenderIDMismatch(err):
		return &service.DeliveryError{StatusCode: http.StatusForbidden, Message: "sender id mismatch"}
	case messaging.IsInvalidArgument(err):
		return &service.DeliveryError{StatusCode: http.StatusBadRequest, Message: err.Error()}
	case messaging.IsQuotaExceeded(err):
		return &service.DeliveryError{StatusCode: http.StatusTooManyRequests, Message: "quota exceeded"}
	case messaging.IsUnavailable(err):
		return &service.DeliveryError{StatusCode: http.StatusServiceUnavailable, Message: "messaging service unavailable"}
	case messaging.IsInternal(err):
		return &service.DeliveryError{StatusCode: http.StatusInternalServerError, Message: "messaging internal error"}
	default:
		return nil
	}
}
