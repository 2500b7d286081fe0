package notification

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"pushcampaign/config"
	"pushcampaign/internal/domain/entity"
	"pushcampaign/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

// maxErrorBodySize caps how much of a rejection body ends up in a delivery record.
const maxErrorBodySize = 512

type vapidSender struct {
	options webpush.Options
	logger  *slog.Logger
}

// NewVAPIDSender creates a Web Push sender signing requests with the configured VAPID key pair
func NewVAPIDSender(cfg config.VAPIDConfig, httpClient *http.Client, logger *slog.Logger) (service.PushSender, error) {
	if cfg.PublicKey == "" || cfg.PrivateKey == "" {
		return nil, errors.New("vapid public and private keys are required")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &vapidSender{
		options: webpush.Options{
			HTTPClient:      httpClient,
			Subscriber:      cfg.Subscriber,
			VAPIDPublicKey:  cfg.PublicKey,
			VAPIDPrivateKey: cfg.PrivateKey,
			TTL:             cfg.TTL,
			Urgency:         webpush.Urgency(cfg.Urgency),
		},
		logger: logger,
	}, nil
}

// Send encrypts payload for the subscription and posts it to the push service
func (s *vapidSender) Send(ctx context.Context, target entity.PushTarget, payload []byte) error {
	subscription := &webpush.Subscription{
		Endpoint: target.Endpoint,
		Keys: webpush.Keys{
			P256dh: target.P256dh,
			Auth:   target.Auth,
		},
	}

	options := s.options

	resp, err := webpush.SendNotificationWithContext(ctx, payload, subscription, &options)
	if err != nil {
		return errors.Wrap(err, "failed to send web push")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &service.DeliveryError{
			StatusCode: resp.StatusCode,
			Message:    rejectionMessage(resp),
		}
	}

	return nil
}

func rejectionMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err == nil {
		if message := strings.TrimSpace(string(body)); message != "" {
			return message
		}
	}

	return http.StatusText(resp.StatusCode)
}
