package notification

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pushcampaign/config"
	"pushcampaign/internal/domain/entity"
	"pushcampaign/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVAPIDConfig(t *testing.T) config.VAPIDConfig {
	t.Helper()

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	return config.VAPIDConfig{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		Subscriber: "mailto:ops@example.com",
		TTL:        60,
	}
}

func newTestTarget(t *testing.T, endpoint string) entity.PushTarget {
	t.Helper()

	browserKey, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	authSecret := make([]byte, 16)
	_, err = rand.Read(authSecret)
	require.NoError(t, err)

	return entity.PushTarget{
		Endpoint: endpoint,
		P256dh:   base64.RawURLEncoding.EncodeToString(browserKey.PublicKey().Bytes()),
		Auth:     base64.RawURLEncoding.EncodeToString(authSecret),
	}
}

func TestNewVAPIDSender_RequiresKeys(t *testing.T) {
	_, err := NewVAPIDSender(config.VAPIDConfig{PublicKey: "only-public"}, nil, slog.Default())
	assert.Error(t, err)
}

func TestVAPIDSender_Send(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "accepted", statusCode: http.StatusCreated},
		{name: "gone endpoint", statusCode: http.StatusGone, body: "push subscription has unsubscribed or expired", wantStatus: http.StatusGone, wantMsg: "push subscription has unsubscribed or expired"},
		{name: "rejection without body", statusCode: http.StatusTooManyRequests, wantStatus: http.StatusTooManyRequests, wantMsg: "Too Many Requests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTTL, gotEncoding string
			var gotBody []byte
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotTTL = r.Header.Get("TTL")
				gotEncoding = r.Header.Get("Content-Encoding")
				gotBody, _ = io.ReadAll(r.Body)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			sender, err := NewVAPIDSender(newTestVAPIDConfig(t), server.Client(), slog.Default())
			require.NoError(t, err)

			err = sender.Send(context.Background(), newTestTarget(t, server.URL), []byte(`{"title":"hola"}`))

			assert.Equal(t, "60", gotTTL)
			assert.Equal(t, "aes128gcm", gotEncoding)
			assert.NotContains(t, string(gotBody), "hola", "payload must be encrypted")

			if tt.wantStatus == 0 {
				assert.NoError(t, err)

				return
			}

			var deliveryErr *service.DeliveryError
			require.ErrorAs(t, err, &deliveryErr)
			assert.Equal(t, tt.wantStatus, deliveryErr.StatusCode)
			assert.Equal(t, tt.wantMsg, deliveryErr.Message)
		})
	}
}

func TestVAPIDSender_Send_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	sender, err := NewVAPIDSender(newTestVAPIDConfig(t), server.Client(), slog.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = sender.Send(ctx, newTestTarget(t, server.URL), []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var deliveryErr *service.DeliveryError
	assert.NotErrorAs(t, err, &deliveryErr)
}
