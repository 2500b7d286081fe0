package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Postgres)
	require.NotNil(t, cfg.CORS)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)

	require.NotNil(t, cfg.Push)
	assert.Equal(t, "vapid", cfg.Push.Provider)
	assert.Equal(t, "/icon.png", cfg.Push.DefaultIcon)
	assert.Equal(t, "/badge.png", cfg.Push.DefaultBadge)
	assert.Equal(t, "/", cfg.Push.DefaultURL)
	assert.Equal(t, 86400, cfg.Push.VAPID.TTL)

	require.NotNil(t, cfg.Dispatch)
	assert.Equal(t, 50, cfg.Dispatch.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.Dispatch.DeliveryTimeout)
	assert.Equal(t, 100, cfg.Dispatch.ReleaseBatchSize)

	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)

	assert.Nil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		CORS: &CORSConfig{AllowOrigins: []string{"https://shop.example"}},
		Push: &PushConfig{
			Provider:    "firebase",
			DefaultIcon: "/brand.png",
		},
		Dispatch: &DispatchConfig{
			Concurrency:     8,
			DeliveryTimeout: 3 * time.Second,
		},
		PubSub: &PubSubConfig{
			Provider: "nats",
			NATS:     NATSConfig{URL: "nats://localhost:4222", Subject: "campaigns.due"},
		},
	}
	applyDefaults(cfg)

	assert.Equal(t, []string{"https://shop.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "firebase", cfg.Push.Provider)
	assert.Equal(t, "/brand.png", cfg.Push.DefaultIcon)
	assert.Equal(t, "/badge.png", cfg.Push.DefaultBadge)
	assert.Equal(t, 8, cfg.Dispatch.Concurrency)
	assert.Equal(t, 3*time.Second, cfg.Dispatch.DeliveryTimeout)
	assert.Equal(t, 100, cfg.Dispatch.ReleaseBatchSize)

	assert.Equal(t, "campaigns.due", cfg.PubSub.NATS.Subject)
	assert.Equal(t, "PUSH_CAMPAIGNS", cfg.PubSub.NATS.Stream)
	assert.Equal(t, "dispatch-worker", cfg.PubSub.NATS.Durable)
}
