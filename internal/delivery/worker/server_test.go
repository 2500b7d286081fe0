package worker

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pushcampaign/config"
	"pushcampaign/internal/delivery/worker/handler"
	"pushcampaign/internal/domain/constants"
	mockUsecase "pushcampaign/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerEcho_Health(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:      cfg,
		Logger:      logger,
		CampaignSvc: mockUsecase.NewMockCampaignUsecase(t),
	})

	e := NewEcho(cfg, logger, pushHandler)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["status"])
}
