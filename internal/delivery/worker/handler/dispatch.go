package handler

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "pushcampaign/internal/delivery/context"
	domainerrors "pushcampaign/internal/domain/errors"
	"pushcampaign/internal/domain/service"
	"pushcampaign/internal/errors"
	"pushcampaign/internal/usecase"

	"github.com/google/uuid"
)

// retryableError wraps an error to indicate the event should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// DispatchProcessor turns a campaign dispatch event into a scheduled dispatch.
// It is shared by the Pub/Sub push endpoint and the NATS consumer.
type DispatchProcessor struct {
	logger      *slog.Logger
	campaignSvc usecase.CampaignUsecase
}

// NewDispatchProcessor creates a new DispatchProcessor
func NewDispatchProcessor(logger *slog.Logger, campaignSvc usecase.CampaignUsecase) *DispatchProcessor {
	return &DispatchProcessor{
		logger:      logger,
		campaignSvc: campaignSvc,
	}
}

// Process dispatches the campaign named by the event. Client-side failures such as an unknown
// or already dispatched campaign are final; everything else is returned as retryable.
func (p *DispatchProcessor) Process(ctx context.Context, event *service.CampaignDispatchEvent) error {
	campaignID, err := uuid.Parse(event.CampaignID)
	if err != nil {
		return errors.Wrapf(err, "invalid campaign_id %q", event.CampaignID)
	}

	result, err := p.campaignSvc.DispatchScheduled(ctx, campaignID)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
			return err
		}

		return newRetryableError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("[Worker] Campaign dispatched",
		slog.String("campaign_id", event.CampaignID),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("total", result.Total),
	)

	return nil
}
