package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"pushcampaign/internal/delivery"
	deliverycontext "pushcampaign/internal/delivery/context"
	"pushcampaign/internal/delivery/worker/handler"
	"pushcampaign/internal/domain/service"
	"pushcampaign/internal/usecase"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// natsConsumer pulls campaign dispatch events from a JetStream durable consumer
type natsConsumer struct {
	logger    *slog.Logger
	consumer  jetstream.Consumer
	processor *handler.DispatchProcessor
	stopped   chan struct{}
	stopOnce  sync.Once
}

// NATSConsumerParams holds dependencies for the NATS consumer delivery
type NATSConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Logger      *slog.Logger
	Consumer    jetstream.Consumer `optional:"true"`
	CampaignSvc usecase.CampaignUsecase
}

// NewNATSConsumer creates a delivery that processes dispatch events from JetStream.
// Without a consumer it serves nothing and returns immediately.
func NewNATSConsumer(params NATSConsumerParams) delivery.Delivery {
	srv := &natsConsumer{
		logger:    params.Logger,
		consumer:  params.Consumer,
		processor: handler.NewDispatchProcessor(params.Logger, params.CampaignSvc),
		stopped:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

// Serve consumes messages until the consume context is stopped or ctx is done
func (s *natsConsumer) Serve(ctx context.Context) error {
	if s.consumer == nil {
		s.logger.Info("NATS consumer disabled")

		return nil
	}

	consumeCtx, err := s.consumer.Consume(func(msg jetstream.Msg) {
		s.handleMessage(ctx, msg)
	})
	if err != nil {
		return errors.Wrap(err, "failed to start NATS consumer")
	}
	s.logger.Info("Starting NATS dispatch consumer")

	select {
	case <-ctx.Done():
	case <-s.stopped:
	case <-consumeCtx.Closed():
		return nil
	}
	consumeCtx.Stop()
	<-consumeCtx.Closed()

	return nil
}

// handleMessage acks events that are done or can never succeed and naks the rest
func (s *natsConsumer) handleMessage(ctx context.Context, msg jetstream.Msg) {
	var event service.CampaignDispatchEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		s.logger.Error("[Worker] Failed to parse campaign dispatch event", slog.Any("error", err))
		s.ack(msg)

		return
	}

	requestID := event.RequestID
	if headers := msg.Headers(); headers != nil && headers.Get("request_id") != "" {
		requestID = headers.Get("request_id")
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, s.logger, requestID)

	reqLogger.Info("[Worker] Processing campaign dispatch event",
		slog.String("campaign_id", event.CampaignID),
		slog.String("store_id", event.StoreID),
	)

	if err := s.processor.Process(ctx, &event); err != nil {
		retryable := handler.IsRetryableError(err)
		reqLogger.Error("[Worker] Failed to process campaign dispatch",
			slog.String("campaign_id", event.CampaignID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			if nakErr := msg.Nak(); nakErr != nil {
				reqLogger.Warn("[Worker] Failed to nak message", slog.Any("error", nakErr))
			}

			return
		}
	}

	s.ack(msg)
}

func (s *natsConsumer) ack(msg jetstream.Msg) {
	if err := msg.Ack(); err != nil {
		s.logger.Warn("[Worker] Failed to ack message", slog.Any("error", err))
	}
}

func (s *natsConsumer) stop(_ context.Context) error {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping NATS dispatch consumer")
		close(s.stopped)
	})

	return nil
}
