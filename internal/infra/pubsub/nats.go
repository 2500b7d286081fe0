package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pushcampaign/config"
	"pushcampaign/internal/domain/constants"
	"pushcampaign/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// duplicateWindow bounds JetStream de-duplication of repeated releases of one campaign
	duplicateWindow = 10 * time.Minute

	// consumerAckWait covers a full fan-out before JetStream redelivers the event
	consumerAckWait    = 5 * time.Minute
	consumerMaxDeliver = 5
)

// natsPublisher implements EventPublisher on a JetStream stream
type natsPublisher struct {
	conn    *nats.Conn
	js      jetstream.JetStream
	subject string
	logger  *slog.Logger
}

// ConnectJetStream dials NATS and makes sure the dispatch stream exists
func ConnectJetStream(ctx context.Context, cfg config.NATSConfig) (*nats.Conn, jetstream.JetStream, error) {
	conn, err := nats.Connect(cfg.URL, nats.Name("pushcampaign"))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to NATS")
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()

		return nil, nil, errors.Wrap(err, "failed to create JetStream context")
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       cfg.Stream,
		Subjects:   []string{cfg.Subject},
		Duplicates: duplicateWindow,
	})
	if err != nil {
		conn.Close()

		return nil, nil, errors.Wrapf(err, "failed to create stream %s", cfg.Stream)
	}

	return conn, js, nil
}

// NewNATSPublisher creates a JetStream publisher for dispatch events
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (service.EventPublisher, error) {
	conn, js, err := ConnectJetStream(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &natsPublisher{
		conn:    conn,
		js:      js,
		subject: cfg.Subject,
		logger:  logger,
	}, nil
}

// PublishCampaignDispatch publishes the event, using the campaign ID as JetStream message ID
func (p *natsPublisher) PublishCampaignDispatch(ctx context.Context, event *service.CampaignDispatchEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	for key, value := range eventAttributes(event) {
		msg.Header.Set(key, value)
	}

	ack, err := p.js.PublishMsg(ctx, msg, jetstream.WithMsgID(event.CampaignID))
	if err != nil {
		return errors.Wrap(err, "failed to publish dispatch event")
	}

	p.logger.Info("[NATS] Dispatch event published",
		slog.String("campaign_id", event.CampaignID),
		slog.Uint64("sequence", ack.Sequence),
		slog.Bool("duplicate", ack.Duplicate),
	)

	return nil
}

// Close drains the connection
func (p *natsPublisher) Close() error {
	if p.conn != nil {
		return errors.WithStack(p.conn.Drain())
	}

	return nil
}

// ConsumerParams holds dependencies for the JetStream consumer, injected by Fx
type ConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDispatchConsumer creates the durable consumer dispatch workers pull events from.
// It returns nil when the nats provider is not configured.
func NewDispatchConsumer(params ConsumerParams) (jetstream.Consumer, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderNATS {
		return nil, nil //nolint:nilnil
	}

	conn, js, err := ConnectJetStream(params.Ctx, cfg.NATS)
	if err != nil {
		return nil, err
	}

	consumer, err := js.CreateOrUpdateConsumer(params.Ctx, cfg.NATS.Stream, jetstream.ConsumerConfig{
		Durable:       cfg.NATS.Durable,
		FilterSubject: cfg.NATS.Subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       consumerAckWait,
		MaxDeliver:    consumerMaxDeliver,
	})
	if err != nil {
		conn.Close()

		return nil, errors.Wrapf(err, "failed to create consumer %s", cfg.NATS.Durable)
	}

	params.Logger.Info("NATS dispatch consumer ready",
		slog.String("stream", cfg.NATS.Stream),
		slog.String("durable", cfg.NATS.Durable),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(conn.Drain())
		},
	})

	return consumer, nil
}
