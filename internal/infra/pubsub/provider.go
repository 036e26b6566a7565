package pubsub

import (
	"context"
	"log/slog"

	"shopbot/config"
	"shopbot/internal/domain/constants"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"

	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	// Required by the inline provider only.
	Handler EventHandler `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration.
// Without a pubsub section the effects run inline in the webhook process.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := constants.PubSubProviderInline
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var publisher service.EventPublisher
	var err error

	switch provider {
	case constants.PubSubProviderInline:
		if params.Handler == nil {
			return nil, errors.New("inline provider requires an event handler")
		}
		queueSize := 0
		if cfg != nil {
			queueSize = cfg.QueueSize
		}
		logger.Info("Using inline publisher for order effects", slog.Int("queue_size", queueSize))

		publisher = NewInlinePublisher(params.Handler, queueSize, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
