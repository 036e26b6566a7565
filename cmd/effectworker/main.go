package main

import (
	"context"
	"log/slog"
	"os"

	"shopbot/config"
	"shopbot/internal/delivery"
	"shopbot/internal/delivery/worker"
	"shopbot/internal/delivery/worker/handler"
	"shopbot/internal/domain/constants"
	"shopbot/internal/domain/service"
	logs "shopbot/internal/infra/log"
	"shopbot/internal/infra/messenger"
	"shopbot/internal/infra/notification"
	"shopbot/internal/infra/persistence/postgres"
	"shopbot/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewNotificationService,
			newMessengerService,
		),
	)
}

func newMessengerService(cfg *config.Config, logger *slog.Logger) (service.MessengerService, error) {
	if cfg.Messenger.PageAccessToken == "" && cfg.Env.Env == constants.EnvDevelop {
		logger.Warn("Messenger page token not configured, printing outbound messages")

		return messenger.NewConsoleMessenger(os.Stdout), nil
	}

	return messenger.NewGraphClient(cfg.Messenger, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEffectDispatcher,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
