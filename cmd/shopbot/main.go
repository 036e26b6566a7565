package main

import (
	"context"
	"log/slog"
	"os"

	"shopbot/config"
	"shopbot/internal/delivery"
	"shopbot/internal/delivery/api"
	"shopbot/internal/delivery/api/middleware"
	"shopbot/internal/delivery/api/router/handler"
	"shopbot/internal/domain/constants"
	"shopbot/internal/domain/service"
	"shopbot/internal/infra/auth"
	logs "shopbot/internal/infra/log"
	"shopbot/internal/infra/llm"
	"shopbot/internal/infra/messenger"
	"shopbot/internal/infra/notification"
	"shopbot/internal/infra/persistence/postgres"
	"shopbot/internal/infra/pubsub"
	"shopbot/internal/infra/qrcode"
	"shopbot/internal/usecase"
	"shopbot/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrate,
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
			postgres.NewUserRepository,
			postgres.NewMessageRepository,
			postgres.NewOrderRepository,
			postgres.NewCatalogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newTokenService,
			notification.NewNotificationService,
			newQRCodeService,
			llm.NewReplyGenerator,
			newMessengerService,
			// The inline publisher hands events to the dispatcher in-process.
			func(dispatcher usecase.EffectDispatcher) pubsub.EventHandler { return dispatcher },
		),
		pubsub.Module,
	)
}

// newTokenService leaves the admin API disabled when the admin section is absent.
func newTokenService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg.Admin == nil {
		logger.Warn("Admin section not configured, operator API is disabled")

		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newMessengerService prints outbound messages in develop when no page token is set.
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
			impl.NewCatalogMatcher,
			impl.NewOrderService,
			impl.NewEffectDispatcher,
			impl.NewConversationService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewSignatureMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWebhookHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrate applies the schema on start when env.autoMigrate is set.
func migrate(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB) {
	if !cfg.Env.AutoMigrate {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return postgres.Migrate(ctx, db)
		},
	})
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
