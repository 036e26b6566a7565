package notification

import (
	"context"
	"log/slog"

	"shopbot/config"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendTopicNotification pushes to every operator device subscribed to the topic.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	return nil
}

// logNotifier stands in for Firebase when no credentials are configured.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) SendTopicNotification(ctx context.Context, topic, title, body string, _ map[string]string) error {
	n.logger.InfoContext(ctx, "[Notification] Firebase disabled, alert logged only",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
	)

	return nil
}

// Params holds dependencies for the notification provider.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService picks Firebase when credentials are configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, operator alerts are logged only")

		return &logNotifier{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}
