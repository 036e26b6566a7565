package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shopbot/config"
	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/repository"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"
	"shopbot/internal/nlp"
	"shopbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	inCityPaymentTemplate = "Таны захиалга бүртгэгдлээ. Нийт дүн: %d₮. Төлбөрөө бараагаа хүлээн авахдаа хүргэлтийн ажилтанд төлнө үү."
	remotePaymentTemplate = "Таны захиалга бүртгэгдлээ. Нийт дүн: %d₮. Орон нутгийн захиалгын төлбөрийг урьдчилан %s дансанд шилжүүлнэ үү. Гүйлгээний утга: %s"
	alertTitle            = "Шинэ захиалга"
)

// effectDispatcher implements the EffectDispatcher interface.
type effectDispatcher struct {
	orderRepo repository.OrderRepository
	messenger service.MessengerService
	notifier  service.NotificationService
	effects   config.EffectsConfig
	regions   nlp.RegionKeywords
	logger    *slog.Logger
	now       func() time.Time
}

// EffectDispatcherParams holds dependencies for the effect dispatcher, injected by Fx.
type EffectDispatcherParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Messenger service.MessengerService
	Notifier  service.NotificationService `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewEffectDispatcher is the constructor for effectDispatcher.
func NewEffectDispatcher(params EffectDispatcherParams) usecase.EffectDispatcher {
	var effects config.EffectsConfig
	if params.Config != nil && params.Config.Effects != nil {
		effects = *params.Config.Effects
	}

	return &effectDispatcher{
		orderRepo: params.OrderRepo,
		messenger: params.Messenger,
		notifier:  params.Notifier,
		effects:   effects,
		regions:   nlp.DefaultRegionKeywords.WithOverrides(effects.RemoteKeywords, effects.CityKeywords),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (d *effectDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

func (d *effectDispatcher) Dispatch(ctx context.Context, event *service.OrderReadyEvent) error {
	if event == nil {
		return errors.New("dispatch: event is required")
	}
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return errors.Wrapf(err, "dispatch: invalid order id %q", event.OrderID)
	}

	logger := d.log(ctx).With(
		slog.String("order_id", event.OrderID),
		slog.String("recipient", event.UserID),
	)
	if event.RequestID != "" {
		logger = logger.With(slog.String("request_id", event.RequestID))
	}

	claimed, err := d.orderRepo.ClaimEffects(ctx, orderID, d.now())
	if err != nil {
		return errors.Wrap(err, "failed to claim order effects")
	}
	if !claimed {
		logger.Info("Order effects already dispatched, skipping")

		return nil
	}

	if len(d.effects.Labels) > 0 {
		if err := d.messenger.TagAccount(ctx, event.UserID, d.effects.Labels); err != nil {
			logger.Error("Failed to tag account",
				slog.Any("labels", d.effects.Labels),
				slog.Any("error", err),
			)
		}
	}

	zone := nlp.ClassifyAddress(event.Address, d.regions)
	message := d.paymentMessage(zone, event)
	if err := d.messenger.SendText(ctx, event.UserID, message); err != nil {
		logger.Error("Failed to send payment instructions",
			slog.String("zone", string(zone)),
			slog.String("message", message),
			slog.Any("error", err),
		)
	}

	d.alertOperators(ctx, logger, event, zone)

	logger.Info("Order effects dispatched", slog.String("zone", string(zone)))

	return nil
}

func (d *effectDispatcher) paymentMessage(zone nlp.DeliveryZone, event *service.OrderReadyEvent) string {
	if zone != nlp.ZoneRemote {
		return fmt.Sprintf(inCityPaymentTemplate, event.Total)
	}

	return fmt.Sprintf(remotePaymentTemplate, event.Total, d.accountReference(), event.Phone)
}

// accountReference renders "Bank 1234 (Holder)" from whatever parts are configured.
func (d *effectDispatcher) accountReference() string {
	parts := make([]string, 0, 3)
	if d.effects.BankName != "" {
		parts = append(parts, d.effects.BankName)
	}
	if d.effects.AccountNumber != "" {
		parts = append(parts, d.effects.AccountNumber)
	}
	if d.effects.AccountHolder != "" {
		parts = append(parts, "("+d.effects.AccountHolder+")")
	}
	if len(parts) == 0 {
		return "манай"
	}

	return strings.Join(parts, " ")
}

func (d *effectDispatcher) alertOperators(ctx context.Context, logger *slog.Logger, event *service.OrderReadyEvent, zone nlp.DeliveryZone) {
	if d.notifier == nil || d.effects.AlertTopic == "" {
		return
	}

	body := fmt.Sprintf("%s, %s, %d₮", event.Phone, event.Address, event.Total)
	data := map[string]string{
		"order_id": event.OrderID,
		"user_id":  event.UserID,
		"zone":     string(zone),
	}
	if err := d.notifier.SendTopicNotification(ctx, d.effects.AlertTopic, alertTitle, body, data); err != nil {
		logger.Error("Failed to alert operators",
			slog.String("topic", d.effects.AlertTopic),
			slog.Any("error", err),
		)
	}
}
