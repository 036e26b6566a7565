package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"shopbot/config"
	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/repository"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"
	"shopbot/internal/nlp"
	"shopbot/internal/usecase"

	"go.uber.org/fx"
)

const defaultHistoryWindow = 10

// Keys of the metadata stored with every user turn.
const (
	metaKeywords   = "keywords"
	metaPhone      = "phone"
	metaAddress    = "address"
	metaOrderID    = "order_id"
	metaStatus     = "order_status"
	metaItemsAdded = "items_added"
)

// conversationService implements the ConversationUsecase interface.
type conversationService struct {
	txManager     repository.TransactionManager
	messageRepo   repository.MessageRepository
	orders        usecase.OrderUsecase
	matcher       usecase.CatalogMatcher
	replies       service.ReplyGenerator
	messenger     service.MessengerService
	publisher     service.EventPublisher
	historyWindow int
	locks         *keyedMutex
	logger        *slog.Logger
	now           func() time.Time
}

// ConversationServiceParams holds dependencies for the conversation service, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MessageRepo repository.MessageRepository
	Orders      usecase.OrderUsecase
	Matcher     usecase.CatalogMatcher
	Replies     service.ReplyGenerator
	Messenger   service.MessengerService
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	window := defaultHistoryWindow
	if params.Config != nil && params.Config.LLM != nil && params.Config.LLM.HistoryWindow > 0 {
		window = params.Config.LLM.HistoryWindow
	}

	return &conversationService{
		txManager:     params.TxManager,
		messageRepo:   params.MessageRepo,
		orders:        params.Orders,
		matcher:       params.Matcher,
		replies:       params.Replies,
		messenger:     params.Messenger,
		publisher:     params.Publisher,
		historyWindow: window,
		locks:         newKeyedMutex(),
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *conversationService) HandleTurn(ctx context.Context, input usecase.TurnInput) (*usecase.TurnResult, error) {
	if input.UserID == "" {
		return nil, errors.New("handle turn: user id is required")
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return &usecase.TurnResult{}, nil
	}

	logger := srv.log(ctx).With(slog.String("user_id", input.UserID))
	if input.PlatformMessageID != "" {
		logger = logger.With(slog.String("mid", input.PlatformMessageID))
	}

	// Turns of one user never overlap; LockByID covers other processes sharing the store.
	unlock := srv.locks.Lock(input.UserID)
	defer unlock()

	keywords := nlp.Normalize(text)

	applied, userMessage, err := srv.applyTurn(ctx, input, text, keywords)
	if errors.Is(err, repository.ErrDuplicateMessage) {
		logger.Info("Skipping redelivered message")

		return &usecase.TurnResult{Duplicate: true}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply turn")
	}

	if applied.BecameReady {
		srv.publishReady(ctx, logger, input.RequestID, applied.Order)
	}

	match, err := srv.matcher.MatchTurn(ctx, keywords)
	if err != nil {
		return nil, errors.Wrap(err, "failed to match catalog")
	}

	history, err := srv.history(ctx, input.UserID, userMessage)
	if err != nil {
		return nil, err
	}

	reply, err := srv.replies.GenerateReply(ctx, &service.ReplyRequest{
		Turn:        text,
		History:     history,
		Match:       match,
		Order:       applied.Order,
		BecameReady: applied.BecameReady,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reply")
	}

	result := &usecase.TurnResult{
		Reply:       reply,
		Order:       applied.Order,
		BecameReady: applied.BecameReady,
		Match:       match,
	}
	if reply == "" {
		logger.Warn("Reply generator returned an empty reply")

		return result, nil
	}

	if err := srv.messageRepo.Create(ctx, &entity.Message{
		UserID: input.UserID,
		Role:   entity.MessageRoleAssistant,
		Body:   reply,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store reply")
	}

	if err := srv.messenger.SendText(ctx, input.UserID, reply); err != nil {
		logger.Error("Failed to deliver reply", slog.String("message", reply), slog.Any("error", err))

		return result, nil
	}
	result.Delivered = true

	logger.Info("Turn handled",
		slog.String("outcome", string(match.Outcome)),
		slog.String("order_id", applied.Order.ID.String()),
		slog.String("order_status", string(applied.Order.Status)),
		slog.Int("items_added", len(applied.AddedItems)),
		slog.Bool("became_ready", applied.BecameReady),
	)

	return result, nil
}

// applyTurn stores the user turn and advances the order in one transaction.
// A redelivered platform message yields repository.ErrDuplicateMessage.
func (srv *conversationService) applyTurn(
	ctx context.Context,
	input usecase.TurnInput,
	text string,
	keywords []string,
) (*usecase.ApplyTurnOutput, *entity.Message, error) {
	var (
		applied *usecase.ApplyTurnOutput
		message *entity.Message
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()
		messageRepo := repos.NewMessageRepository()

		if err := userRepo.Create(ctx, &entity.User{ID: input.UserID}); err != nil {
			return errors.Wrap(err, "failed to register user")
		}
		user, err := userRepo.LockByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		if input.PlatformMessageID != "" {
			seen, err := messageRepo.ExistsByPlatformID(ctx, input.PlatformMessageID)
			if err != nil {
				return errors.Wrap(err, "failed to check message")
			}
			if seen {
				return repository.ErrDuplicateMessage
			}
		}

		applied, err = srv.orders.ApplyTurn(ctx, repos, usecase.ApplyTurnInput{User: user, Text: text})
		if err != nil {
			return err
		}

		message = &entity.Message{
			UserID:            input.UserID,
			Role:              entity.MessageRoleUser,
			Body:              input.Text,
			PlatformMessageID: input.PlatformMessageID,
			Metadata:          turnMetadata(keywords, applied),
		}

		return messageRepo.Create(ctx, message)
	})
	if err != nil {
		return nil, nil, err
	}

	return applied, message, nil
}

// history returns the turns before the current one, oldest first.
func (srv *conversationService) history(ctx context.Context, userID string, current *entity.Message) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.ListRecent(ctx, userID, srv.historyWindow+1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load history")
	}

	history := make([]*entity.Message, 0, len(messages))
	for _, message := range messages {
		if current != nil && message.ID == current.ID {
			continue
		}
		history = append(history, message)
	}
	if len(history) > srv.historyWindow {
		history = history[len(history)-srv.historyWindow:]
	}

	return history, nil
}

// publishReady hands the transition to the effect worker. The order is already committed,
// so a publish failure is logged and the turn continues.
func (srv *conversationService) publishReady(ctx context.Context, logger *slog.Logger, requestID string, order *entity.Order) {
	readyAt := srv.now()
	if order.ReadyAt != nil {
		readyAt = *order.ReadyAt
	}

	event := &service.OrderReadyEvent{
		RequestID: requestID,
		OrderID:   order.ID.String(),
		UserID:    order.UserID,
		Phone:     order.Phone,
		Address:   order.Address,
		Total:     order.Total(),
		ReadyAt:   readyAt,
	}
	if err := srv.publisher.PublishOrderReady(ctx, event); err != nil {
		logger.Error("Failed to publish order ready event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func turnMetadata(keywords []string, applied *usecase.ApplyTurnOutput) map[string]string {
	metadata := map[string]string{
		metaOrderID:    applied.Order.ID.String(),
		metaStatus:     string(applied.Order.Status),
		metaItemsAdded: strconv.Itoa(len(applied.AddedItems)),
	}
	if len(keywords) > 0 {
		metadata[metaKeywords] = strings.Join(keywords, " ")
	}
	if applied.Phone != "" {
		metadata[metaPhone] = applied.Phone
	}
	if applied.Address != "" {
		metadata[metaAddress] = applied.Address
	}

	return metadata
}
