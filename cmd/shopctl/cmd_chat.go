package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"shopbot/internal/infra/llm"
	"shopbot/internal/infra/messenger"
	"shopbot/internal/infra/notification"
	"shopbot/internal/infra/persistence/postgres"
	"shopbot/internal/infra/pubsub"
	"shopbot/internal/usecase"
	"shopbot/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var chatUserID string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Play customer turns from stdin through the full pipeline",
	Long: `Each input line is handled as one Messenger turn from --user.
Replies and account labels are printed instead of sent, and order effects run in-process.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatUserID, "user", "u", "local-user", "sender id of the turns")
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env, err := openEnvironment(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	out := cmd.OutOrStdout()
	console := messenger.NewConsoleMessenger(out)

	replies, err := llm.NewReplyGenerator(llm.Params{Ctx: ctx, Config: env.cfg, Logger: env.logger})
	if err != nil {
		return err
	}
	notifier, err := notification.NewNotificationService(notification.Params{Ctx: ctx, Config: env.cfg, Logger: env.logger})
	if err != nil {
		return err
	}

	orderRepo := postgres.NewOrderRepository(env.db)
	catalogRepo := postgres.NewCatalogRepository(env.db)

	dispatcher := impl.NewEffectDispatcher(impl.EffectDispatcherParams{
		OrderRepo: orderRepo,
		Messenger: console,
		Notifier:  notifier,
		Config:    env.cfg,
		Logger:    env.logger,
	})
	publisher := pubsub.NewInlinePublisher(dispatcher, 0, env.logger)
	defer publisher.Close()

	orders := impl.NewOrderService(impl.OrderServiceParams{OrderRepo: orderRepo, Config: env.cfg, Logger: env.logger})
	matcher := impl.NewCatalogMatcher(impl.CatalogMatcherParams{CatalogRepo: catalogRepo, Config: env.cfg, Logger: env.logger})
	conversation := impl.NewConversationService(impl.ConversationServiceParams{
		TxManager:   postgres.NewTransactionManager(env.db),
		MessageRepo: postgres.NewMessageRepository(env.db),
		Orders:      orders,
		Matcher:     matcher,
		Replies:     replies,
		Messenger:   console,
		Publisher:   publisher,
		Config:      env.cfg,
		Logger:      env.logger,
	})

	return chatLoop(cmd, conversation, cmd.InOrStdin(), out)
}

func chatLoop(cmd *cobra.Command, conversation usecase.ConversationUsecase, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "[%s] > ", chatUserID)
		if !scanner.Scan() {
			fmt.Fprintln(out)

			return scanner.Err()
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		result, err := conversation.HandleTurn(cmd.Context(), usecase.TurnInput{
			UserID:            chatUserID,
			Text:              text,
			PlatformMessageID: "local-" + uuid.NewString(),
			RequestID:         uuid.NewString(),
		})
		if err != nil {
			return err
		}
		if result.Order != nil {
			fmt.Fprintf(out, "[order %s] status=%s items=%d total=%d₮ phone=%q address=%q\n",
				result.Order.ID, result.Order.Status, len(result.Order.Items), result.Order.Total(),
				result.Order.Phone, result.Order.Address)
		}
	}
}
