package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/repository"
	"shopbot/internal/domain/service"
	"shopbot/internal/infra/llm"
	"shopbot/internal/infra/persistence/postgres"
	mockRepo "shopbot/internal/mocks/repository"
	mockSvc "shopbot/internal/mocks/service"
	mockUsecase "shopbot/internal/mocks/usecase"
	"shopbot/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type conversationFixture struct {
	db        *gorm.DB
	service   usecase.ConversationUsecase
	messenger *mockSvc.MockMessengerService
	publisher *mockSvc.MockEventPublisher
	replies   *mockSvc.MockReplyGenerator

	mu       sync.Mutex
	requests []*service.ReplyRequest
}

func newConversationFixture(t *testing.T, seed bool) *conversationFixture {
	t.Helper()

	db := newTestDB(t)
	if seed {
		seedCatalog(t, postgres.NewCatalogRepository(db))
	}
	cfg := newTestConfig()
	logger := newDiscardLogger()

	f := &conversationFixture{
		db:        db,
		messenger: mockSvc.NewMockMessengerService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		replies:   mockSvc.NewMockReplyGenerator(t),
	}
	f.replies.EXPECT().GenerateReply(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *service.ReplyRequest) (string, error) {
			f.mu.Lock()
			f.requests = append(f.requests, req)
			f.mu.Unlock()

			return llm.StaticReply(req), nil
		}).
		Maybe()

	orderRepo := postgres.NewOrderRepository(db)
	f.service = NewConversationService(ConversationServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		MessageRepo: postgres.NewMessageRepository(db),
		Orders: NewOrderService(OrderServiceParams{
			OrderRepo: orderRepo,
			Config:    cfg,
			Logger:    logger,
		}),
		Matcher: NewCatalogMatcher(CatalogMatcherParams{
			CatalogRepo: postgres.NewCatalogRepository(db),
			Config:      cfg,
			Logger:      logger,
		}),
		Replies:   f.replies,
		Messenger: f.messenger,
		Publisher: f.publisher,
		Config:    cfg,
		Logger:    logger,
	})

	return f
}

func (f *conversationFixture) handle(t *testing.T, mid, text string) *usecase.TurnResult {
	t.Helper()

	result, err := f.service.HandleTurn(context.Background(), usecase.TurnInput{
		UserID:            "psid-1",
		Text:              text,
		PlatformMessageID: mid,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	return result
}

func (f *conversationFixture) lastRequest(t *testing.T) *service.ReplyRequest {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)

	return f.requests[len(f.requests)-1]
}

func TestConversationService_HandleTurn_OrderBecomesReadyOnThirdTurn(t *testing.T) {
	f := newConversationFixture(t, true)

	f.messenger.EXPECT().SendText(mock.Anything, "psid-1", mock.Anything).Return(nil).Times(3)
	f.publisher.EXPECT().
		PublishOrderReady(mock.Anything, mock.MatchedBy(func(event *service.OrderReadyEvent) bool {
			return event.UserID == "psid-1" &&
				event.Phone == "99110022" &&
				event.Address == "Сүхбаатар дүүрэг 1-р хороо" &&
				event.Total == 39900 &&
				!event.ReadyAt.IsZero()
		})).
		Return(nil).
		Once()

	first := f.handle(t, "m-1", "9911 0022")
	assert.False(t, first.BecameReady)
	assert.True(t, first.Delivered)
	assert.Equal(t, "99110022", first.Order.Phone)

	second := f.handle(t, "m-2", "хаяг: Сүхбаатар дүүрэг 1-р хороо")
	assert.False(t, second.BecameReady)
	assert.Equal(t, first.Order.ID, second.Order.ID)

	third := f.handle(t, "m-3", "Машины татлага олс авъя")
	assert.True(t, third.BecameReady)
	assert.Equal(t, entity.OrderStatusReady, third.Order.Status)
	require.Len(t, third.Order.Items, 1)
	assert.Equal(t, 1, third.Order.Items[0].Quantity)
	assert.Equal(t, llm.ConfirmedReply, third.Reply)
	assert.Equal(t, entity.MatchOutcomeMatched, third.Match.Outcome)

	// History holds the earlier turns and replies, oldest first, without the current turn.
	req := f.lastRequest(t)
	require.Len(t, req.History, 4)
	assert.Equal(t, "9911 0022", req.History[0].Body)
	assert.Equal(t, entity.MessageRoleUser, req.History[0].Role)
	assert.Equal(t, entity.MessageRoleAssistant, req.History[3].Role)
	assert.True(t, req.BecameReady)
}

func TestConversationService_HandleTurn_RedeliveryIsIgnored(t *testing.T) {
	f := newConversationFixture(t, true)

	f.messenger.EXPECT().SendText(mock.Anything, "psid-1", mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishOrderReady(mock.Anything, mock.Anything).Return(nil).Once()

	first := f.handle(t, "m-1", "Машины татлага олс авъя, утас 99110022, хаяг: Баянгол дүүрэг 3-р хороо")
	require.True(t, first.BecameReady)

	again := f.handle(t, "m-1", "Машины татлага олс авъя, утас 99110022, хаяг: Баянгол дүүрэг 3-р хороо")
	assert.True(t, again.Duplicate)
	assert.Empty(t, again.Reply)

	messages, err := postgres.NewMessageRepository(f.db).ListRecent(context.Background(), "psid-1", 10)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "m-1", messages[0].PlatformMessageID)
	assert.Equal(t, "99110022", messages[0].Metadata[metaPhone])
	assert.Equal(t, "Баянгол дүүрэг 3-р хороо", messages[0].Metadata[metaAddress])
	assert.Equal(t, "1", messages[0].Metadata[metaItemsAdded])
	assert.Equal(t, string(entity.OrderStatusReady), messages[0].Metadata[metaStatus])
}

func TestConversationService_HandleTurn_CatalogOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		seed        bool
		text        string
		wantOutcome entity.MatchOutcome
		wantReply   string
	}{
		{
			name:        "out of stock product offers alternatives",
			seed:        true,
			text:        "zalguur bna uu",
			wantOutcome: entity.MatchOutcomeAlternatives,
			wantReply:   llm.AlternativesIntro,
		},
		{
			name:        "empty catalog",
			seed:        false,
			text:        "олс байна уу",
			wantOutcome: entity.MatchOutcomeEmptyCatalog,
			wantReply:   llm.EmptyCatalogReply,
		},
		{
			name:        "greeting",
			seed:        true,
			text:        "Сайн байна уу",
			wantOutcome: entity.MatchOutcomeBrowse,
			wantReply:   llm.GreetingReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newConversationFixture(t, tt.seed)
			f.messenger.EXPECT().SendText(mock.Anything, "psid-1", mock.Anything).Return(nil).Once()

			result := f.handle(t, "m-1", tt.text)
			assert.Equal(t, tt.wantOutcome, result.Match.Outcome)
			assert.Contains(t, result.Reply, tt.wantReply)
		})
	}
}

func TestConversationService_HandleTurn_DeliveryFailureIsSwallowed(t *testing.T) {
	f := newConversationFixture(t, true)

	f.messenger.EXPECT().SendText(mock.Anything, "psid-1", mock.Anything).Return(errors.New("graph api: (#10) outside allowed window"))

	result := f.handle(t, "m-1", "Искра озон аппарат байна уу")
	assert.False(t, result.Delivered)
	assert.NotEmpty(t, result.Reply)
}

func TestConversationService_HandleTurn_SameUserTurnsAreSerialized(t *testing.T) {
	f := newConversationFixture(t, true)
	f.messenger.EXPECT().SendText(mock.Anything, "psid-1", mock.Anything).Return(nil)

	const turns = 8
	var wg sync.WaitGroup
	errs := make(chan error, turns)
	for i := range turns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.HandleTurn(context.Background(), usecase.TurnInput{
				UserID:            "psid-1",
				Text:              "искра озон аппарат",
				PlatformMessageID: fmt.Sprintf("m-%d", i),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	orders, err := postgres.NewOrderRepository(f.db).List(context.Background(), repository.OrderFilter{UserID: "psid-1"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, turns)
	assert.Equal(t, entity.OrderStatusPending, orders[0].Status)
	assert.Zero(t, f.service.(*conversationService).locks.size())
}

func TestConversationService_HandleTurn_StoreFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	messenger := mockSvc.NewMockMessengerService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	dbErr := errors.New("connection refused")

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(dbErr)

	srv := NewConversationService(ConversationServiceParams{
		TxManager:   txManager,
		MessageRepo: mockRepo.NewMockMessageRepository(t),
		Orders:      mockUsecase.NewMockOrderUsecase(t),
		Matcher:     mockUsecase.NewMockCatalogMatcher(t),
		Replies:     mockSvc.NewMockReplyGenerator(t),
		Messenger:   messenger,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	result, err := srv.HandleTurn(context.Background(), usecase.TurnInput{UserID: "psid-1", Text: "99110022"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}

func TestConversationService_HandleTurn_PublishFailureKeepsTurn(t *testing.T) {
	f := newConversationFixture(t, true)

	f.messenger.EXPECT().SendText(mock.Anything, "psid-1", mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishOrderReady(mock.Anything, mock.Anything).Return(errors.New("publisher is closed"))

	result := f.handle(t, "m-1", "Машины татлага олс авъя, утас 99110022, хаяг: Баянгол дүүрэг 3-р хороо")
	assert.True(t, result.BecameReady)
	assert.True(t, result.Delivered)

	order, err := postgres.NewOrderRepository(f.db).FindByID(context.Background(), result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, order.Status)
}

func TestConversationService_HandleTurn_Validation(t *testing.T) {
	f := newConversationFixture(t, true)

	_, err := f.service.HandleTurn(context.Background(), usecase.TurnInput{Text: "сайн уу"})
	assert.Error(t, err)

	result, err := f.service.HandleTurn(context.Background(), usecase.TurnInput{UserID: "psid-1", Text: "   "})
	require.NoError(t, err)
	assert.Empty(t, result.Reply)
}
