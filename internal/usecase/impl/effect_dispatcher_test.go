package impl

import (
	"context"
	"testing"
	"time"

	"shopbot/internal/domain/service"
	mockRepo "shopbot/internal/mocks/repository"
	mockSvc "shopbot/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type effectFixture struct {
	dispatcher *effectDispatcher
	orderRepo  *mockRepo.MockOrderRepository
	messenger  *mockSvc.MockMessengerService
	notifier   *mockSvc.MockNotificationService
}

func newEffectFixture(t *testing.T, alertTopic string) *effectFixture {
	t.Helper()

	cfg := newTestConfig()
	cfg.Effects.AlertTopic = alertTopic

	f := &effectFixture{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		messenger: mockSvc.NewMockMessengerService(t),
		notifier:  mockSvc.NewMockNotificationService(t),
	}
	f.dispatcher = NewEffectDispatcher(EffectDispatcherParams{
		OrderRepo: f.orderRepo,
		Messenger: f.messenger,
		Notifier:  f.notifier,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*effectDispatcher)
	f.dispatcher.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	return f
}

func newReadyEvent(address string) *service.OrderReadyEvent {
	return &service.OrderReadyEvent{
		OrderID: uuid.NewString(),
		UserID:  "psid-1",
		Phone:   "99110022",
		Address: address,
		Total:   91900,
	}
}

func TestEffectDispatcher_Dispatch_PaymentInstructions(t *testing.T) {
	tests := []struct {
		name        string
		address     string
		wantContain []string
		wantMissing []string
	}{
		{
			name:        "in-city pays on delivery",
			address:     "Сүхбаатар дүүрэг 1-р хороо",
			wantContain: []string{"91900₮", "хүлээн авахдаа"},
			wantMissing: []string{"5000123456"},
		},
		{
			name:        "remote prepays with the phone as memo",
			address:     "Дархан-Уул аймаг, Дархан сум",
			wantContain: []string{"91900₮", "Хаан банк 5000123456 (Дэлгүүр ХХК)", "Гүйлгээний утга: 99110022"},
		},
		{
			name:        "city marker wins over region marker",
			address:     "Улаанбаатар, Налайх дүүрэг",
			wantContain: []string{"хүлээн авахдаа"},
			wantMissing: []string{"Гүйлгээний утга"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEffectFixture(t, "")
			ctx := context.Background()
			event := newReadyEvent(tt.address)
			orderID := uuid.MustParse(event.OrderID)

			f.orderRepo.EXPECT().ClaimEffects(ctx, orderID, mock.Anything).Return(true, nil)
			f.messenger.EXPECT().TagAccount(ctx, "psid-1", []string{"Захиалга", "Төлбөр хүлээгдэж буй"}).Return(nil)

			var sent string
			f.messenger.EXPECT().SendText(ctx, "psid-1", mock.Anything).
				Run(func(_ context.Context, _ string, text string) { sent = text }).
				Return(nil)

			require.NoError(t, f.dispatcher.Dispatch(ctx, event))
			for _, want := range tt.wantContain {
				assert.Contains(t, sent, want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, sent, missing)
			}
		})
	}
}

func TestEffectDispatcher_Dispatch_OncePerOrder(t *testing.T) {
	f := newEffectFixture(t, "")
	ctx := context.Background()
	event := newReadyEvent("Баянгол дүүрэг 3-р хороо")
	orderID := uuid.MustParse(event.OrderID)

	f.orderRepo.EXPECT().ClaimEffects(ctx, orderID, mock.Anything).Return(true, nil).Once()
	f.orderRepo.EXPECT().ClaimEffects(ctx, orderID, mock.Anything).Return(false, nil).Once()
	f.messenger.EXPECT().TagAccount(ctx, "psid-1", mock.Anything).Return(nil).Once()
	f.messenger.EXPECT().SendText(ctx, "psid-1", mock.Anything).Return(nil).Once()

	require.NoError(t, f.dispatcher.Dispatch(ctx, event))
	require.NoError(t, f.dispatcher.Dispatch(ctx, event))
}

func TestEffectDispatcher_Dispatch_NotificationFailuresAreSwallowed(t *testing.T) {
	f := newEffectFixture(t, "orders")
	ctx := context.Background()
	event := newReadyEvent("Баянгол дүүрэг 3-р хороо")

	f.orderRepo.EXPECT().ClaimEffects(ctx, mock.Anything, mock.Anything).Return(true, nil)
	f.messenger.EXPECT().TagAccount(ctx, "psid-1", mock.Anything).Return(errors.New("label limit reached"))
	f.messenger.EXPECT().SendText(ctx, "psid-1", mock.Anything).Return(errors.New("user blocked the page"))
	f.notifier.EXPECT().
		SendTopicNotification(ctx, "orders", alertTitle, mock.Anything, map[string]string{
			"order_id": event.OrderID,
			"user_id":  "psid-1",
			"zone":     "in_city",
		}).
		Return(errors.New("fcm unavailable"))

	assert.NoError(t, f.dispatcher.Dispatch(ctx, event))
}

func TestEffectDispatcher_Dispatch_ClaimFailure(t *testing.T) {
	f := newEffectFixture(t, "")
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	f.orderRepo.EXPECT().ClaimEffects(ctx, mock.Anything, mock.Anything).Return(false, dbErr)

	err := f.dispatcher.Dispatch(ctx, newReadyEvent("Баянгол дүүрэг"))
	assert.ErrorIs(t, err, dbErr)
	f.messenger.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
}

func TestEffectDispatcher_Dispatch_InvalidEvent(t *testing.T) {
	f := newEffectFixture(t, "")

	assert.Error(t, f.dispatcher.Dispatch(context.Background(), nil))
	assert.Error(t, f.dispatcher.Dispatch(context.Background(), &service.OrderReadyEvent{OrderID: "not-a-uuid"}))
}

func TestEffectDispatcher_AccountReference(t *testing.T) {
	f := newEffectFixture(t, "")
	f.dispatcher.effects.BankName = ""
	f.dispatcher.effects.AccountHolder = ""
	assert.Equal(t, "5000123456", f.dispatcher.accountReference())

	f.dispatcher.effects.AccountNumber = ""
	assert.Equal(t, "манай", f.dispatcher.accountReference())
}
