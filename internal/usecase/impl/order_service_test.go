package impl

import (
	"context"
	"testing"

	"shopbot/internal/domain/entity"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/repository"
	"shopbot/internal/infra/persistence/postgres"
	mockRepo "shopbot/internal/mocks/repository"
	"shopbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	service   usecase.OrderUsecase
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	db := newTestDB(t)
	seedCatalog(t, postgres.NewCatalogRepository(db))
	orderRepo := postgres.NewOrderRepository(db)

	return &orderFixture{
		txManager: postgres.NewTransactionManager(db),
		orderRepo: orderRepo,
		userRepo:  postgres.NewUserRepository(db),
		service: NewOrderService(OrderServiceParams{
			OrderRepo: orderRepo,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
	}
}

// turn applies one message the way the conversation service does: register, lock, apply.
func (f *orderFixture) turn(t *testing.T, userID, text string) *usecase.ApplyTurnOutput {
	t.Helper()

	ctx := context.Background()
	var out *usecase.ApplyTurnOutput
	err := f.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.NewUserRepository()
		if err := userRepo.Create(ctx, &entity.User{ID: userID}); err != nil {
			return err
		}
		user, err := userRepo.LockByID(ctx, userID)
		if err != nil {
			return err
		}

		out, err = f.service.ApplyTurn(ctx, repos, usecase.ApplyTurnInput{User: user, Text: text})

		return err
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	return out
}

func TestOrderService_ApplyTurn_PhoneThenAddressThenProduct(t *testing.T) {
	f := newOrderFixture(t)

	first := f.turn(t, "psid-1", "99110022")
	assert.True(t, first.Created)
	assert.False(t, first.BecameReady)
	assert.Equal(t, "99110022", first.Phone)
	assert.Equal(t, entity.OrderStatusPending, first.Order.Status)
	assert.Equal(t, "99110022", first.Order.Provenance)

	second := f.turn(t, "psid-1", "хаяг: Сүхбаатар дүүрэг 1-р хороо")
	assert.False(t, second.Created)
	assert.False(t, second.BecameReady)
	assert.Equal(t, first.Order.ID, second.Order.ID)
	assert.Equal(t, "Сүхбаатар дүүрэг 1-р хороо", second.Order.Address)
	assert.Equal(t, entity.OrderStatusPending, second.Order.Status)

	third := f.turn(t, "psid-1", "Машины татлага олс авъя")
	assert.True(t, third.BecameReady)
	assert.Equal(t, first.Order.ID, third.Order.ID)
	assert.Equal(t, entity.OrderStatusReady, third.Order.Status)
	require.NotNil(t, third.Order.ReadyAt)
	require.Len(t, third.Order.Items, 1)
	assert.Equal(t, "Машины татлага олс", third.Order.Items[0].Name)
	assert.Equal(t, 1, third.Order.Items[0].Quantity)
	assert.Equal(t, int64(39900), third.Order.Total())
}

func TestOrderService_ApplyTurn_SignalsInAnyOrder(t *testing.T) {
	const (
		phone   = "99110022"
		address = "хаяг: Сүхбаатар дүүрэг 1-р хороо"
		item    = "Машины татлага олс авъя"
	)

	tests := []struct {
		name  string
		turns []string
	}{
		{name: "item phone address", turns: []string{item, phone, address}},
		{name: "item address phone", turns: []string{item, address, phone}},
		{name: "address item phone", turns: []string{address, item, phone}},
		{name: "address phone item", turns: []string{address, phone, item}},
		{name: "phone item address", turns: []string{phone, item, address}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)

			var orderID uuid.UUID
			for i, text := range tt.turns {
				out := f.turn(t, "psid-1", text)
				if i == 0 {
					orderID = out.Order.ID
				}
				assert.Equal(t, orderID, out.Order.ID, "turn %d", i+1)

				last := i == len(tt.turns)-1
				assert.Equal(t, last, out.BecameReady, "turn %d", i+1)
				if last {
					assert.Equal(t, entity.OrderStatusReady, out.Order.Status)
					assert.Equal(t, "99110022", out.Order.Phone)
					assert.Equal(t, "Сүхбаатар дүүрэг 1-р хороо", out.Order.Address)
					require.Len(t, out.Order.Items, 1)
				} else {
					assert.Equal(t, entity.OrderStatusPending, out.Order.Status)
				}
			}

			after := f.turn(t, "psid-1", "Баярлалаа")
			assert.False(t, after.BecameReady)
			assert.NotEqual(t, orderID, after.Order.ID)
			assert.Equal(t, entity.OrderStatusPending, after.Order.Status)

			ready, err := f.orderRepo.FindByID(context.Background(), orderID)
			require.NoError(t, err)
			assert.Equal(t, entity.OrderStatusReady, ready.Status)
			assert.Len(t, ready.Items, 1)
		})
	}
}

func TestOrderService_ApplyTurn_FirstWriteWins(t *testing.T) {
	f := newOrderFixture(t)

	f.turn(t, "psid-1", "99110022")
	out := f.turn(t, "psid-1", "Миний утас 88112233 болсон")

	assert.Equal(t, "88112233", out.Phone)
	assert.Equal(t, "99110022", out.Order.Phone)

	user, err := f.userRepo.FindByID(context.Background(), "psid-1")
	require.NoError(t, err)
	assert.Equal(t, "99110022", user.Phone)
}

func TestOrderService_ApplyTurn_ReadyOnlyOnce(t *testing.T) {
	f := newOrderFixture(t)

	ready := f.turn(t, "psid-1", "Машины татлага олс авъя, утас 99110022, хаяг: Баянгол дүүрэг 3-р хороо")
	require.True(t, ready.BecameReady)
	assert.Equal(t, "Баянгол дүүрэг 3-р хороо", ready.Order.Address)

	// The next turn opens a fresh order prefilled from the user's defaults.
	next := f.turn(t, "psid-1", "Машины татлага олс дахиад авъя")
	assert.True(t, next.Created)
	assert.NotEqual(t, ready.Order.ID, next.Order.ID)
	assert.True(t, next.BecameReady)
	assert.Equal(t, "99110022", next.Order.Phone)
	assert.Equal(t, "Баянгол дүүрэг 3-р хороо", next.Order.Address)

	again := f.turn(t, "psid-1", "баярлалаа")
	assert.True(t, again.Created)
	assert.False(t, again.BecameReady)
	assert.Equal(t, entity.OrderStatusPending, again.Order.Status)

	first, err := f.orderRepo.FindByID(context.Background(), ready.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, first.Status)
	assert.Len(t, first.Items, 1)
}

func TestOrderService_ApplyTurn_Items(t *testing.T) {
	tests := []struct {
		name       string
		turns      []string
		wantItems  []string
		wantCounts []int
	}{
		{
			name:       "quantity next to the name",
			turns:      []string{"Искра озон аппарат 2ш авна"},
			wantItems:  []string{"Искра озон аппарат"},
			wantCounts: []int{2},
		},
		{
			name:       "repeated mentions add rows",
			turns:      []string{"Искра озон аппарат 2ш авна", "искра озон аппарат 1ш"},
			wantItems:  []string{"Искра озон аппарат", "Искра озон аппарат"},
			wantCounts: []int{2, 1},
		},
		{
			name:       "out of stock products are not attached",
			turns:      []string{"Ухаалаг залгуур авъя"},
			wantItems:  []string{},
			wantCounts: []int{},
		},
		{
			name:       "no product named",
			turns:      []string{"сайн байна уу"},
			wantItems:  []string{},
			wantCounts: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)

			var out *usecase.ApplyTurnOutput
			for _, text := range tt.turns {
				out = f.turn(t, "psid-1", text)
			}

			gotItems := []string{}
			gotCounts := []int{}
			for _, item := range out.Order.Items {
				gotItems = append(gotItems, item.Name)
				gotCounts = append(gotCounts, item.Quantity)
			}
			assert.Equal(t, tt.wantItems, gotItems)
			assert.Equal(t, tt.wantCounts, gotCounts)
			assert.Equal(t, int64(len(tt.wantItems)), out.ItemCount)
			assert.False(t, out.BecameReady)
		})
	}
}

func TestOrderService_ApplyTurn_StoreFailure(t *testing.T) {
	ctx := context.Background()
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	factory.EXPECT().NewUserRepository().Return(userRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)
	factory.EXPECT().NewCatalogRepository().Return(catalogRepo)

	userRepo.EXPECT().FillContactDefaults(ctx, "psid-1", "99110022", "").Return(nil)
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find pending order")
	orderRepo.EXPECT().FindActivePending(ctx, "psid-1").Return(nil, dbErr)

	service := NewOrderService(OrderServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})
	out, err := service.ApplyTurn(ctx, factory, usecase.ApplyTurnInput{
		User: &entity.User{ID: "psid-1"},
		Text: "99110022",
	})

	assert.Nil(t, out)
	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_ApplyTurn_RequiresUser(t *testing.T) {
	service := NewOrderService(OrderServiceParams{Logger: newDiscardLogger()})

	_, err := service.ApplyTurn(context.Background(), mockRepo.NewMockRepositoryFactory(t), usecase.ApplyTurnInput{Text: "сайн уу"})
	assert.Error(t, err)
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(OrderServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

	known := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusReady}
	orderRepo.EXPECT().FindByID(ctx, known.ID).Return(known, nil)
	missing := uuid.New()
	orderRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrOrderNotFound)

	got, err := service.GetOrder(ctx, known.ID)
	require.NoError(t, err)
	assert.Same(t, known, got)

	_, err = service.GetOrder(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewOrderService(OrderServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

	orderRepo.EXPECT().
		List(ctx, repository.OrderFilter{Status: entity.OrderStatusReady, Limit: 20, Offset: 40}).
		Return([]*entity.Order{{ID: uuid.New()}}, nil)

	orders, err := service.ListOrders(ctx, usecase.ListOrdersInput{Status: entity.OrderStatusReady, Limit: 20, Offset: 40})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
