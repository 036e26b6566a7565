package impl

import (
	"context"
	"log/slog"
	"time"

	"shopbot/config"
	deliverycontext "shopbot/internal/delivery/context"
	"shopbot/internal/domain/entity"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/repository"
	"shopbot/internal/errors"
	"shopbot/internal/nlp"
	"shopbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo      repository.OrderRepository
	quantityWindow int
	logger         *slog.Logger
	now            func() time.Time
}

// OrderServiceParams holds dependencies for the order service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	window := nlp.DefaultQuantityWindow
	if params.Config != nil && params.Config.Order != nil && params.Config.Order.QuantityWindow > 0 {
		window = params.Config.Order.QuantityWindow
	}

	return &orderService{
		orderRepo:      params.OrderRepo,
		quantityWindow: window,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApplyTurn runs one step of the pending -> ready state machine:
//  1. store the turn's phone and address as user defaults where the user has none
//  2. resolve the active pending order, or open one with the turn as provenance
//  3. fill the order's phone and address where unset, turn values before user defaults
//  4. attach an item for every in-stock product named in the turn
//  5. mark the order ready once it has a phone, an address and an item
func (srv *orderService) ApplyTurn(
	ctx context.Context,
	repos repository.RepositoryFactory,
	input usecase.ApplyTurnInput,
) (*usecase.ApplyTurnOutput, error) {
	if input.User == nil {
		return nil, errors.New("apply turn: user is required")
	}
	user := input.User
	userRepo := repos.NewUserRepository()
	orderRepo := repos.NewOrderRepository()
	catalogRepo := repos.NewCatalogRepository()

	out := &usecase.ApplyTurnOutput{}
	if phone, ok := nlp.ExtractPhone(input.Text); ok {
		out.Phone = phone
	}
	if address, ok := nlp.ExtractAddress(input.Text); ok {
		out.Address = address
	}

	if err := userRepo.FillContactDefaults(ctx, user.ID, out.Phone, out.Address); err != nil {
		return nil, errors.Wrap(err, "failed to store contact defaults")
	}

	order, created, err := srv.resolveOrder(ctx, orderRepo, user.ID, input.Text)
	if err != nil {
		return nil, err
	}
	out.Created = created

	if err := srv.mergeContact(ctx, orderRepo, order, firstNonEmpty(out.Phone, user.Phone), firstNonEmpty(out.Address, user.Address)); err != nil {
		return nil, err
	}

	added, err := srv.attachItems(ctx, orderRepo, catalogRepo, order.ID, input.Text)
	if err != nil {
		return nil, err
	}
	out.AddedItems = added

	count, err := orderRepo.CountItems(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count order items")
	}
	out.ItemCount = count

	if order.Status == entity.OrderStatusPending && order.IsFulfillable(count) {
		marked, err := orderRepo.MarkReady(ctx, order.ID, srv.now())
		if err != nil {
			return nil, errors.Wrap(err, "failed to mark order ready")
		}
		out.BecameReady = marked
	}

	out.Order, err = orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}

	if out.BecameReady {
		srv.log(ctx).Info("Order is ready",
			slog.String("order_id", order.ID.String()),
			slog.String("user_id", user.ID),
			slog.Int64("item_count", count),
			slog.Int64("total", out.Order.Total()),
		)
	}

	return out, nil
}

func (srv *orderService) resolveOrder(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	userID, provenance string,
) (*entity.Order, bool, error) {
	order, err := orderRepo.FindActivePending(ctx, userID)
	if err == nil {
		return order, false, nil
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, false, errors.Wrap(err, "failed to find pending order")
	}

	order = &entity.Order{
		UserID:     userID,
		Status:     entity.OrderStatusPending,
		Provenance: provenance,
	}
	if err := orderRepo.Create(ctx, order); err != nil {
		return nil, false, errors.Wrap(err, "failed to open order")
	}

	srv.log(ctx).Debug("Order opened",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", userID),
	)

	return order, true, nil
}

// mergeContact never replaces a value the order already holds.
func (srv *orderService) mergeContact(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	order *entity.Order,
	phone, address string,
) error {
	if order.Phone != "" {
		phone = ""
	}
	if order.Address != "" {
		address = ""
	}
	if phone == "" && address == "" {
		return nil
	}

	if err := orderRepo.FillContact(ctx, order.ID, phone, address); err != nil {
		return errors.Wrap(err, "failed to fill order contact")
	}
	if phone != "" {
		order.Phone = phone
	}
	if address != "" {
		order.Address = address
	}

	return nil
}

// attachItems adds one row per mentioned product. Repeated mentions across turns add repeated rows.
func (srv *orderService) attachItems(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	orderID uuid.UUID,
	text string,
) ([]*entity.OrderItem, error) {
	products, err := catalogRepo.FindAvailable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load in-stock catalog")
	}
	if len(products) == 0 {
		return nil, nil
	}

	names := make([]string, len(products))
	for i, product := range products {
		names[i] = product.Name
	}

	var added []*entity.OrderItem
	for _, mention := range nlp.FindMentions(text, names, srv.quantityWindow) {
		product := products[mention.Index]
		item := &entity.OrderItem{
			OrderID:   orderID,
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  mention.Quantity,
		}
		if err := orderRepo.CreateItem(ctx, item); err != nil {
			return nil, errors.Wrapf(err, "failed to attach %q", product.Name)
		}
		added = append(added, item)
	}

	return added, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, input usecase.ListOrdersInput) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.OrderFilter{
		Status: input.Status,
		UserID: input.UserID,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
