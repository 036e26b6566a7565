package postgres

import (
	"context"
	"time"

	"shopbot/internal/domain/entity"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/repository"
	"shopbot/internal/errors"
	"shopbot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const defaultOrderListLimit = 50

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindActivePending returns the newest pending order of the user, without items.
func (repo *orderRepository) FindActivePending(ctx context.Context, userID string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND status = ?", userID, string(entity.OrderStatusPending)).
		Order("created_at DESC").
		Order("id DESC").
		First(&orderM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pending order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items", orderItemsByCreation).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultOrderListLimit
	}

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Items", orderItemsByCreation)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var ordersM []model.OrderModel
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(max(filter.Offset, 0)).
		Find(&ordersM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(ordersM))
	for i := range ordersM {
		orders = append(orders, toOrderDomain(&ordersM[i]))
	}

	return orders, nil
}

// Create inserts a pending order. Orders are never created in any other status.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	if order.Status != entity.OrderStatusPending {
		return errors.Errorf("order must be created as %s, got %s", entity.OrderStatusPending, order.Status)
	}
	if order.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to generate order id")
		}
		order.ID = id
	}

	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Omit("Items").Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "user already has a pending order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FillContact stores phone and address where the order has none yet.
func (repo *orderRepository) FillContact(ctx context.Context, id uuid.UUID, phone, address string) error {
	if err := fillEmptyColumn(ctx, repo.db, &model.OrderModel{}, "id = ?", id, "phone", phone); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store order phone")
	}
	if err := fillEmptyColumn(ctx, repo.db, &model.OrderModel{}, "id = ?", id, "address", address); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store order address")
	}

	return nil
}

// MarkReady is a compare-and-set on the status column.
func (repo *orderRepository) MarkReady(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(entity.OrderStatusPending)).
		Updates(map[string]any{
			"status":   string(entity.OrderStatusReady),
			"ready_at": at,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order ready")
	}

	return result.RowsAffected == 1, nil
}

// ClaimEffects stamps the dispatch time once. Later claims report false.
func (repo *orderRepository) ClaimEffects(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ? AND effects_dispatched_at IS NULL", id, string(entity.OrderStatusReady)).
		Update("effects_dispatched_at", at)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim order effects")
	}

	return result.RowsAffected == 1, nil
}

func (repo *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	if item.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to generate order item id")
		}
		item.ID = id
	}

	itemM := fromOrderItemDomain(item)
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	item.CreatedAt = itemM.CreatedAt

	return nil
}

func (repo *orderRepository) CountItems(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.OrderItemModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count order items")
	}

	return count, nil
}

func orderItemsByCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:                  data.ID,
		UserID:              data.UserID,
		Status:              entity.OrderStatus(data.Status),
		Phone:               data.Phone,
		Address:             data.Address,
		Provenance:          data.Provenance,
		ReadyAt:             data.ReadyAt,
		EffectsDispatchedAt: data.EffectsDispatchedAt,
		Items:               items,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Status:              string(data.Status),
		Phone:               data.Phone,
		Address:             data.Address,
		Provenance:          data.Provenance,
		ReadyAt:             data.ReadyAt,
		EffectsDispatchedAt: data.EffectsDispatchedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Name:      data.Name,
		UnitPrice: data.UnitPrice,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Name:      data.Name,
		UnitPrice: data.UnitPrice,
		Quantity:  data.Quantity,
	}
}
