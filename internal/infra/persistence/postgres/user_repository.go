package postgres

import (
	"context"

	"shopbot/internal/domain/entity"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/repository"
	"shopbot/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by platform ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user unless the ID is already known.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(userM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// LockByID takes a row lock on the user for the rest of the transaction.
// Drivers without row locks (SQLite) serialize writers at the database level instead.
func (repo *userRepository) LockByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock user")
	}

	return toUserDomain(&userM), nil
}

// FillContactDefaults stores phone and address where the user has none yet.
func (repo *userRepository) FillContactDefaults(ctx context.Context, id, phone, address string) error {
	if err := fillEmptyColumn(ctx, repo.db, &model.UserModel{}, "id = ?", id, "phone", phone); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store user phone")
	}
	if err := fillEmptyColumn(ctx, repo.db, &model.UserModel{}, "id = ?", id, "address", address); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store user address")
	}

	return nil
}

// fillEmptyColumn writes value into column only where the column is still empty.
// The first non-empty write wins.
func fillEmptyColumn(ctx context.Context, db *gorm.DB, target any, where string, id any, column, value string) error {
	if value == "" {
		return nil
	}

	return db.WithContext(ctx).
		Model(target).
		Where(where, id).
		Where(column+" = '' OR "+column+" IS NULL").
		Update(column, value).Error
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:      data.ID,
		Phone:   data.Phone,
		Address: data.Address,
	}
}
