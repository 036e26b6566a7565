package postgres

import (
	"context"
	"slices"

	"shopbot/internal/domain/entity"
	domainerrors "shopbot/internal/domain/errors"
	"shopbot/internal/domain/repository"
	"shopbot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create appends a turn to the history.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to generate message id")
		}
		message.ID = id
	}

	messageM := fromMessageDomain(message)
	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMessage
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.CreatedAt = messageM.CreatedAt

	return nil
}

func (repo *messageRepository) ExistsByPlatformID(ctx context.Context, platformMessageID string) (bool, error) {
	if platformMessageID == "" {
		return false, nil
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.MessageModel{}).
		Where("platform_message_id = ?", platformMessageID).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to look up message")
	}

	return count > 0, nil
}

// ListRecent loads the newest turns and returns them oldest first.
func (repo *messageRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*entity.Message, error) {
	if limit <= 0 {
		return []*entity.Message{}, nil
	}

	var messagesM []model.MessageModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&messagesM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messagesM))
	for i := range messagesM {
		messages = append(messages, toMessageDomain(&messagesM[i]))
	}
	slices.Reverse(messages)

	return messages, nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	message := &entity.Message{
		ID:        data.ID,
		UserID:    data.UserID,
		Role:      entity.MessageRole(data.Role),
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
	}
	if data.PlatformMessageID != nil {
		message.PlatformMessageID = *data.PlatformMessageID
	}
	if len(data.Metadata) > 0 {
		message.Metadata = make(map[string]string, len(data.Metadata))
		for key, value := range data.Metadata {
			if text, ok := value.(string); ok {
				message.Metadata[key] = text
			}
		}
	}

	return message
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	messageM := &model.MessageModel{
		ID:     data.ID,
		UserID: data.UserID,
		Role:   string(data.Role),
		Body:   data.Body,
	}
	if data.PlatformMessageID != "" {
		platformID := data.PlatformMessageID
		messageM.PlatformMessageID = &platformID
	}
	if len(data.Metadata) > 0 {
		messageM.Metadata = make(datatypes.JSONMap, len(data.Metadata))
		for key, value := range data.Metadata {
			messageM.Metadata[key] = value
		}
	}

	return messageM
}
