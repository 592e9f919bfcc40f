package dao

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lawchat-backend/model"
)

type MessageDAO struct {
	db *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{db: db}
}

func (d *MessageDAO) ListBySession(ctx context.Context, sessionID string) ([]model.Message, error) {
	var messages []model.Message
	if err := d.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (d *MessageDAO) Create(ctx context.Context, m *model.Message) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return d.db.WithContext(ctx).Create(m).Error
}

func (d *MessageDAO) DeleteByID(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Message{}).Error
}

// DeleteBySession removes every message owned by the session. The session
// row itself is untouched; callers delete it separately.
func (d *MessageDAO) DeleteBySession(ctx context.Context, sessionID string) error {
	return d.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.Message{}).Error
}
