package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lawchat-backend/model"
)

type SessionDAO struct {
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{db: db}
}

func (d *SessionDAO) List(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := d.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (d *SessionDAO) Create(ctx context.Context, s *model.Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Title == "" {
		s.Title = model.DefaultSessionTitle
	}
	return d.db.WithContext(ctx).Create(s).Error
}

// GetByID returns (nil, nil) when no session exists with the given id.
// An error always means the storage operation itself failed.
func (d *SessionDAO) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	if err := d.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Update applies a partial field merge and returns the updated record, or
// (nil, nil) when the session no longer exists.
func (d *SessionDAO) Update(ctx context.Context, id string, fields map[string]any) (*model.Session, error) {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now()
	}
	if err := d.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return d.GetByID(ctx, id)
}

func (d *SessionDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Session{}).Error
}
