package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmate/internal/model"
)

// SessionRepository binds signed-in accounts to chats.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Replace signs the chat in as the given account, displacing any session
// the chat held before.
func (r *SessionRepository) Replace(ctx context.Context, chatID int64, accountID string) (*model.Session, error) {
	session := model.Session{
		Token:     uuid.NewString(),
		AccountID: accountID,
		ChatID:    chatID,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Delete(&model.Session{}).Error; err != nil {
			return err
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) FindByChat(ctx context.Context, chatID int64) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).First(&session, "chat_id = ?", chatID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ListAll returns every active session; the digest job fans out over it.
func (r *SessionRepository) ListAll(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := r.db.WithContext(ctx).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) DeleteByChat(ctx context.Context, chatID int64) error {
	if err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Delete(&model.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
