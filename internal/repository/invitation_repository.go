package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmate/internal/model"
)

// InvitationRepository manages join tokens.
type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	invitation.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		return fmt.Errorf("create invitation: %w", err)
	}
	return nil
}

// FindValid returns the invitation only when it exists and its expiry is
// strictly in the future. An expired row yields gorm.ErrRecordNotFound,
// same as a missing one.
func (r *InvitationRepository) FindValid(ctx context.Context, id string, now time.Time) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, now).
		First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// DeleteExpired removes invitations whose window has closed.
func (r *InvitationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.Invitation{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete expired invitations: %w", res.Error)
	}
	return res.RowsAffected, nil
}
