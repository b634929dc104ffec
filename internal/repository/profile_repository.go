package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskmate/internal/model"
)

// ProfileRepository manages user profiles.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByIDs loads profiles for the comment-author join. Missing ids are
// simply absent from the result.
func (r *ProfileRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Profile, error) {
	byID := make(map[string]model.Profile, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var profiles []model.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	for _, p := range profiles {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *ProfileRepository) UpdateBio(ctx context.Context, id, bio string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ?", id).
		Update("bio", bio).Error; err != nil {
		return fmt.Errorf("update bio: %w", err)
	}
	return nil
}

func (r *ProfileRepository) UpdateAvatarURL(ctx context.Context, id, avatarURL string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL).Error; err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	return nil
}
