package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskmate/internal/model"
)

// ChecklistRepository handles CRUD for checklists and their member set.
type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// Create stores a new checklist and registers the owner as its first member.
func (r *ChecklistRepository) Create(ctx context.Context, checklist *model.Checklist) error {
	if checklist.ID == "" {
		checklist.ID = uuid.NewString()
	}
	if checklist.State == "" {
		checklist.State = model.StateActive
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(checklist).Error; err != nil {
			return err
		}
		member := model.ChecklistMember{
			ChecklistID: checklist.ID,
			UserID:      checklist.OwnerID,
			JoinedAt:    time.Now(),
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error
	})
	if err != nil {
		return fmt.Errorf("create checklist: %w", err)
	}
	return nil
}

func (r *ChecklistRepository) FindByID(ctx context.Context, id string) (*model.Checklist, error) {
	var checklist model.Checklist
	if err := r.db.WithContext(ctx).First(&checklist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &checklist, nil
}

// ListForUser returns active checklists the user owns or is a member of.
func (r *ChecklistRepository) ListForUser(ctx context.Context, userID string) ([]model.Checklist, error) {
	var checklists []model.Checklist
	err := r.db.WithContext(ctx).
		Joins("JOIN checklist_members ON checklist_members.checklist_id = checklists.id").
		Where("checklist_members.user_id = ? AND checklists.state = ?", userID, model.StateActive).
		Order("checklists.created_at ASC").
		Find(&checklists).Error
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	return checklists, nil
}

// AddMember appends the user to the checklist's member set. The insert is
// atomic at the database and a no-op when the row already exists, so
// concurrent joins by the same user leave exactly one membership.
func (r *ChecklistRepository) AddMember(ctx context.Context, checklistID, userID string) error {
	member := model.ChecklistMember{
		ChecklistID: checklistID,
		UserID:      userID,
		JoinedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&member).Error; err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// Members returns the user ids in the checklist's member set.
func (r *ChecklistRepository) Members(ctx context.Context, checklistID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&model.ChecklistMember{}).
		Where("checklist_id = ?", checklistID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return ids, nil
}

// IsMember reports membership by row existence.
func (r *ChecklistRepository) IsMember(ctx context.Context, checklistID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.ChecklistMember{}).
		Where("checklist_id = ? AND user_id = ?", checklistID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check member: %w", err)
	}
	return count > 0, nil
}

// Archive moves the checklist out of every member's home screen without
// deleting anything.
func (r *ChecklistRepository) Archive(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Checklist{}).
		Where("id = ?", id).
		Update("state", model.StateArchived).Error; err != nil {
		return fmt.Errorf("archive checklist: %w", err)
	}
	return nil
}
