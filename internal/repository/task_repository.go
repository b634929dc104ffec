package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmate/internal/model"
)

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create stores a task and fills in the server-issued id.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) ListByChecklist(ctx context.Context, checklistID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("checklist_id = ?", checklistID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// SetCompleted writes the completion flag as a single-column update.
func (r *TaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		Update("completed", completed).Error; err != nil {
		return fmt.Errorf("set completed: %w", err)
	}
	return nil
}

// IncrementLikes bumps the counter atomically at the database, never
// read-modify-write from the client.
func (r *TaskRepository) IncrementLikes(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("likes + ?", 1)).Error; err != nil {
		return fmt.Errorf("increment likes: %w", err)
	}
	return nil
}
