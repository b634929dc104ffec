package service

import (
	"context"
	"fmt"
	"strings"

	"taskmate/internal/model"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	Image       string
}

// TaskStore is the gateway surface the task service relies on.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	ListByChecklist(ctx context.Context, checklistID string) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	IncrementLikes(ctx context.Context, id string) error
}

// TaskService wraps task-related business logic.
type TaskService struct {
	tasks      TaskStore
	checklists ChecklistStore
}

func NewTaskService(tasks TaskStore, checklists ChecklistStore) *TaskService {
	return &TaskService{tasks: tasks, checklists: checklists}
}

// Create validates the input, checks the parent exists and issues the
// insert. The returned task carries the server id; the caller's
// optimistic placeholder is reconciled against it.
func (s *TaskService) Create(ctx context.Context, checklistID string, input TaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if _, err := s.checklists.FindByID(ctx, checklistID); err != nil {
		return nil, fmt.Errorf("checklist not found: %w", err)
	}

	task := model.Task{
		ChecklistID: checklistID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Image:       input.Image,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) List(ctx context.Context, checklistID string) ([]model.Task, error) {
	return s.tasks.ListByChecklist(ctx, checklistID)
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// SetCompleted persists a completion toggle.
func (s *TaskService) SetCompleted(ctx context.Context, id string, completed bool) error {
	return s.tasks.SetCompleted(ctx, id, completed)
}

// Like bumps the like counter. Repeat likes from the same viewer are not
// deduplicated.
func (s *TaskService) Like(ctx context.Context, id string) error {
	return s.tasks.IncrementLikes(ctx, id)
}
