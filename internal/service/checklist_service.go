package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskmate/internal/model"
)

// ErrNotOwner rejects owner-only operations.
var ErrNotOwner = errors.New("only the owner can do that")

// ChecklistInput represents data required to create a checklist.
type ChecklistInput struct {
	Name        string
	Description string
	Photo       string
}

// ChecklistStore is the gateway surface the checklist service relies on.
type ChecklistStore interface {
	Create(ctx context.Context, checklist *model.Checklist) error
	FindByID(ctx context.Context, id string) (*model.Checklist, error)
	ListForUser(ctx context.Context, userID string) ([]model.Checklist, error)
	Members(ctx context.Context, checklistID string) ([]string, error)
	IsMember(ctx context.Context, checklistID, userID string) (bool, error)
	Archive(ctx context.Context, id string) error
}

// ChecklistService wraps checklist-related business logic.
type ChecklistService struct {
	checklists ChecklistStore
}

func NewChecklistService(checklists ChecklistStore) *ChecklistService {
	return &ChecklistService{checklists: checklists}
}

func (s *ChecklistService) Create(ctx context.Context, ownerID string, input ChecklistInput) (*model.Checklist, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	checklist := model.Checklist{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Photo:       input.Photo,
		State:       model.StateActive,
	}
	if err := s.checklists.Create(ctx, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

func (s *ChecklistService) List(ctx context.Context, userID string) ([]model.Checklist, error) {
	return s.checklists.ListForUser(ctx, userID)
}

func (s *ChecklistService) Get(ctx context.Context, id string) (*model.Checklist, error) {
	return s.checklists.FindByID(ctx, id)
}

func (s *ChecklistService) Members(ctx context.Context, checklistID string) ([]string, error) {
	return s.checklists.Members(ctx, checklistID)
}

func (s *ChecklistService) IsMember(ctx context.Context, checklistID, userID string) (bool, error) {
	return s.checklists.IsMember(ctx, checklistID, userID)
}

// Archive retires a checklist from home screens. Owner only.
func (s *ChecklistService) Archive(ctx context.Context, userID, checklistID string) error {
	checklist, err := s.checklists.FindByID(ctx, checklistID)
	if err != nil {
		return err
	}
	if checklist.OwnerID != userID {
		return ErrNotOwner
	}
	return s.checklists.Archive(ctx, checklistID)
}
