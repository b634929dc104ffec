package service

import (
	"context"
	"fmt"
	"strings"

	"taskmate/internal/model"
	"taskmate/internal/projection"
)

// CommentStore is the gateway surface the comment service relies on.
type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByTask(ctx context.Context, taskID string) ([]model.Comment, error)
}

// ProfileStore resolves comment authors and serves the profile screen.
type ProfileStore interface {
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]model.Profile, error)
	UpdateBio(ctx context.Context, id, bio string) error
	UpdateAvatarURL(ctx context.Context, id, avatarURL string) error
}

// CommentService posts comments and reads them joined with their
// authors' profiles.
type CommentService struct {
	comments CommentStore
	profiles ProfileStore
}

func NewCommentService(comments CommentStore, profiles ProfileStore) *CommentService {
	return &CommentService{comments: comments, profiles: profiles}
}

// Add posts a comment and returns it resolved for display, so the
// caller can append it to the visible thread without re-fetching.
func (s *CommentService) Add(ctx context.Context, taskID, userID, text string) (*projection.CommentView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("comment text is required")
	}

	comment := model.Comment{TaskID: taskID, UserID: userID, Text: strings.TrimSpace(text)}
	if err := s.comments.Create(ctx, &comment); err != nil {
		return nil, err
	}

	profiles, err := s.profiles.FindByIDs(ctx, []string{userID})
	if err != nil {
		// The comment is stored; degrade the author to the placeholder.
		profiles = nil
	}
	views := projection.JoinAuthors([]model.Comment{comment}, profiles)
	return &views[0], nil
}

// ListWithAuthors returns the task's thread in creation order, each
// comment joined with its author's display name and avatar.
func (s *CommentService) ListWithAuthors(ctx context.Context, taskID string) ([]projection.CommentView, error) {
	comments, err := s.comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	for _, c := range comments {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			ids = append(ids, c.UserID)
		}
	}

	profiles, err := s.profiles.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return projection.JoinAuthors(comments, profiles), nil
}
