package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmate/internal/model"
	"taskmate/internal/projection"
)

type fakeCommentStore struct {
	comments []model.Comment
}

func (f *fakeCommentStore) Create(_ context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentStore) ListByTask(_ context.Context, taskID string) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range f.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeProfileStore struct {
	profiles map[string]model.Profile
	failAll  bool
}

func (f *fakeProfileStore) FindByID(_ context.Context, id string) (*model.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (f *fakeProfileStore) FindByIDs(_ context.Context, ids []string) (map[string]model.Profile, error) {
	if f.failAll {
		return nil, errors.New("profiles unavailable")
	}
	out := make(map[string]model.Profile)
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeProfileStore) UpdateBio(_ context.Context, id, bio string) error {
	p := f.profiles[id]
	p.Bio = bio
	f.profiles[id] = p
	return nil
}

func (f *fakeProfileStore) UpdateAvatarURL(_ context.Context, id, avatarURL string) error {
	p := f.profiles[id]
	p.AvatarURL = avatarURL
	f.profiles[id] = p
	return nil
}

func TestCommentAddResolvesAuthor(t *testing.T) {
	profiles := &fakeProfileStore{profiles: map[string]model.Profile{
		"u1": {ID: "u1", Username: "alice"},
	}}
	svc := NewCommentService(&fakeCommentStore{}, profiles)

	view, err := svc.Add(context.Background(), "t1", "u1", "  hello  ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if view.Text != "hello" || view.AuthorName != "alice" {
		t.Fatalf("view = %+v", view)
	}
}

func TestCommentAddRejectsEmptyText(t *testing.T) {
	svc := NewCommentService(&fakeCommentStore{}, &fakeProfileStore{})
	if _, err := svc.Add(context.Background(), "t1", "u1", "   "); err == nil {
		t.Fatal("Add accepted blank text")
	}
}

func TestCommentAddDegradesOnProfileFailure(t *testing.T) {
	comments := &fakeCommentStore{}
	svc := NewCommentService(comments, &fakeProfileStore{failAll: true})

	view, err := svc.Add(context.Background(), "t1", "u1", "hi")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if view.AuthorName != projection.AnonymousName {
		t.Fatalf("AuthorName = %q, want %q", view.AuthorName, projection.AnonymousName)
	}
	if len(comments.comments) != 1 {
		t.Fatal("comment was not stored")
	}
}

func TestListWithAuthorsKeepsOrder(t *testing.T) {
	comments := &fakeCommentStore{}
	profiles := &fakeProfileStore{profiles: map[string]model.Profile{
		"u1": {ID: "u1", Username: "alice"},
	}}
	svc := NewCommentService(comments, profiles)

	for _, text := range []string{"first", "second", "third"} {
		userID := "u1"
		if text == "second" {
			userID = "ghost"
		}
		if _, err := svc.Add(context.Background(), "t1", userID, text); err != nil {
			t.Fatalf("Add(%s): %v", text, err)
		}
	}

	views, err := svc.ListWithAuthors(context.Background(), "t1")
	if err != nil {
		t.Fatalf("ListWithAuthors: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("len = %d", len(views))
	}
	if views[0].Text != "first" || views[2].Text != "third" {
		t.Fatalf("order broken: %+v", views)
	}
	if views[1].AuthorName != projection.AnonymousName {
		t.Fatalf("unknown author = %q", views[1].AuthorName)
	}
}
