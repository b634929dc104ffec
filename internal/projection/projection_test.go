package projection

import (
	"testing"

	"taskmate/internal/model"
)

func TestFilterChecklistsEmptyQueryKeepsOrder(t *testing.T) {
	input := []model.Checklist{{ID: "1", Name: "b"}, {ID: "2", Name: "a"}}

	got := FilterChecklists(input, "   ")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("empty query changed the list: %+v", got)
	}
}

func TestFilterChecklistsMatchesNameAndDescription(t *testing.T) {
	input := []model.Checklist{
		{ID: "1", Name: "Groceries"},
		{ID: "2", Name: "Trip", Description: "pack for the WEEKEND"},
		{ID: "3", Name: "Chores"},
	}

	got := FilterChecklists(input, "GROC")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("name match failed: %+v", got)
	}

	got = FilterChecklists(input, "weekend")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("description match failed: %+v", got)
	}

	if got = FilterChecklists(input, "nothing"); len(got) != 0 {
		t.Fatalf("no-match query returned %+v", got)
	}
}

func TestProgress(t *testing.T) {
	completed, total := Progress([]model.Task{
		{Completed: true},
		{Completed: false},
		{Completed: true},
	})
	if completed != 2 || total != 3 {
		t.Fatalf("Progress = %d/%d, want 2/3", completed, total)
	}

	if completed, total = Progress(nil); completed != 0 || total != 0 {
		t.Fatalf("Progress(nil) = %d/%d, want 0/0", completed, total)
	}
}

func TestJoinAuthors(t *testing.T) {
	comments := []model.Comment{
		{ID: "c1", UserID: "u1", Text: "hi"},
		{ID: "c2", UserID: "u2", Text: "yo"},
		{ID: "c3", UserID: "u3", Text: "hm"},
	}
	profiles := map[string]model.Profile{
		"u1": {ID: "u1", Username: "alice", AvatarURL: "https://cdn/a.jpg"},
		"u3": {ID: "u3", Username: ""},
	}

	views := JoinAuthors(comments, profiles)
	if len(views) != 3 {
		t.Fatalf("len(views) = %d", len(views))
	}
	if views[0].AuthorName != "alice" || views[0].AvatarURL != "https://cdn/a.jpg" {
		t.Fatalf("resolved author wrong: %+v", views[0])
	}
	if views[1].AuthorName != AnonymousName {
		t.Fatalf("missing profile should degrade to %q, got %q", AnonymousName, views[1].AuthorName)
	}
	if views[2].AuthorName != AnonymousName {
		t.Fatalf("empty username should degrade to %q, got %q", AnonymousName, views[2].AuthorName)
	}
}
