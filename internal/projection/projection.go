// Package projection derives view state from raw entities. Everything
// here is a pure function: no network calls, no stored state.
package projection

import (
	"strings"
	"time"

	"taskmate/internal/model"
)

// AnonymousName replaces a missing author name in comment views.
const AnonymousName = "Anonymous"

// FilterChecklists keeps checklists whose name or description contains
// the query, case-insensitively. An empty query returns the input
// unchanged in order.
func FilterChecklists(checklists []model.Checklist, query string) []model.Checklist {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return checklists
	}
	filtered := make([]model.Checklist, 0, len(checklists))
	for _, c := range checklists {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Description), query) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Progress counts completed tasks against the total.
func Progress(tasks []model.Task) (completed, total int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return completed, len(tasks)
}

// CommentView is a comment with its author resolved for display.
type CommentView struct {
	ID         string
	Text       string
	UserID     string
	AuthorName string
	AvatarURL  string
	CreatedAt  time.Time
}

// JoinAuthors resolves each comment's author from the profile map.
// A missing profile or empty username degrades to AnonymousName and no
// avatar rather than failing.
func JoinAuthors(comments []model.Comment, profiles map[string]model.Profile) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		view := CommentView{
			ID:         c.ID,
			Text:       c.Text,
			UserID:     c.UserID,
			AuthorName: AnonymousName,
			CreatedAt:  c.CreatedAt,
		}
		if p, ok := profiles[c.UserID]; ok {
			if p.Username != "" {
				view.AuthorName = p.Username
			}
			view.AvatarURL = p.AvatarURL
		}
		views = append(views, view)
	}
	return views
}
