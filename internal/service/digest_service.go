package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"taskmate/internal/projection"
)

// DigestService builds human-readable progress summaries for the daily
// notification.
type DigestService struct {
	checklists ChecklistStore
	tasks      TaskStore
}

func NewDigestService(checklists ChecklistStore, tasks TaskStore) *DigestService {
	return &DigestService{checklists: checklists, tasks: tasks}
}

// DailySummary renders the user's checklists with their completed/total
// progress. Returns empty when the user has no checklists, so callers
// can skip the message entirely.
func (s *DigestService) DailySummary(ctx context.Context, userID string, now time.Time) (string, error) {
	checklists, err := s.checklists.ListForUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(checklists) == 0 {
		return "", nil
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>Daily progress</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("02.01.2006")))

	for _, checklist := range checklists {
		tasks, err := s.tasks.ListByChecklist(ctx, checklist.ID)
		if err != nil {
			return "", err
		}
		completed, total := projection.Progress(tasks)
		icon := "🟢"
		if total > 0 && completed < total {
			icon = "⏳"
		}
		builder.WriteString(fmt.Sprintf("%s <b>%s</b> — %d/%d done\n", icon, html.EscapeString(checklist.Name), completed, total))
	}

	return strings.TrimSpace(builder.String()), nil
}
