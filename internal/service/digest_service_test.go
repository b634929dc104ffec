package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"taskmate/internal/model"
)

func TestDailySummaryEmptyWithoutChecklists(t *testing.T) {
	svc := NewDigestService(newFakeChecklistStore(), newFakeTaskStore())

	summary, err := svc.DailySummary(context.Background(), "u", time.Now())
	if err != nil {
		t.Fatalf("DailySummary: %v", err)
	}
	if summary != "" {
		t.Fatalf("summary = %q, want empty", summary)
	}
}

func TestDailySummaryCountsProgress(t *testing.T) {
	checklists := newFakeChecklistStore(model.Checklist{ID: "cl", OwnerID: "u", Name: "Trip & Co"})
	tasks := newFakeTaskStore()
	tasks.Create(context.Background(), &model.Task{ChecklistID: "cl", Title: "a", Completed: true})
	tasks.Create(context.Background(), &model.Task{ChecklistID: "cl", Title: "b"})
	svc := NewDigestService(checklists, tasks)

	summary, err := svc.DailySummary(context.Background(), "u", time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("DailySummary: %v", err)
	}
	if !strings.Contains(summary, "1/2 done") {
		t.Fatalf("summary missing progress: %q", summary)
	}
	if !strings.Contains(summary, "Trip &amp; Co") {
		t.Fatalf("checklist name not escaped: %q", summary)
	}
	if !strings.Contains(summary, "29.08.2026") {
		t.Fatalf("summary missing the date: %q", summary)
	}
}

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("09:30")
	if err != nil {
		t.Fatalf("buildDailySpec: %v", err)
	}
	if spec != "0 30 9 * * *" {
		t.Fatalf("spec = %q", spec)
	}

	spec, err = buildDailySpec("07:15:30")
	if err != nil {
		t.Fatalf("buildDailySpec with seconds: %v", err)
	}
	if spec != "30 15 7 * * *" {
		t.Fatalf("spec = %q", spec)
	}

	for _, bad := range []string{"9", "24:00", "12:60", "12:00:60", "1:2:3:4", "ab:cd", ""} {
		if _, err := buildDailySpec(bad); err == nil {
			t.Errorf("buildDailySpec(%q) accepted", bad)
		}
	}
}
