package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"taskmate/internal/model"
	"taskmate/internal/optimistic"
	"taskmate/internal/projection"
	"taskmate/internal/service"
)

func (b *Bot) startNewChecklist(chatID int64) error {
	b.setConversation(chatID, &conversationState{stage: stageChecklistName})
	return b.sendWithMarkup(chatID, "📝 What should the checklist be called?", cancelKeyboard())
}

func (b *Bot) finishChecklistCreation(ctx context.Context, chatID int64, input service.ChecklistInput) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		checklist, err := b.checklistSvc.Create(ctx, userID, input)
		if err != nil {
			return b.sendText(chatID, fmt.Sprintf("Couldn't create the checklist: %s", escape(err.Error())))
		}
		if err := b.sendText(chatID, fmt.Sprintf("✅ <b>%s</b> created.", escape(checklist.Name))); err != nil {
			return err
		}
		return b.openChecklist(ctx, chatID, checklist.ID)
	})
}

// openChecklist makes the checklist the chat's active screen and renders
// it from a fresh fetch.
func (b *Bot) openChecklist(ctx context.Context, chatID int64, checklistID string) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		member, err := b.checklistSvc.IsMember(ctx, checklistID, userID)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if !member {
			return b.sendText(chatID, "This checklist isn't yours. Ask a member for an invite link.")
		}

		tasks, err := b.taskSvc.List(ctx, checklistID)
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}

		screen := b.openScreen(chatID, checklistID)
		screen.tasks.Replace(tasks)
		return b.renderChecklist(ctx, chatID, screen)
	})
}

// renderChecklist draws the screen from its optimistic list, so staged
// placeholders and locally-applied toggles show up immediately.
func (b *Bot) renderChecklist(ctx context.Context, chatID int64, screen *checklistScreen) error {
	checklist, err := b.checklistSvc.Get(ctx, screen.checklistID)
	if err != nil {
		return fmt.Errorf("load checklist: %w", err)
	}
	members, err := b.checklistSvc.Members(ctx, screen.checklistID)
	if err != nil {
		return fmt.Errorf("load members: %w", err)
	}

	tasks := screen.tasks.Items()
	completed, total := projection.Progress(tasks)

	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 <b>%s</b>\n", escape(checklist.Name))
	if checklist.Description != "" {
		fmt.Fprintf(&sb, "%s\n", escape(checklist.Description))
	}
	fmt.Fprintf(&sb, "👥 %d member(s) · ✅ %d/%d done\n", len(members), completed, total)
	if total == 0 {
		sb.WriteString("\nNo tasks yet. Add the first one below.")
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(tasks)+2)
	for _, t := range tasks {
		if screen.tasks.IsPending(t.ID) {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⏳ "+shortTitle(t.Title, 28), cbPending),
			))
			continue
		}
		mark := "⬜"
		if t.Completed {
			mark = "☑️"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mark+" "+shortTitle(t.Title, 24), cbTogglePrefix+t.ID),
			tgbotapi.NewInlineKeyboardButtonData("👁", cbTaskPrefix+t.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ Add task", cbAddTaskPrefix+screen.checklistID),
		tgbotapi.NewInlineKeyboardButtonData("🔗 Share", cbSharePrefix+screen.checklistID),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🗄 Archive", cbArchivePrefix+screen.checklistID),
	))

	return b.sendWithMarkup(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// finishTaskCreation is the optimistic insert: stage a placeholder,
// show it, persist, then reconcile and redraw either way.
func (b *Bot) finishTaskCreation(ctx context.Context, chatID int64, checklistID string, input service.TaskInput) error {
	screen := b.screen(chatID)
	if screen == nil || screen.checklistID != checklistID {
		// The screen was switched away mid-dialog; create without the
		// optimistic round-trip.
		if _, err := b.taskSvc.Create(ctx, checklistID, input); err != nil {
			return b.sendText(chatID, fmt.Sprintf("Couldn't add the task: %s", escape(err.Error())))
		}
		return b.openChecklist(ctx, chatID, checklistID)
	}

	placeholder := model.Task{
		ID:          optimistic.TempID(),
		ChecklistID: checklistID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Image:       input.Image,
	}
	create, err := screen.tasks.StageCreate(placeholder)
	if err != nil {
		if errors.Is(err, optimistic.ErrBusy) {
			return b.sendText(chatID, "⏳ The previous task is still saving. Give it a second and try again.")
		}
		return err
	}

	if err := b.renderChecklist(ctx, chatID, screen); err != nil {
		return err
	}

	confirmed, err := b.taskSvc.Create(ctx, checklistID, input)
	if err != nil {
		create.Rollback()
		if sendErr := b.sendText(chatID, fmt.Sprintf("❌ Couldn't save the task: %s", escape(err.Error()))); sendErr != nil {
			return sendErr
		}
		return b.renderChecklist(ctx, chatID, screen)
	}

	create.Commit(*confirmed)
	return b.renderChecklist(ctx, chatID, screen)
}

// toggleTask flips completion locally, persists, and reverts the flip
// when the write fails.
func (b *Bot) toggleTask(ctx context.Context, chatID int64, taskID string) error {
	screen := b.screen(chatID)
	if screen == nil {
		return b.sendText(chatID, "Open a checklist first: /lists.")
	}

	task, ok := screen.tasks.Get(taskID)
	if !ok {
		return b.sendText(chatID, "That task is gone. Reopening the checklist.")
	}
	target := !task.Completed

	flip := func(t *model.Task) { t.Completed = !t.Completed }
	err := screen.tasks.Mutate(ctx, taskID, flip, flip, func(ctx context.Context) error {
		return b.taskSvc.SetCompleted(ctx, taskID, target)
	})
	if err != nil {
		if errors.Is(err, optimistic.ErrPendingRecord) {
			return b.sendText(chatID, "⏳ That task is still saving.")
		}
		if sendErr := b.sendText(chatID, "❌ Couldn't save the change, reverted."); sendErr != nil {
			return sendErr
		}
	}
	return b.renderChecklist(ctx, chatID, screen)
}

func (b *Bot) archiveChecklist(ctx context.Context, chatID int64, checklistID string) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		if err := b.checklistSvc.Archive(ctx, userID, checklistID); err != nil {
			if errors.Is(err, service.ErrNotOwner) {
				return b.sendText(chatID, "Only the owner can archive a checklist.")
			}
			return fmt.Errorf("archive checklist: %w", err)
		}
		return b.sendText(chatID, "🗄 Archived. It won't show up in /lists anymore.")
	})
}
