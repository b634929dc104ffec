package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"taskmate/internal/model"
	"taskmate/internal/optimistic"
)

// sendTaskView renders a single task with its comment thread.
func (b *Bot) sendTaskView(ctx context.Context, chatID int64, taskID string) error {
	task, err := b.currentTask(ctx, chatID, taskID)
	if err != nil {
		return err
	}

	var sb strings.Builder
	mark := "⬜"
	if task.Completed {
		mark = "☑️"
	}
	fmt.Fprintf(&sb, "%s <b>%s</b>\n", mark, escape(task.Title))
	if task.Description != "" {
		fmt.Fprintf(&sb, "%s\n", escape(task.Description))
	}
	if task.Image != "" {
		fmt.Fprintf(&sb, "🖼 %s\n", escape(task.Image))
	}
	fmt.Fprintf(&sb, "❤️ %d\n", task.Likes)

	comments, err := b.commentSvc.ListWithAuthors(ctx, taskID)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	if len(comments) > 0 {
		sb.WriteString("\n💬 <b>Comments</b>\n")
		for _, c := range comments {
			fmt.Fprintf(&sb, "<b>%s</b>: %s\n", escape(c.AuthorName), escape(c.Text))
		}
	} else {
		sb.WriteString("\nNo comments yet.")
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❤️ Like", cbLikePrefix+taskID),
			tgbotapi.NewInlineKeyboardButtonData("💬 Comment", cbCommentPrefix+taskID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to checklist", cbOpenTaskParent(task)),
		),
	)
	return b.sendWithMarkup(chatID, sb.String(), markup)
}

func cbOpenTaskParent(task *model.Task) string {
	return cbOpenPrefix + task.ChecklistID
}

// currentTask prefers the open screen's optimistic copy over a fetch.
func (b *Bot) currentTask(ctx context.Context, chatID int64, taskID string) (*model.Task, error) {
	if screen := b.screen(chatID); screen != nil {
		if task, ok := screen.tasks.Get(taskID); ok {
			return &task, nil
		}
	}
	task, err := b.taskSvc.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}
	return task, nil
}

// likeTask bumps the counter locally first when the task sits on the
// open screen, backing the bump out if the write fails.
func (b *Bot) likeTask(ctx context.Context, chatID int64, taskID string) error {
	screen := b.screen(chatID)
	if screen == nil {
		if err := b.taskSvc.Like(ctx, taskID); err != nil {
			return fmt.Errorf("like task: %w", err)
		}
		return b.sendTaskView(ctx, chatID, taskID)
	}

	err := screen.tasks.Mutate(ctx, taskID,
		func(t *model.Task) { t.Likes++ },
		func(t *model.Task) { t.Likes-- },
		func(ctx context.Context) error { return b.taskSvc.Like(ctx, taskID) },
	)
	switch {
	case errors.Is(err, optimistic.ErrPendingRecord):
		return b.sendText(chatID, "⏳ That task is still saving.")
	case errors.Is(err, optimistic.ErrNotFound):
		// Viewed from outside the open checklist.
		if err := b.taskSvc.Like(ctx, taskID); err != nil {
			return fmt.Errorf("like task: %w", err)
		}
	case err != nil:
		if sendErr := b.sendText(chatID, "❌ Couldn't save the like, reverted."); sendErr != nil {
			return sendErr
		}
	}
	return b.sendTaskView(ctx, chatID, taskID)
}

func (b *Bot) startComment(chatID int64, taskID string) error {
	b.setConversation(chatID, &conversationState{stage: stageCommentText, taskID: taskID})
	return b.sendWithMarkup(chatID, "💬 Type your comment.", cancelKeyboard())
}

func (b *Bot) finishComment(ctx context.Context, chatID int64, taskID, text string) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		view, err := b.commentSvc.Add(ctx, taskID, userID, text)
		if err != nil {
			return b.sendText(chatID, fmt.Sprintf("Couldn't post the comment: %s", escape(err.Error())))
		}
		if err := b.sendText(chatID, fmt.Sprintf("💬 <b>%s</b>: %s", escape(view.AuthorName), escape(view.Text))); err != nil {
			return err
		}
		return b.sendTaskView(ctx, chatID, taskID)
	})
}
