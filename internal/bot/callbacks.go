package bot

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.Message == nil || cb.Message.Chat == nil {
		return nil
	}
	chatID := cb.Message.Chat.ID

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("ack callback: %v", err)
	}

	data := cb.Data
	switch {
	case strings.HasPrefix(data, cbOpenPrefix):
		return b.openChecklist(ctx, chatID, strings.TrimPrefix(data, cbOpenPrefix))

	case strings.HasPrefix(data, cbTogglePrefix):
		return b.toggleTask(ctx, chatID, strings.TrimPrefix(data, cbTogglePrefix))

	case strings.HasPrefix(data, cbTaskPrefix):
		return b.sendTaskView(ctx, chatID, strings.TrimPrefix(data, cbTaskPrefix))

	case strings.HasPrefix(data, cbLikePrefix):
		return b.likeTask(ctx, chatID, strings.TrimPrefix(data, cbLikePrefix))

	case strings.HasPrefix(data, cbCommentPrefix):
		return b.startComment(chatID, strings.TrimPrefix(data, cbCommentPrefix))

	case strings.HasPrefix(data, cbAddTaskPrefix):
		checklistID := strings.TrimPrefix(data, cbAddTaskPrefix)
		b.setConversation(chatID, &conversationState{stage: stageTaskTitle, checklistID: checklistID})
		return b.sendWithMarkup(chatID, "📝 What's the task?", cancelKeyboard())

	case strings.HasPrefix(data, cbSharePrefix):
		return b.shareChecklist(ctx, chatID, strings.TrimPrefix(data, cbSharePrefix))

	case strings.HasPrefix(data, cbArchivePrefix):
		return b.archiveChecklist(ctx, chatID, strings.TrimPrefix(data, cbArchivePrefix))

	case data == cbEditBio:
		return b.startBioEdit(chatID)

	case data == cbEditAvatar:
		return b.startAvatarEdit(chatID)

	case data == cbPending:
		// The placeholder row is inert until the create settles.
		return nil

	default:
		log.Printf("unknown callback data: %q", data)
		return nil
	}
}
