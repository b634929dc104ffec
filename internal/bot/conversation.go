package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleConversation advances the chat's active dialog one step per
// incoming message.
func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID
	state := b.getConversation(chatID)
	if state == nil {
		return nil
	}

	text := strings.TrimSpace(msg.Text)
	switch state.stage {

	// Registration: email → password → confirm.
	case stageRegisterEmail:
		state.email = text
		state.stage = stageRegisterPassword
		return b.sendWithMarkup(chatID, "🔑 Choose a password (at least 6 characters).", cancelKeyboard())
	case stageRegisterPassword:
		state.password = text
		state.stage = stageRegisterConfirm
		return b.sendWithMarkup(chatID, "🔁 Type the password again to confirm.", cancelKeyboard())
	case stageRegisterConfirm:
		if text != state.password {
			state.stage = stageRegisterPassword
			return b.sendWithMarkup(chatID, "Passwords don't match. Choose a password again.", cancelKeyboard())
		}
		err := b.finishRegister(ctx, chatID, state.email, state.password)
		b.clearConversation(chatID)
		return err

	// Login: email → password.
	case stageLoginEmail:
		state.email = text
		state.stage = stageLoginPassword
		return b.sendWithMarkup(chatID, "🔑 And your password?", cancelKeyboard())
	case stageLoginPassword:
		err := b.finishLogin(ctx, chatID, state.email, text)
		b.clearConversation(chatID)
		return err

	// New checklist: name → description → photo URL.
	case stageChecklistName:
		if text == "" {
			return b.sendWithMarkup(chatID, "The name can't be empty. What should the checklist be called?", cancelKeyboard())
		}
		state.checklist.Name = text
		state.stage = stageChecklistDescription
		return b.sendWithMarkup(chatID, "✏️ Add a short description (or hit Skip).", skipKeyboard())
	case stageChecklistDescription:
		if !isSkipInput(text) {
			state.checklist.Description = text
		}
		state.stage = stageChecklistPhoto
		return b.sendWithMarkup(chatID, "🖼 Paste a cover photo URL (or hit Skip).", skipKeyboard())
	case stageChecklistPhoto:
		if !isSkipInput(text) {
			state.checklist.Photo = text
		}
		err := b.finishChecklistCreation(ctx, chatID, state.checklist)
		b.clearConversation(chatID)
		return err

	// New task: title → description → image URL, then the optimistic
	// create against the open checklist screen.
	case stageTaskTitle:
		if text == "" {
			return b.sendWithMarkup(chatID, "The title is required. What's the task?", cancelKeyboard())
		}
		state.task.Title = text
		state.stage = stageTaskDescription
		return b.sendWithMarkup(chatID, "✏️ Add a description (or hit Skip).", skipKeyboard())
	case stageTaskDescription:
		if !isSkipInput(text) {
			state.task.Description = text
		}
		state.stage = stageTaskImage
		return b.sendWithMarkup(chatID, "🖼 Paste an image URL (or hit Skip).", skipKeyboard())
	case stageTaskImage:
		if !isSkipInput(text) {
			state.task.Image = text
		}
		err := b.finishTaskCreation(ctx, chatID, state.checklistID, state.task)
		b.clearConversation(chatID)
		return err

	// Comment on the task screen.
	case stageCommentText:
		err := b.finishComment(ctx, chatID, state.taskID, text)
		b.clearConversation(chatID)
		return err

	// Profile edits.
	case stageBioText:
		err := b.finishBioEdit(ctx, chatID, text)
		b.clearConversation(chatID)
		return err
	case stageAvatarPhoto:
		err := b.finishAvatarUpload(ctx, chatID, msg)
		b.clearConversation(chatID)
		return err

	default:
		b.clearConversation(chatID)
		return b.sendText(chatID, "Dialog reset. Try again from the menu.")
	}
}
