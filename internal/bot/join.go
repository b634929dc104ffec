package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"taskmate/internal/auth"
	"taskmate/internal/link"
	"taskmate/internal/service"
)

func parseStartInvite(payload string) (string, bool) {
	return link.ParseStartPayload(payload)
}

// handleJoinCommand accepts /join <link> with a pasted invite link, or
// explains the format.
func (b *Bot) handleJoinCommand(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID
	raw := strings.TrimSpace(msg.CommandArguments())
	if raw == "" {
		return b.sendText(chatID, "Paste the invite link after the command, e.g.\n<code>/join https://taskmate.app/join/abc</code>")
	}
	invitationID, err := link.ParseJoinURL(raw)
	if err != nil {
		return b.sendText(chatID, "That doesn't look like an invite link. It should contain <code>/join/&lt;id&gt;</code>.")
	}
	return b.startJoin(ctx, chatID, invitationID)
}

// startJoin runs the joiner pipeline. A signed-out chat has the invite
// stashed and is walked through login first.
func (b *Bot) startJoin(ctx context.Context, chatID int64, invitationID string) error {
	userID, err := b.currentUser(ctx, chatID)
	if err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			b.setPendingJoin(chatID, invitationID)
			if err := b.sendText(chatID, "🔐 Sign in to accept the invite; I'll finish the join right after."); err != nil {
				return err
			}
			return b.startLogin(chatID)
		}
		return err
	}

	checklist, err := b.inviteSvc.Redeem(ctx, invitationID, userID, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrInviteInvalid) {
			return b.sendText(chatID, "❌ This invite link is invalid or has expired. Ask for a fresh one.")
		}
		return fmt.Errorf("redeem invitation: %w", err)
	}

	if err := b.sendText(chatID, fmt.Sprintf("🎉 You joined <b>%s</b>.", escape(checklist.Name))); err != nil {
		return err
	}
	return b.openChecklist(ctx, chatID, checklist.ID)
}

// shareChecklist issues an invitation and hands back both link forms:
// the web URL for anywhere, and the t.me deep link for Telegram chats.
func (b *Bot) shareChecklist(ctx context.Context, chatID int64, checklistID string) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		invitation, err := b.inviteSvc.Issue(ctx, checklistID, userID, time.Now())
		if err != nil {
			if errors.Is(err, service.ErrNotMember) {
				return b.sendText(chatID, "You can only share checklists you're a member of.")
			}
			return fmt.Errorf("issue invitation: %w", err)
		}

		webURL := link.JoinURL(b.config.PublicBaseURL, invitation.ID)
		botURL := link.BotURL(b.api.Self.UserName, invitation.ID)

		text := fmt.Sprintf(
			"🔗 <b>Invite link</b> (valid for 7 days):\n<code>%s</code>\n\nOr share the button below inside Telegram.",
			escape(webURL),
		)
		markup := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("Open in Telegram", botURL),
			),
		)
		return b.sendWithMarkup(chatID, text, markup)
	})
}
