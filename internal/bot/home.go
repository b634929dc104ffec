package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"taskmate/internal/projection"
)

// sendHome renders the checklist overview, optionally narrowed by a
// search query.
func (b *Bot) sendHome(ctx context.Context, chatID int64, query string) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		checklists, err := b.checklistSvc.List(ctx, userID)
		if err != nil {
			return fmt.Errorf("list checklists: %w", err)
		}

		checklists = projection.FilterChecklists(checklists, query)
		if len(checklists) == 0 {
			if strings.TrimSpace(query) != "" {
				return b.sendText(chatID, fmt.Sprintf("Nothing matches <i>%s</i>. Type another search, or /lists for everything.", escape(query)))
			}
			return b.sendText(chatID, "You have no checklists yet. Create one with /new or follow an invite link.")
		}

		var sb strings.Builder
		if strings.TrimSpace(query) != "" {
			fmt.Fprintf(&sb, "🔎 Checklists matching <i>%s</i>:\n", escape(query))
		} else {
			sb.WriteString("📋 <b>Your checklists</b>\n")
		}

		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(checklists))
		for i, c := range checklists {
			fmt.Fprintf(&sb, "%d. <b>%s</b>", i+1, escape(c.Name))
			if c.Description != "" {
				fmt.Fprintf(&sb, " — %s", escape(shortTitle(c.Description, 60)))
			}
			sb.WriteString("\n")
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(
					fmt.Sprintf("%d. %s", i+1, shortTitle(c.Name, 24)),
					cbOpenPrefix+c.ID,
				),
			))
		}
		sb.WriteString("\nTap a checklist to open it, or type text to search.")

		return b.sendWithMarkup(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
	})
}
