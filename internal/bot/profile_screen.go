package bot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) sendProfile(ctx context.Context, chatID int64, userID string) error {
	profile, err := b.profileSvc.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 <b>%s</b>\n", escape(profile.Username))
	if profile.Bio != "" {
		fmt.Fprintf(&sb, "%s\n", escape(profile.Bio))
	} else {
		sb.WriteString("<i>No bio yet.</i>\n")
	}
	if profile.AvatarURL != "" {
		fmt.Fprintf(&sb, "🖼 %s\n", escape(profile.AvatarURL))
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Edit bio", cbEditBio),
			tgbotapi.NewInlineKeyboardButtonData("🖼 Change avatar", cbEditAvatar),
		),
	)
	return b.sendWithMarkup(chatID, sb.String(), markup)
}

func (b *Bot) startBioEdit(chatID int64) error {
	b.setConversation(chatID, &conversationState{stage: stageBioText})
	return b.sendWithMarkup(chatID, "✏️ Send your new bio, or \"-\" to clear it.", cancelKeyboard())
}

func (b *Bot) finishBioEdit(ctx context.Context, chatID int64, text string) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		if err := b.profileSvc.UpdateBio(ctx, userID, text); err != nil {
			return b.sendText(chatID, fmt.Sprintf("Couldn't update the bio: %s", escape(err.Error())))
		}
		return b.sendProfile(ctx, chatID, userID)
	})
}

func (b *Bot) startAvatarEdit(chatID int64) error {
	b.setConversation(chatID, &conversationState{stage: stageAvatarPhoto})
	return b.sendWithMarkup(chatID, "🖼 Send the photo you'd like as your avatar.", cancelKeyboard())
}

// finishAvatarUpload pulls the largest size of the sent photo from
// Telegram's file storage and hands the stream to the profile service.
func (b *Bot) finishAvatarUpload(ctx context.Context, chatID int64, msg *tgbotapi.Message) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		if len(msg.Photo) == 0 {
			return b.sendText(chatID, "That wasn't a photo. Send an image, or /cancel.")
		}
		// Sizes come smallest first.
		fileID := msg.Photo[len(msg.Photo)-1].FileID

		fileURL, err := b.api.GetFileDirectURL(fileID)
		if err != nil {
			return fmt.Errorf("resolve file url: %w", err)
		}
		resp, err := http.Get(fileURL)
		if err != nil {
			return fmt.Errorf("download avatar: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("download avatar: status %d", resp.StatusCode)
		}

		avatarURL, err := b.profileSvc.SetAvatar(ctx, userID, extFromURL(fileURL), resp.Body)
		if err != nil {
			return fmt.Errorf("set avatar: %w", err)
		}
		if err := b.sendText(chatID, fmt.Sprintf("✅ Avatar updated:\n%s", escape(avatarURL))); err != nil {
			return err
		}
		return b.sendProfile(ctx, chatID, userID)
	})
}

func extFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(path.Ext(u.Path), ".")
}
