package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"taskmate/internal/auth"
)

func (b *Bot) startRegister(chatID int64) error {
	b.setConversation(chatID, &conversationState{stage: stageRegisterEmail})
	return b.sendWithMarkup(chatID, "📧 What's your email?", cancelKeyboard())
}

func (b *Bot) startLogin(chatID int64) error {
	b.setConversation(chatID, &conversationState{stage: stageLoginEmail})
	return b.sendWithMarkup(chatID, "📧 Your email?", cancelKeyboard())
}

func (b *Bot) handleLogout(ctx context.Context, chatID int64) error {
	if err := b.authSvc.SignOut(ctx, chatID); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return b.sendText(chatID, "👋 Signed out. Come back with /login.")
}

func (b *Bot) finishRegister(ctx context.Context, chatID int64, email, password string) error {
	account, err := b.authSvc.SignUp(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return b.sendText(chatID, "That email is already registered. Try /login instead.")
		}
		return b.sendText(chatID, fmt.Sprintf("Couldn't register: %s", escape(err.Error())))
	}

	if _, err := b.authSvc.SignIn(ctx, chatID, email, password); err != nil {
		return fmt.Errorf("sign in after register: %w", err)
	}
	log.Printf("[info] account %s registered via chat %d", account.ID, chatID)

	if err := b.sendText(chatID, "✅ Account created and signed in. Use /new to create your first checklist."); err != nil {
		return err
	}
	return b.resumePendingJoin(ctx, chatID)
}

func (b *Bot) finishLogin(ctx context.Context, chatID int64, email, password string) error {
	session, err := b.authSvc.SignIn(ctx, chatID, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return b.sendText(chatID, "❌ Wrong email or password. Try /login again.")
		}
		return fmt.Errorf("sign in: %w", err)
	}
	log.Printf("[info] chat %d signed in as %s", chatID, session.AccountID)

	if err := b.sendText(chatID, "✅ Signed in. /lists shows your checklists."); err != nil {
		return err
	}
	return b.resumePendingJoin(ctx, chatID)
}

// resumePendingJoin picks up an invite the chat followed before it was
// signed in.
func (b *Bot) resumePendingJoin(ctx context.Context, chatID int64) error {
	invitationID, ok := b.takePendingJoin(chatID)
	if !ok {
		return nil
	}
	return b.startJoin(ctx, chatID, invitationID)
}
