package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"taskmate/internal/auth"
	"taskmate/internal/config"
	"taskmate/internal/model"
	"taskmate/internal/optimistic"
	"taskmate/internal/service"
)

type conversationStage int

const (
	stageNone conversationStage = iota
	stageRegisterEmail
	stageRegisterPassword
	stageRegisterConfirm
	stageLoginEmail
	stageLoginPassword
	stageChecklistName
	stageChecklistDescription
	stageChecklistPhoto
	stageTaskTitle
	stageTaskDescription
	stageTaskImage
	stageCommentText
	stageBioText
	stageAvatarPhoto
)

type conversationState struct {
	stage conversationStage

	email    string
	password string

	checklist service.ChecklistInput
	task      service.TaskInput

	checklistID string
	taskID      string
}

// checklistScreen is one chat's open checklist: its id plus the
// optimistic task list that screen owns.
type checklistScreen struct {
	checklistID string
	tasks       *optimistic.List[model.Task]
}

// SessionLister feeds the daily digest fan-out.
type SessionLister interface {
	ListAll(ctx context.Context) ([]model.Session, error)
}

// Bot aggregates the Telegram API with services. Each chat is one screen
// instance; per-chat state lives in the maps below.
type Bot struct {
	api          *tgbotapi.BotAPI
	authSvc      *auth.Service
	checklistSvc *service.ChecklistService
	taskSvc      *service.TaskService
	commentSvc   *service.CommentService
	profileSvc   *service.ProfileService
	inviteSvc    *service.InviteService
	digestSvc    *service.DigestService
	sessions     SessionLister
	config       *config.Config

	conversations map[int64]*conversationState
	screens       map[int64]*checklistScreen
	pendingJoins  map[int64]string
	mu            sync.Mutex
}

func New(
	token string,
	authSvc *auth.Service,
	checklistSvc *service.ChecklistService,
	taskSvc *service.TaskService,
	commentSvc *service.CommentService,
	profileSvc *service.ProfileService,
	inviteSvc *service.InviteService,
	digestSvc *service.DigestService,
	sessions SessionLister,
	cfg *config.Config,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:           api,
		authSvc:       authSvc,
		checklistSvc:  checklistSvc,
		taskSvc:       taskSvc,
		commentSvc:    commentSvc,
		profileSvc:    profileSvc,
		inviteSvc:     inviteSvc,
		digestSvc:     digestSvc,
		sessions:      sessions,
		config:        cfg,
		conversations: make(map[int64]*conversationState),
		screens:       make(map[int64]*checklistScreen),
		pendingJoins:  make(map[int64]string),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Printf("handle callback: %v", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Printf("handle message: %v", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}
	chatID := msg.Chat.ID

	if !msg.IsCommand() && isCancelInput(msg.Text) {
		b.clearConversation(chatID)
		return b.sendText(chatID, "⏪ Cancelled. Back to the main menu.")
	}

	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s %s", msg.From.ID, msg.Command(), msg.CommandArguments())
		return b.handleCommand(ctx, msg)
	}

	if b.hasConversation(chatID) {
		return b.handleConversation(ctx, msg)
	}

	if handled, err := b.handleMenuAlias(ctx, msg); handled {
		return err
	}

	// Free text on the home screen doubles as the search box.
	if query := strings.TrimSpace(msg.Text); query != "" {
		if _, err := b.currentUser(ctx, chatID); err == nil {
			return b.sendHome(ctx, chatID, query)
		}
	}

	return b.sendText(chatID, "I didn't catch that. Try /lists to see your checklists, or /help for all commands.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.handleHelp(msg)
	case "register":
		return b.startRegister(chatID)
	case "login":
		return b.startLogin(chatID)
	case "logout":
		return b.handleLogout(ctx, chatID)
	case "lists":
		return b.requireUserThen(ctx, chatID, func(string) error {
			return b.sendHome(ctx, chatID, "")
		})
	case "new":
		return b.requireUserThen(ctx, chatID, func(string) error {
			return b.startNewChecklist(chatID)
		})
	case "join":
		return b.handleJoinCommand(ctx, msg)
	case "profile":
		return b.requireUserThen(ctx, chatID, func(userID string) error {
			return b.sendProfile(ctx, chatID, userID)
		})
	case "digest":
		return b.handleDigest(ctx, chatID)
	case "cancel":
		b.clearConversation(chatID)
		return b.sendText(chatID, "⏪ Cancelled.")
	default:
		return b.sendText(chatID, "Unknown command. See /help.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID

	// Deep links open the bot with a start payload carrying the invite.
	if payload := strings.TrimSpace(msg.CommandArguments()); payload != "" {
		if invitationID, ok := parseStartInvite(payload); ok {
			return b.startJoin(ctx, chatID, invitationID)
		}
	}

	text := "👋 Hi! I'm <b>taskmate</b> — shared checklists for you and your people.\n\n" +
		"• /register — create an account\n" +
		"• /login — sign in\n" +
		"• /lists — your checklists\n" +
		"• /new — create a checklist\n" +
		"• /join — follow an invite link\n" +
		"• /profile — your profile\n" +
		"• /help — all commands"
	return b.sendText(chatID, text)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := "ℹ️ <b>Commands</b>\n" +
		"• /lists — your checklists; type any text to search them\n" +
		"• /new — create a checklist step by step\n" +
		"• /join &lt;link&gt; — join a checklist from an invite link\n" +
		"• /profile — view and edit your profile\n" +
		"• /digest — today's progress summary\n" +
		"• /register, /login, /logout — account\n" +
		"• /cancel — abort the current dialog"
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleDigest(ctx context.Context, chatID int64) error {
	return b.requireUserThen(ctx, chatID, func(userID string) error {
		summary, err := b.digestSvc.DailySummary(ctx, userID, time.Now())
		if err != nil {
			return b.sendText(chatID, fmt.Sprintf("Couldn't build the digest: %s", escape(err.Error())))
		}
		if summary == "" {
			return b.sendText(chatID, "No checklists yet — nothing to report.")
		}
		return b.sendText(chatID, summary)
	})
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	chatID := msg.Chat.ID
	switch strings.TrimSpace(strings.ToLower(msg.Text)) {
	case strings.ToLower(menuLabelLists):
		return true, b.requireUserThen(ctx, chatID, func(string) error {
			return b.sendHome(ctx, chatID, "")
		})
	case strings.ToLower(menuLabelNewList):
		return true, b.requireUserThen(ctx, chatID, func(string) error {
			return b.startNewChecklist(chatID)
		})
	case strings.ToLower(menuLabelProfile):
		return true, b.requireUserThen(ctx, chatID, func(userID string) error {
			return b.sendProfile(ctx, chatID, userID)
		})
	case strings.ToLower(menuLabelHelp):
		return true, b.handleHelp(msg)
	default:
		return false, nil
	}
}

// SendDailyDigests delivers progress summaries to every signed-in chat.
func (b *Bot) SendDailyDigests(ctx context.Context) error {
	sessions, err := b.sessions.ListAll(ctx)
	if err != nil {
		return err
	}
	when := time.Now()
	for _, session := range sessions {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		summary, err := b.digestSvc.DailySummary(ctx, session.AccountID, when)
		if err != nil {
			log.Printf("build digest for %s: %v", session.AccountID, err)
			continue
		}
		if summary == "" {
			continue
		}
		if err := b.sendText(session.ChatID, summary); err != nil {
			log.Printf("send digest to %d: %v", session.ChatID, err)
		}
	}
	return nil
}

// SweepInvitations deletes expired invitations.
func (b *Bot) SweepInvitations(ctx context.Context) error {
	removed, err := b.inviteSvc.Sweep(ctx, time.Now())
	if err != nil {
		return err
	}
	if removed > 0 {
		log.Printf("[info] swept %d expired invitations", removed)
	}
	return nil
}

// currentUser resolves the chat's session to a user id.
func (b *Bot) currentUser(ctx context.Context, chatID int64) (string, error) {
	session, err := b.authSvc.Session(ctx, chatID)
	if err != nil {
		return "", err
	}
	return session.AccountID, nil
}

// requireUserThen runs fn with the signed-in user, or redirects the chat
// to the login flow.
func (b *Bot) requireUserThen(ctx context.Context, chatID int64, fn func(userID string) error) error {
	userID, err := b.currentUser(ctx, chatID)
	if err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			return b.sendText(chatID, "🔐 You need to sign in first: /login (or /register).")
		}
		return err
	}
	return fn(userID)
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendWithMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) setConversation(chatID int64, state *conversationState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conversations[chatID] = state
}

func (b *Bot) getConversation(chatID int64) *conversationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[chatID]
}

func (b *Bot) hasConversation(chatID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.conversations[chatID]
	return ok
}

func (b *Bot) clearConversation(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conversations, chatID)
}

// openScreen swaps the chat onto a checklist screen, tearing the old one
// down so its in-flight updates are discarded.
func (b *Bot) openScreen(chatID int64, checklistID string) *checklistScreen {
	screen := &checklistScreen{
		checklistID: checklistID,
		tasks:       optimistic.NewList(func(t model.Task) string { return t.ID }),
	}
	b.mu.Lock()
	if old, ok := b.screens[chatID]; ok {
		old.tasks.Close()
	}
	b.screens[chatID] = screen
	b.mu.Unlock()
	return screen
}

func (b *Bot) screen(chatID int64) *checklistScreen {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.screens[chatID]
}

func (b *Bot) setPendingJoin(chatID int64, invitationID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pendingJoins[chatID] = invitationID
}

func (b *Bot) takePendingJoin(chatID int64) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.pendingJoins[chatID]
	if ok {
		delete(b.pendingJoins, chatID)
	}
	return id, ok
}
