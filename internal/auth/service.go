package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskmate/internal/model"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrNoSession          = errors.New("not signed in")
)

// AccountStore persists auth identities.
type AccountStore interface {
	Create(ctx context.Context, account *model.Account) error
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
}

// ProfileStore creates the default profile at sign-up.
type ProfileStore interface {
	Create(ctx context.Context, profile *model.Profile) error
}

// SessionStore binds accounts to chats.
type SessionStore interface {
	Replace(ctx context.Context, chatID int64, accountID string) (*model.Session, error)
	FindByChat(ctx context.Context, chatID int64) (*model.Session, error)
	DeleteByChat(ctx context.Context, chatID int64) error
}

// Service implements session-based identity: sign-up, password sign-in
// and chat-scoped sessions.
type Service struct {
	accounts AccountStore
	profiles ProfileStore
	sessions SessionStore
}

func NewService(accounts AccountStore, profiles ProfileStore, sessions SessionStore) *Service {
	return &Service{accounts: accounts, profiles: profiles, sessions: sessions}
}

// SignUp registers an account and its default profile. The username
// starts as the local part of the email.
func (s *Service) SignUp(ctx context.Context, email, password string) (*model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := model.Account{Email: email, PasswordHash: string(hash)}
	if err := s.accounts.Create(ctx, &account); err != nil {
		return nil, err
	}

	profile := model.Profile{ID: account.ID, Username: usernameFromEmail(email)}
	if err := s.profiles.Create(ctx, &profile); err != nil {
		return nil, err
	}

	return &account, nil
}

// SignIn verifies the password and signs the chat in as the account.
func (s *Service) SignIn(ctx context.Context, chatID int64, email, password string) (*model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.sessions.Replace(ctx, chatID, account.ID)
}

func (s *Service) SignOut(ctx context.Context, chatID int64) error {
	return s.sessions.DeleteByChat(ctx, chatID)
}

// Session returns the chat's session or ErrNoSession.
func (s *Service) Session(ctx context.Context, chatID int64) (*model.Session, error) {
	session, err := s.sessions.FindByChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return session, nil
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
