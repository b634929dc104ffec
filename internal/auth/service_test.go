package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmate/internal/model"
)

type fakeAccountStore struct {
	accounts map[string]model.Account
}

func (f *fakeAccountStore) Create(_ context.Context, account *model.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	f.accounts[account.Email] = *account
	return nil
}

func (f *fakeAccountStore) FindByEmail(_ context.Context, email string) (*model.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &account, nil
}

type fakeProfileStore struct {
	profiles map[string]model.Profile
}

func (f *fakeProfileStore) Create(_ context.Context, profile *model.Profile) error {
	f.profiles[profile.ID] = *profile
	return nil
}

type fakeSessionStore struct {
	byChat map[int64]model.Session
}

func (f *fakeSessionStore) Replace(_ context.Context, chatID int64, accountID string) (*model.Session, error) {
	session := model.Session{Token: uuid.NewString(), AccountID: accountID, ChatID: chatID}
	f.byChat[chatID] = session
	return &session, nil
}

func (f *fakeSessionStore) FindByChat(_ context.Context, chatID int64) (*model.Session, error) {
	session, ok := f.byChat[chatID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

func (f *fakeSessionStore) DeleteByChat(_ context.Context, chatID int64) error {
	delete(f.byChat, chatID)
	return nil
}

func newTestService() (*Service, *fakeAccountStore, *fakeProfileStore, *fakeSessionStore) {
	accounts := &fakeAccountStore{accounts: make(map[string]model.Account)}
	profiles := &fakeProfileStore{profiles: make(map[string]model.Profile)}
	sessions := &fakeSessionStore{byChat: make(map[int64]model.Session)}
	return NewService(accounts, profiles, sessions), accounts, profiles, sessions
}

func TestSignUpCreatesAccountAndProfile(t *testing.T) {
	svc, _, profiles, _ := newTestService()

	account, err := svc.SignUp(context.Background(), "Alice@Example.com", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if account.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", account.Email)
	}
	if account.PasswordHash == "secret1" || account.PasswordHash == "" {
		t.Fatal("password stored unhashed")
	}

	profile, ok := profiles.profiles[account.ID]
	if !ok {
		t.Fatal("default profile not created")
	}
	if profile.Username != "alice" {
		t.Fatalf("Username = %q, want the email local part", profile.Username)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), "not-an-email", "secret1"); err == nil {
		t.Fatal("SignUp accepted an invalid email")
	}
	if _, err := svc.SignUp(context.Background(), "a@b.com", "short"); err == nil {
		t.Fatal("SignUp accepted a short password")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), "a@b.com", "secret1"); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), "A@B.com", "secret2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate SignUp err = %v, want ErrEmailTaken", err)
	}
}

func TestSignInBindsChat(t *testing.T) {
	svc, _, _, _ := newTestService()
	account, _ := svc.SignUp(context.Background(), "a@b.com", "secret1")

	session, err := svc.SignIn(context.Background(), 42, "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if session.AccountID != account.ID || session.ChatID != 42 {
		t.Fatalf("session = %+v", session)
	}

	got, err := svc.Session(context.Background(), 42)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if got.AccountID != account.ID {
		t.Fatalf("Session resolved %q", got.AccountID)
	}
}

func TestSignInWrongCredentials(t *testing.T) {
	svc, _, _, _ := newTestService()
	svc.SignUp(context.Background(), "a@b.com", "secret1")

	if _, err := svc.SignIn(context.Background(), 1, "a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.SignIn(context.Background(), 1, "ghost@b.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignOutEndsSession(t *testing.T) {
	svc, _, _, _ := newTestService()
	svc.SignUp(context.Background(), "a@b.com", "secret1")
	svc.SignIn(context.Background(), 42, "a@b.com", "secret1")

	if err := svc.SignOut(context.Background(), 42); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, err := svc.Session(context.Background(), 42); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Session after SignOut err = %v, want ErrNoSession", err)
	}
}
