package model

import "time"

// Account is the auth identity behind a profile.
type Account struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session binds a signed-in account to a chat. One session per chat.
type Session struct {
	Token     string `gorm:"primaryKey;size:36"`
	AccountID string `gorm:"index;size:36;not null"`
	ChatID    int64  `gorm:"uniqueIndex"`
	CreatedAt time.Time
}
