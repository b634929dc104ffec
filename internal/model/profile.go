package model

import "time"

// Profile stores user-visible identity. Its ID equals the account ID.
type Profile struct {
	ID        string `gorm:"primaryKey;size:36"`
	Username  string `gorm:"not null"`
	Bio       string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
