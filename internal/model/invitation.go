package model

import "time"

// Invitation is a time-limited join token for a checklist. The ID itself
// is the token embedded in invite links.
type Invitation struct {
	ID          string    `gorm:"primaryKey;size:36"`
	ChecklistID string    `gorm:"index;size:36;not null"`
	CreatedBy   string    `gorm:"size:36;not null"`
	ExpiresAt   time.Time `gorm:"index"`
	CreatedAt   time.Time
}
