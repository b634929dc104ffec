package model

import "time"

// Comment belongs to a task. The author's profile is joined at read time.
type Comment struct {
	ID        string `gorm:"primaryKey;size:36"`
	TaskID    string `gorm:"index;size:36;not null"`
	UserID    string `gorm:"size:36;not null"`
	Text      string `gorm:"not null"`
	CreatedAt time.Time
}
