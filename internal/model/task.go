package model

import "time"

// Task is a single item in a checklist.
type Task struct {
	ID          string `gorm:"primaryKey;size:36"`
	ChecklistID string `gorm:"index;size:36;not null"`
	Title       string `gorm:"not null"`
	Description string
	Image       string
	Completed   bool `gorm:"default:false"`
	Likes       int  `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
