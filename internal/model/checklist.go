package model

import "time"

// Checklist lifecycle states.
const (
	StateActive   = "active"
	StateArchived = "archived"
)

// Checklist is a shared list of tasks.
type Checklist struct {
	ID          string `gorm:"primaryKey;size:36"`
	OwnerID     string `gorm:"index;size:36;not null"`
	Name        string `gorm:"not null"`
	Description string
	Photo       string
	State       string `gorm:"default:active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChecklistMember is one row per member. The unique pair gives the
// member set its set semantics: appending an existing member is a no-op.
type ChecklistMember struct {
	ID          uint   `gorm:"primaryKey"`
	ChecklistID string `gorm:"index:idx_checklist_member,unique;size:36;not null"`
	UserID      string `gorm:"index:idx_checklist_member,unique;size:36;not null"`
	JoinedAt    time.Time
}
