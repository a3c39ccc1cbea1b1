package models

import "time"

// AssignmentStatus is free-form; no transition rules are enforced.
type AssignmentStatus string

const (
	AssignmentStatusAssigned AssignmentStatus = "assigned"
)

type Assignment struct {
	ID          uint64           `gorm:"primarykey" json:"id"`
	Title       string           `gorm:"type:varchar(255);not null" json:"title"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Status      AssignmentStatus `gorm:"type:varchar(255);not null;default:'assigned'" json:"status"`
	CreatedAt   time.Time        `gorm:"autoCreateTime:false" json:"created_at"`
	AuthorID    uint64           `gorm:"not null;index" json:"author_id"`

	// Relations
	Author    User   `gorm:"foreignKey:AuthorID" json:"author"`
	Assignees []User `gorm:"many2many:assignment_assignees;" json:"assignees"`
}
