package models

import "time"

// AssignmentMessage is a note posted to an assignment's thread.
// AssignmentID and AuthorID are plain columns without foreign key constraints.
type AssignmentMessage struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	AssignmentID uint64    `gorm:"not null;index" json:"assignment_id"`
	AuthorID     uint64    `gorm:"not null" json:"author_id"`
}

func (AssignmentMessage) TableName() string { return "messages" }
