package repository

import (
	"context"

	"github.com/yukikurage/assignment-tracker/internal/models"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create inserts a message
func (r *GormMessageRepository) Create(ctx context.Context, message *models.AssignmentMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByAssignment returns the messages attached to an assignment in storage order
func (r *GormMessageRepository) ListByAssignment(ctx context.Context, assignmentID uint64) ([]models.AssignmentMessage, error) {
	messages := []models.AssignmentMessage{}
	if err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
