package repository

import (
	"context"

	"github.com/yukikurage/assignment-tracker/internal/models"
)

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	// List returns every assignment with author and assignees loaded
	List(ctx context.Context) ([]models.Assignment, error)

	// Create inserts an assignment and links its assignees
	Create(ctx context.Context, assignment *models.Assignment) error

	// FindByID finds an assignment by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Assignment, error)

	// UpdateStatus overwrites the status column of an assignment
	UpdateStatus(ctx context.Context, id uint64, status models.AssignmentStatus) error
}

// MessageRepository defines the interface for assignment message data access
type MessageRepository interface {
	// Create inserts a message
	Create(ctx context.Context, message *models.AssignmentMessage) error

	// ListByAssignment returns the messages attached to an assignment
	ListByAssignment(ctx context.Context, assignmentID uint64) ([]models.AssignmentMessage, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List returns every user
	List(ctx context.Context) ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)
}
