package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/assignment-tracker/internal/models"
	"github.com/yukikurage/assignment-tracker/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// AssignmentService handles assignment and message business logic
type AssignmentService struct {
	assignmentRepo repository.AssignmentRepository
	messageRepo    repository.MessageRepository
	now            func() time.Time
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(assignmentRepo repository.AssignmentRepository, messageRepo repository.MessageRepository) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		messageRepo:    messageRepo,
		now:            time.Now,
	}
}

// CreateAssignmentInput represents input for creating an assignment
type CreateAssignmentInput struct {
	Title       string
	Description string
	Status      models.AssignmentStatus
	AuthorID    uint64
	AssigneeIDs []uint64
}

// AddMessageInput represents input for posting a message to an assignment
type AddMessageInput struct {
	AssignmentID uint64
	AuthorID     uint64
	Message      string
}

// ListAssignments returns every assignment with author and assignees resolved
func (s *AssignmentService) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment stores a new assignment. The creation time is always taken
// from the server clock.
func (s *AssignmentService) CreateAssignment(ctx context.Context, input CreateAssignmentInput) (*models.Assignment, error) {
	if input.Status == "" {
		input.Status = models.AssignmentStatusAssigned
	}

	assignment := &models.Assignment{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		CreatedAt:   s.now().UTC(),
		AuthorID:    input.AuthorID,
	}

	for _, id := range uniqueUint64(input.AssigneeIDs) {
		assignment.Assignees = append(assignment.Assignees, models.User{ID: id})
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	created, err := s.assignmentRepo.FindByID(ctx, assignment.ID, "Author", "Assignees")
	if err != nil {
		return nil, fmt.Errorf("failed to reload assignment: %w", err)
	}

	return created, nil
}

// ChangeStatus overwrites the status of an assignment. Any string is accepted.
func (s *AssignmentService) ChangeStatus(ctx context.Context, id uint64, status models.AssignmentStatus) error {
	if _, err := s.assignmentRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to find assignment: %w", err)
	}

	if err := s.assignmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

// AddMessage stores a message bound to the given assignment. The assignment
// is not required to exist.
func (s *AssignmentService) AddMessage(ctx context.Context, input AddMessageInput) (*models.AssignmentMessage, error) {
	message := &models.AssignmentMessage{
		Message:      input.Message,
		CreatedAt:    s.now().UTC(),
		AssignmentID: input.AssignmentID,
		AuthorID:     input.AuthorID,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

// ListMessages returns the messages of an assignment
func (s *AssignmentService) ListMessages(ctx context.Context, assignmentID uint64) ([]models.AssignmentMessage, error) {
	messages, err := s.messageRepo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// uniqueUint64 removes duplicate values from a slice of uint64
func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
