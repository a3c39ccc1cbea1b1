package repository

import (
	"context"

	"github.com/yukikurage/assignment-tracker/internal/models"
	"gorm.io/gorm"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// List returns every assignment with author and assignees loaded
func (r *GormAssignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	assignments := []models.Assignment{}
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Assignees").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// Create inserts an assignment. Assignees are only linked through the join
// table; the referenced users are never inserted or updated.
func (r *GormAssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).
		Omit("Author", "Assignees.*").
		Create(assignment).Error
}

// FindByID finds an assignment by ID with optional preloading
func (r *GormAssignmentRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Assignment, error) {
	var assignment models.Assignment
	query := r.db.WithContext(ctx)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&assignment, id).Error; err != nil {
		return nil, err
	}

	return &assignment, nil
}

// UpdateStatus overwrites the status column of an assignment
func (r *GormAssignmentRepository) UpdateStatus(ctx context.Context, id uint64, status models.AssignmentStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Assignment{ID: id}).
		Update("status", status).Error
}
