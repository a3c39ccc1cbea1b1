package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/assignment-tracker/internal/models"
	"github.com/yukikurage/assignment-tracker/internal/repository"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserService exposes the read-only user directory.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns every user
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns the user with the given ID or ErrUserNotFound
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
