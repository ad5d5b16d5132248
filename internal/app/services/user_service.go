package services

import (
	"context"
	"strings"

	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/pkg/apperrors"
)

// UserService defines the interface for user operations
type UserService interface {
	RegisterUser(ctx context.Context, user *models.User) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	store    UserStore
	precheck bool
}

// NewUserService creates a new user service instance
func NewUserService(store UserStore, opts Options) UserService {
	return &userServiceImpl{
		store:    store,
		precheck: opts.ConflictPrecheck,
	}
}

// RegisterUser stores a new user with a unique username and email
func (s *userServiceImpl) RegisterUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil {
		return nil, apperrors.NewValidationError("username and email are required")
	}
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	if user.Username == "" || user.Email == "" {
		return nil, apperrors.NewValidationError("username and email are required")
	}

	if s.precheck {
		if err := s.store.FindConflict(ctx, user.Username, user.Email); err != nil {
			return nil, err
		}
	}

	return s.store.Create(ctx, user)
}

// ListUsers returns every user
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.store.List(ctx)
}
