package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/db"
	"github.com/yigit/student-api/internal/pkg/apperrors"
	"github.com/yigit/student-api/internal/pkg/dberrors"
	"github.com/yigit/student-api/internal/pkg/logger"
)

// Unique constraints on the users table
const (
	UsersUsernameKey = "users_username_key"
	UsersEmailKey    = "users_email_key"
)

// User conflict errors
var (
	ErrUsernameTaken = apperrors.NewConflictError("username already exists")
	ErrEmailTaken    = apperrors.NewConflictError("email already exists")
	ErrUserExists    = apperrors.NewConflictError("user already exists")
)

// UserRepository handles user database operations
type UserRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(q db.Querier) *UserRepository {
	return &UserRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// userConflict maps a unique violation onto the field that caused it
func userConflict(err error) error {
	switch dberrors.ConstraintName(err) {
	case UsersUsernameKey:
		return ErrUsernameTaken
	case UsersEmailKey:
		return ErrEmailTaken
	default:
		return ErrUserExists
	}
}

// FindConflict returns a conflict error when the username or email is already registered,
// or nil when both are free.
func (r *UserRepository) FindConflict(ctx context.Context, username, email string) error {
	sql, args, err := r.sb.Select("username").
		From("users").
		Where(squirrel.Or{
			squirrel.Eq{"username": username},
			squirrel.Eq{"email": email},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user conflict query: %w", err)
	}

	var existing string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&existing)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil
	case err != nil:
		logger.Error().Err(err).Msg("Error checking user conflict")
		return fmt.Errorf("error checking user conflict: %w", err)
	case existing == username:
		return ErrUsernameTaken
	default:
		return ErrEmailTaken
	}
}

// Create inserts a user and returns the stored row
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "email").
		Values(user.Username, user.Email).
		Suffix("RETURNING id, username, email, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return nil, fmt.Errorf("failed to build create user query: %w", err)
	}

	created := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Username, &created.Email, &created.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, userConflict(err)
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// List retrieves all users ordered by id
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select("id", "username", "email", "created_at").
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning user row")
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
