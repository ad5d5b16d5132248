package services

import (
	"context"
	"strings"

	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/app/repositories"
	"github.com/yigit/student-api/internal/pkg/apperrors"
	"github.com/yigit/student-api/internal/pkg/logger"
)

// MissingStudentFields is returned when a create request lacks a required field
const MissingStudentFields = "Missing required fields. Please provide studentID, studentName, course, and presentDate."

// StudentService defines the interface for attendance record operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
	UpdateStudent(ctx context.Context, studentID string, changes models.StudentChanges) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	store    StudentStore
	precheck bool
}

// NewStudentService creates a new student service instance
func NewStudentService(store StudentStore, opts Options) StudentService {
	return &studentServiceImpl{
		store:    store,
		precheck: opts.ConflictPrecheck,
	}
}

// validateStudent trims the text fields and checks that all of them are present
func validateStudent(student *models.Student) error {
	if student == nil {
		return apperrors.NewValidationError(MissingStudentFields)
	}
	student.StudentID = strings.TrimSpace(student.StudentID)
	student.StudentName = strings.TrimSpace(student.StudentName)
	student.Course = strings.TrimSpace(student.Course)

	if student.StudentID == "" || student.StudentName == "" || student.Course == "" || !student.PresentDate.Valid {
		return apperrors.NewValidationError(MissingStudentFields)
	}
	return nil
}

// CreateStudent stores a new attendance record
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	if s.precheck {
		exists, err := s.store.Exists(ctx, student.StudentID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, repositories.ErrStudentExists
		}
	}

	logger.Info().Str("studentID", student.StudentID).Msg("Attempting to create student")
	// The primary key still rejects a duplicate that raced past the pre-check
	return s.store.Create(ctx, student)
}

// GetStudent retrieves one attendance record
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, apperrors.NewValidationError("studentID is required")
	}
	return s.store.GetByID(ctx, studentID)
}

// UpdateStudent applies the supplied fields to an existing record
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID string, changes models.StudentChanges) (*models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, apperrors.NewValidationError("studentID is required")
	}
	if changes.IsEmpty() {
		return nil, apperrors.NewValidationError("No fields to update. Provide at least one of studentName, course, or presentDate.")
	}

	if changes.StudentName != nil {
		name := strings.TrimSpace(*changes.StudentName)
		if name == "" {
			return nil, apperrors.NewValidationError("studentName cannot be empty")
		}
		changes.StudentName = &name
	}
	if changes.Course != nil {
		course := strings.TrimSpace(*changes.Course)
		if course == "" {
			return nil, apperrors.NewValidationError("course cannot be empty")
		}
		changes.Course = &course
	}
	if changes.PresentDate != nil && !changes.PresentDate.Valid {
		return nil, apperrors.NewValidationError("presentDate must be a date in YYYY-MM-DD format")
	}

	return s.store.Update(ctx, studentID, changes)
}
