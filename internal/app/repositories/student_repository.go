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

var studentColumns = []string{"student_id", "student_name", "course", "present_date"}

// ErrStudentExists is returned when the student id is already taken
var ErrStudentExists = apperrors.NewConflictError("student already exists")

// ErrStudentNotFound is returned when no student has the given id
var ErrStudentNotFound = apperrors.NewResourceNotFoundError("student not found")

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(q db.Querier) *StudentRepository {
	return &StudentRepository{
		db: q,
		sb: statementBuilder(),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.StudentID, &student.StudentName, &student.Course, &student.PresentDate)
	return student, err
}

// Exists reports whether a student with the given id is stored
func (r *StudentRepository) Exists(ctx context.Context, studentID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Create inserts a student and returns the stored row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(student.StudentID, student.StudentName, student.Course, student.PresentDate).
		Suffix("RETURNING student_id, student_name, course, present_date").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return nil, fmt.Errorf("failed to build create student query: %w", err)
	}

	created, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrStudentExists
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return created, nil
}

// GetByID retrieves a student by its identifier
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

// buildStudentUpdate appends one assignment per supplied field, in a fixed column order,
// and binds the identifier last.
func buildStudentUpdate(sb squirrel.StatementBuilderType, studentID string, changes models.StudentChanges) (string, []interface{}, error) {
	if changes.IsEmpty() {
		return "", nil, apperrors.NewValidationError("no fields to update; provide studentName, course or presentDate")
	}

	update := sb.Update("students")
	if changes.StudentName != nil {
		update = update.Set("student_name", *changes.StudentName)
	}
	if changes.Course != nil {
		update = update.Set("course", *changes.Course)
	}
	if changes.PresentDate != nil {
		update = update.Set("present_date", *changes.PresentDate)
	}

	return update.
		Where(squirrel.Eq{"student_id": studentID}).
		Suffix("RETURNING student_id, student_name, course, present_date").
		ToSql()
}

// Update applies a partial update and returns the row as stored afterwards
func (r *StudentRepository) Update(ctx context.Context, studentID string, changes models.StudentChanges) (*models.Student, error) {
	sql, args, err := buildStudentUpdate(r.sb, studentID, changes)
	if err != nil {
		return nil, err
	}

	updated, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing update student query")
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return updated, nil
}
