package dto

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/pkg/validation"
)

// CreateStudentRequest represents an attendance record submission
type CreateStudentRequest struct {
	StudentID   string `json:"studentID" binding:"required,notblank" example:"S1"`
	StudentName string `json:"studentName" binding:"required,notblank" example:"Ann"`
	Course      string `json:"course" binding:"required,notblank" example:"CS"`
	PresentDate string `json:"presentDate" binding:"required,isodate" example:"2024-01-01"`
}

// ToModel converts the request into a Student. The date has already been validated by binding.
func (r CreateStudentRequest) ToModel() (*models.Student, error) {
	date, err := ParseDate(r.PresentDate)
	if err != nil {
		return nil, err
	}
	return &models.Student{
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		Course:      r.Course,
		PresentDate: date,
	}, nil
}

// UpdateStudentRequest carries the fields of a partial update; absent fields stay unchanged
type UpdateStudentRequest struct {
	StudentName *string `json:"studentName,omitempty" binding:"omitempty,notblank" example:"Ann Lee"`
	Course      *string `json:"course,omitempty" binding:"omitempty,notblank" example:"Math"`
	PresentDate *string `json:"presentDate,omitempty" binding:"omitempty,isodate" example:"2024-01-02"`
}

// ToChanges converts the request into the set of columns to update
func (r UpdateStudentRequest) ToChanges() (models.StudentChanges, error) {
	changes := models.StudentChanges{
		StudentName: r.StudentName,
		Course:      r.Course,
	}
	if r.PresentDate != nil {
		date, err := ParseDate(*r.PresentDate)
		if err != nil {
			return models.StudentChanges{}, err
		}
		changes.PresentDate = &date
	}
	return changes, nil
}

// StudentResponse wraps a student written by POST or PUT
type StudentResponse struct {
	Message string          `json:"message" example:"student created successfully"`
	Student *models.Student `json:"student"`
}

// ParseDate parses a YYYY-MM-DD date, or the date part of an ISO 8601 timestamp, into a pgtype.Date
func ParseDate(value string) (pgtype.Date, error) {
	t, err := validation.ParseDate(value)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}
