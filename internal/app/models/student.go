package models

import "github.com/jackc/pgx/v5/pgtype"

// Student defines the attendance record stored in the 'students' table
type Student struct {
	// Caller-assigned unique identifier
	StudentID   string      `json:"studentID" db:"student_id" example:"S1"`
	StudentName string      `json:"studentName" db:"student_name" example:"Ann"`
	Course      string      `json:"course" db:"course" example:"CS"`
	PresentDate pgtype.Date `json:"presentDate" db:"present_date" swaggertype:"string" example:"2024-01-01"`
}

// StudentChanges lists the columns a partial update touches; nil fields are left alone.
type StudentChanges struct {
	StudentName *string
	Course      *string
	PresentDate *pgtype.Date
}

// IsEmpty reports whether no field was supplied
func (c StudentChanges) IsEmpty() bool {
	return c.StudentName == nil && c.Course == nil && c.PresentDate == nil
}
