package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestBuildStudentUpdate(t *testing.T) {
	date := pgtype.Date{Time: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), Valid: true}

	tests := []struct {
		name     string
		changes  models.StudentChanges
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "single field",
			changes:  models.StudentChanges{Course: strPtr("Math")},
			wantSQL:  "UPDATE students SET course = $1 WHERE student_id = $2 RETURNING student_id, student_name, course, present_date",
			wantArgs: []interface{}{"Math", "S1"},
		},
		{
			name:     "name and date",
			changes:  models.StudentChanges{StudentName: strPtr("Ann Lee"), PresentDate: &date},
			wantSQL:  "UPDATE students SET student_name = $1, present_date = $2 WHERE student_id = $3 RETURNING student_id, student_name, course, present_date",
			wantArgs: []interface{}{"Ann Lee", date, "S1"},
		},
		{
			name:     "all fields",
			changes:  models.StudentChanges{StudentName: strPtr("Ann"), Course: strPtr("CS"), PresentDate: &date},
			wantSQL:  "UPDATE students SET student_name = $1, course = $2, present_date = $3 WHERE student_id = $4 RETURNING student_id, student_name, course, present_date",
			wantArgs: []interface{}{"Ann", "CS", date, "S1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildStudentUpdate(statementBuilder(), "S1", tt.changes)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildStudentUpdateIdentifierIsNeverInlined(t *testing.T) {
	sql, args, err := buildStudentUpdate(statementBuilder(), "S1'; DROP TABLE students; --", models.StudentChanges{Course: strPtr("x")})
	require.NoError(t, err)
	assert.NotContains(t, sql, "DROP TABLE")
	assert.Equal(t, "S1'; DROP TABLE students; --", args[len(args)-1])
}

func TestBuildStudentUpdateWithoutFields(t *testing.T) {
	_, _, err := buildStudentUpdate(statementBuilder(), "S1", models.StudentChanges{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}
