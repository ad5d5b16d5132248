package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/student-api/internal/app/models/dto"
	"github.com/yigit/student-api/internal/app/services"
	"github.com/yigit/student-api/internal/middleware"
	"github.com/yigit/student-api/internal/pkg/apperrors"
)

// StudentController handles attendance record operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles attendance record creation
// @Summary Record a student
// @Description Stores a new attendance record. studentID must be unique.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Attendance record"
// @Success 201 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or invalid JSON"
// @Failure 409 {object} dto.ErrorResponse "Student already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		if middleware.IsMissingField(err) {
			err = apperrors.NewValidationError(services.MissingStudentFields)
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("presentDate must be a date in YYYY-MM-DD format").WithField("presentDate"))
		return
	}

	created, err := c.studentService.CreateStudent(ctx.Request.Context(), student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentResponse{
		Message: "student created successfully",
		Student: created,
	})
}

// GetStudent retrieves one attendance record
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param studentID path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{studentID} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("studentID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent applies a partial update to an attendance record
// @Summary Update a student
// @Description Updates any of studentName, course and presentDate. Absent fields keep their value.
// @Tags students
// @Accept json
// @Produce json
// @Param studentID path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.StudentResponse "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "No fields to update or invalid JSON"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/{studentID} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	changes, err := req.ToChanges()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("presentDate must be a date in YYYY-MM-DD format").WithField("presentDate"))
		return
	}

	updated, err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("studentID"), changes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{
		Message: "student updated successfully",
		Student: updated,
	})
}
