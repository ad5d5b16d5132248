package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/app/models/dto"
	"github.com/yigit/student-api/internal/app/services"
	"github.com/yigit/student-api/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterUser handles user registration
// @Summary Register a user
// @Description Creates a user. Username and email must both be unused.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "User information"
// @Success 201 {object} dto.UserResponse "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or invalid JSON"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/register [post]
func (c *UserController) RegisterUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.RegisterUser(ctx.Request.Context(), &models.User{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UserResponse{
		Message: "user registered successfully",
		User:    user,
	})
}

// ListUsers returns every registered user
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}
