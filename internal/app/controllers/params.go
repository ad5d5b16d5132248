package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/student-api/internal/middleware"
	"github.com/yigit/student-api/internal/pkg/apperrors"
	"github.com/yigit/student-api/internal/pkg/helpers"
)

// parseIDParam reads a positive numeric path parameter, writing a 400 when it is invalid
func parseIDParam(ctx *gin.Context, param, entity string) (int64, bool) {
	id, err := helpers.ParseID(ctx.Param(param))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid "+entity+" ID").WithField(param))
		return 0, false
	}
	return id, true
}
