package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/student-api/internal/app/models/dto"
	"github.com/yigit/student-api/internal/app/services"
	"github.com/yigit/student-api/internal/middleware"
)

// ArticleController handles articles written by users
type ArticleController struct {
	articleService services.ArticleService
}

// NewArticleController creates a new ArticleController
func NewArticleController(articleService services.ArticleService) *ArticleController {
	return &ArticleController{
		articleService: articleService,
	}
}

// CreateArticle handles article creation
// @Summary Create an article
// @Description user_id must reference an existing user; market_id, when given, an existing market.
// @Tags articles
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "Article"
// @Success 201 {object} dto.ArticleResponse "Article created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown user/market"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles [post]
func (c *ArticleController) CreateArticle(ctx *gin.Context) {
	var req dto.CreateArticleRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	article, err := c.articleService.CreateArticle(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ArticleResponse{
		Message: "article created successfully",
		Article: article,
	})
}

// GetArticle retrieves an article with its author and market label
// @Summary Get article by ID
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 400 {object} dto.ErrorResponse "Invalid article ID"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles/{id} [get]
func (c *ArticleController) GetArticle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "article")
	if !ok {
		return
	}

	article, err := c.articleService.GetArticle(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// ListArticles returns all articles, newest first
// @Summary List articles
// @Tags articles
// @Produce json
// @Success 200 {array} models.Article
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /articles [get]
func (c *ArticleController) ListArticles(ctx *gin.Context) {
	articles, err := c.articleService.ListArticles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, articles)
}
