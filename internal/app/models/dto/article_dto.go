package dto

import "github.com/yigit/student-api/internal/app/models"

// CreateArticleRequest represents a new article
type CreateArticleRequest struct {
	UserID   int64  `json:"user_id" binding:"required,gt=0" example:"1"`
	MarketID *int64 `json:"market_id" binding:"omitempty,gt=0" example:"2"`
	Title    string `json:"title" binding:"required,notblank"`
	Content  string `json:"content" binding:"required,notblank"`
}

// ToModel converts the request into an Article
func (r CreateArticleRequest) ToModel() *models.Article {
	return &models.Article{
		UserID:   r.UserID,
		MarketID: r.MarketID,
		Title:    r.Title,
		Content:  r.Content,
	}
}

// ArticleResponse wraps a newly created article
type ArticleResponse struct {
	Message string          `json:"message" example:"article created successfully"`
	Article *models.Article `json:"article"`
}
