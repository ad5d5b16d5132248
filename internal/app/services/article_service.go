package services

import (
	"context"
	"strings"

	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/pkg/apperrors"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	GetArticle(ctx context.Context, postID int64) (*models.Article, error)
	ListArticles(ctx context.Context) ([]*models.Article, error)
}

// articleServiceImpl implements the ArticleService interface
type articleServiceImpl struct {
	store ArticleStore
}

// NewArticleService creates a new article service instance
func NewArticleService(store ArticleStore) ArticleService {
	return &articleServiceImpl{store: store}
}

// CreateArticle stores a new article. Whether user_id and market_id exist is left to
// the foreign keys.
func (s *articleServiceImpl) CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	if article == nil {
		return nil, apperrors.NewValidationError("user_id, title and content are required")
	}
	article.Title = strings.TrimSpace(article.Title)
	if article.UserID <= 0 || article.Title == "" || strings.TrimSpace(article.Content) == "" {
		return nil, apperrors.NewValidationError("user_id, title and content are required")
	}
	if article.MarketID != nil && *article.MarketID <= 0 {
		return nil, apperrors.NewValidationError("market_id must be a positive number")
	}

	return s.store.Create(ctx, article)
}

// GetArticle retrieves an article by ID
func (s *articleServiceImpl) GetArticle(ctx context.Context, postID int64) (*models.Article, error) {
	if postID <= 0 {
		return nil, apperrors.NewValidationError("article id must be a positive number")
	}
	return s.store.GetByID(ctx, postID)
}

// ListArticles returns all articles, newest first
func (s *articleServiceImpl) ListArticles(ctx context.Context) ([]*models.Article, error) {
	return s.store.List(ctx)
}
