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

// Foreign keys on the articles table
const (
	ArticlesUserFKey   = "articles_user_id_fkey"
	ArticlesMarketFKey = "articles_market_id_fkey"
)

// Article errors
var (
	ErrArticleNotFound = apperrors.NewResourceNotFoundError("article not found")
	ErrUnknownUser     = apperrors.NewInvalidReferenceError("user_id does not reference an existing user")
	ErrUnknownMarket   = apperrors.NewInvalidReferenceError("market_id does not reference an existing market")
	ErrUnknownRelation = apperrors.NewInvalidReferenceError("article references a missing record")
)

// ArticleRepository handles article database operations
type ArticleRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(q db.Querier) *ArticleRepository {
	return &ArticleRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// articleReference maps a foreign-key violation onto the offending column
func articleReference(err error) error {
	switch dberrors.ConstraintName(err) {
	case ArticlesUserFKey:
		return ErrUnknownUser
	case ArticlesMarketFKey:
		return ErrUnknownMarket
	default:
		return ErrUnknownRelation
	}
}

// selectArticles joins the author's username and the market label
func (r *ArticleRepository) selectArticles() squirrel.SelectBuilder {
	return r.sb.Select(
		"a.post_id", "a.user_id", "a.market_id", "a.title", "a.content", "a.created_at",
		"u.username", "m.label",
	).
		From("articles a").
		Join("users u ON u.id = a.user_id").
		LeftJoin("markets m ON m.id = a.market_id")
}

func scanJoinedArticle(row pgx.Row) (*models.Article, error) {
	a := &models.Article{}
	err := row.Scan(&a.PostID, &a.UserID, &a.MarketID, &a.Title, &a.Content, &a.CreatedAt, &a.Username, &a.MarketLabel)
	return a, err
}

// Create inserts an article and returns the stored row
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) (*models.Article, error) {
	sql, args, err := r.sb.Insert("articles").
		Columns("user_id", "market_id", "title", "content").
		Values(article.UserID, article.MarketID, article.Title, article.Content).
		Suffix("RETURNING post_id, user_id, market_id, title, content, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create article SQL")
		return nil, fmt.Errorf("failed to build create article query: %w", err)
	}

	created := &models.Article{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.PostID, &created.UserID, &created.MarketID, &created.Title, &created.Content, &created.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, articleReference(err)
		}
		logger.Error().Err(err).Int64("userID", article.UserID).Msg("Error executing create article query")
		return nil, fmt.Errorf("error creating article: %w", err)
	}
	return created, nil
}

// GetByID retrieves an article with its author and market label
func (r *ArticleRepository) GetByID(ctx context.Context, postID int64) (*models.Article, error) {
	sql, args, err := r.selectArticles().
		Where(squirrel.Eq{"a.post_id": postID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get article query: %w", err)
	}

	article, err := scanJoinedArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		logger.Error().Err(err).Int64("postID", postID).Msg("Error scanning article row")
		return nil, fmt.Errorf("error getting article by ID: %w", err)
	}
	return article, nil
}

// List retrieves all articles, newest first
func (r *ArticleRepository) List(ctx context.Context) ([]*models.Article, error) {
	sql, args, err := r.selectArticles().
		OrderBy("a.created_at DESC", "a.post_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list articles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list articles query")
		return nil, fmt.Errorf("error querying articles: %w", err)
	}
	defer rows.Close()

	articles := []*models.Article{}
	for rows.Next() {
		article, err := scanJoinedArticle(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning article row")
			return nil, fmt.Errorf("error scanning article row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating article rows")
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}
	return articles, nil
}
