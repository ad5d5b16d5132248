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
	"github.com/yigit/student-api/internal/pkg/logger"
)

var marketColumns = []string{"id", "image_link", "label", "description", "content", "latitude", "longitude", "website_link"}

// ErrMarketNotFound is returned when no market has the given id
var ErrMarketNotFound = apperrors.NewResourceNotFoundError("market not found")

// MarketRepository handles market database operations
type MarketRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(q db.Querier) *MarketRepository {
	return &MarketRepository{
		db: q,
		sb: statementBuilder(),
	}
}

func scanMarket(row pgx.Row) (*models.Market, error) {
	m := &models.Market{}
	err := row.Scan(&m.ID, &m.ImageLink, &m.Label, &m.Description, &m.Content, &m.Latitude, &m.Longitude, &m.WebsiteLink)
	return m, err
}

// Create inserts a market and returns the stored row
func (r *MarketRepository) Create(ctx context.Context, market *models.Market) (*models.Market, error) {
	sql, args, err := r.sb.Insert("markets").
		Columns(marketColumns[1:]...).
		Values(market.ImageLink, market.Label, market.Description, market.Content,
			market.Latitude, market.Longitude, market.WebsiteLink).
		Suffix("RETURNING id, image_link, label, description, content, latitude, longitude, website_link").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create market SQL")
		return nil, fmt.Errorf("failed to build create market query: %w", err)
	}

	created, err := scanMarket(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("label", market.Label).Msg("Error executing create market query")
		return nil, fmt.Errorf("error creating market: %w", err)
	}
	return created, nil
}

// GetByID retrieves a market by ID
func (r *MarketRepository) GetByID(ctx context.Context, id int64) (*models.Market, error) {
	sql, args, err := r.sb.Select(marketColumns...).
		From("markets").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get market query: %w", err)
	}

	market, err := scanMarket(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMarketNotFound
		}
		logger.Error().Err(err).Int64("marketID", id).Msg("Error scanning market row")
		return nil, fmt.Errorf("error getting market by ID: %w", err)
	}
	return market, nil
}

// List retrieves all markets ordered by label
func (r *MarketRepository) List(ctx context.Context) ([]*models.Market, error) {
	sql, args, err := r.sb.Select(marketColumns...).
		From("markets").
		OrderBy("label ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list markets query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list markets query")
		return nil, fmt.Errorf("error querying markets: %w", err)
	}
	defer rows.Close()

	markets := []*models.Market{}
	for rows.Next() {
		market, err := scanMarket(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning market row")
			return nil, fmt.Errorf("error scanning market row: %w", err)
		}
		markets = append(markets, market)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating market rows")
		return nil, fmt.Errorf("error iterating market rows: %w", err)
	}
	return markets, nil
}
