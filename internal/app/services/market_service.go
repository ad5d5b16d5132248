package services

import (
	"context"
	"strings"

	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/pkg/apperrors"
	"github.com/yigit/student-api/internal/pkg/helpers"
)

// MarketService defines the interface for market operations
type MarketService interface {
	CreateMarket(ctx context.Context, market *models.Market) (*models.Market, error)
	GetMarket(ctx context.Context, id int64) (*models.Market, error)
	ListMarkets(ctx context.Context) ([]*models.Market, error)
}

// marketServiceImpl implements the MarketService interface
type marketServiceImpl struct {
	store MarketStore
}

// NewMarketService creates a new market service instance
func NewMarketService(store MarketStore) MarketService {
	return &marketServiceImpl{store: store}
}

// CreateMarket stores a new market
func (s *marketServiceImpl) CreateMarket(ctx context.Context, market *models.Market) (*models.Market, error) {
	if market == nil {
		return nil, apperrors.NewValidationError("image_link and label are required")
	}
	market.ImageLink = strings.TrimSpace(market.ImageLink)
	market.Label = strings.TrimSpace(market.Label)
	if market.ImageLink == "" || market.Label == "" {
		return nil, apperrors.NewValidationError("image_link and label are required")
	}

	market.Description = helpers.NullIfBlank(market.Description)
	market.Content = helpers.NullIfBlank(market.Content)
	market.WebsiteLink = helpers.NullIfBlank(market.WebsiteLink)

	return s.store.Create(ctx, market)
}

// GetMarket retrieves a market by ID
func (s *marketServiceImpl) GetMarket(ctx context.Context, id int64) (*models.Market, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("market id must be a positive number")
	}
	return s.store.GetByID(ctx, id)
}

// ListMarkets returns all markets ordered by label
func (s *marketServiceImpl) ListMarkets(ctx context.Context) ([]*models.Market, error) {
	return s.store.List(ctx)
}
