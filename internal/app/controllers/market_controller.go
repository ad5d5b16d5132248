package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/student-api/internal/app/models/dto"
	"github.com/yigit/student-api/internal/app/services"
	"github.com/yigit/student-api/internal/middleware"
)

// MarketController handles market listings
type MarketController struct {
	marketService services.MarketService
}

// NewMarketController creates a new MarketController
func NewMarketController(marketService services.MarketService) *MarketController {
	return &MarketController{
		marketService: marketService,
	}
}

// CreateMarket handles market creation
// @Summary Create a market
// @Tags markets
// @Accept json
// @Produce json
// @Param request body dto.CreateMarketRequest true "Market information"
// @Success 201 {object} dto.MarketResponse "Market created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /markets [post]
func (c *MarketController) CreateMarket(ctx *gin.Context) {
	var req dto.CreateMarketRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	market, err := c.marketService.CreateMarket(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MarketResponse{
		Message: "market created successfully",
		Market:  market,
	})
}

// GetMarket retrieves a market by ID
// @Summary Get market by ID
// @Tags markets
// @Produce json
// @Param id path int true "Market ID"
// @Success 200 {object} models.Market
// @Failure 400 {object} dto.ErrorResponse "Invalid market ID"
// @Failure 404 {object} dto.ErrorResponse "Market not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /markets/{id} [get]
func (c *MarketController) GetMarket(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "market")
	if !ok {
		return
	}

	market, err := c.marketService.GetMarket(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, market)
}

// ListMarkets returns all markets
// @Summary List markets
// @Tags markets
// @Produce json
// @Success 200 {array} models.Market
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /markets [get]
func (c *MarketController) ListMarkets(ctx *gin.Context) {
	markets, err := c.marketService.ListMarkets(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, markets)
}
