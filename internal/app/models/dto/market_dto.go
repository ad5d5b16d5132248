package dto

import "github.com/yigit/student-api/internal/app/models"

// CreateMarketRequest represents a new market listing
type CreateMarketRequest struct {
	ImageLink   string   `json:"image_link" binding:"required,notblank"`
	Label       string   `json:"label" binding:"required,notblank"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,longitude"`
	WebsiteLink *string  `json:"website_link"`
}

// ToModel converts the request into a Market
func (r CreateMarketRequest) ToModel() *models.Market {
	return &models.Market{
		ImageLink:   r.ImageLink,
		Label:       r.Label,
		Description: r.Description,
		Content:     r.Content,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		WebsiteLink: r.WebsiteLink,
	}
}

// MarketResponse wraps a newly created market
type MarketResponse struct {
	Message string         `json:"message" example:"market created successfully"`
	Market  *models.Market `json:"market"`
}
