package dto

import "github.com/yigit/student-api/internal/app/models"

// CreateVendorRequest represents a new vendor listing
type CreateVendorRequest struct {
	ImageLink   string   `json:"image_link" binding:"required,notblank"`
	Name        string   `json:"name" binding:"required,notblank"`
	Category    *string  `json:"category"`
	Location    *string  `json:"location"`
	Contact     *string  `json:"contact"`
	Email       *string  `json:"email"`
	Website     *string  `json:"website"`
	Markets     []int64  `json:"markets" binding:"omitempty,dive,gt=0"`
	Products    []string `json:"products"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
}

// ToModel converts the request into a Vendor, normalising absent lists to empty ones
func (r CreateVendorRequest) ToModel() *models.Vendor {
	markets := r.Markets
	if markets == nil {
		markets = []int64{}
	}
	products := r.Products
	if products == nil {
		products = []string{}
	}
	return &models.Vendor{
		ImageLink:   r.ImageLink,
		Name:        r.Name,
		Category:    r.Category,
		Location:    r.Location,
		Contact:     r.Contact,
		Email:       r.Email,
		Website:     r.Website,
		Markets:     markets,
		Products:    products,
		Description: r.Description,
		Content:     r.Content,
	}
}

// VendorResponse wraps a newly created vendor
type VendorResponse struct {
	Message string         `json:"message" example:"vendor created successfully"`
	Vendor  *models.Vendor `json:"vendor"`
}
