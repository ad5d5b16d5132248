package services

import (
	"context"
	"strings"

	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/pkg/apperrors"
	"github.com/yigit/student-api/internal/pkg/helpers"
)

// VendorService defines the interface for vendor operations
type VendorService interface {
	CreateVendor(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error)
	GetVendor(ctx context.Context, id int64) (*models.Vendor, error)
	ListVendors(ctx context.Context) ([]*models.Vendor, error)
}

// vendorServiceImpl implements the VendorService interface
type vendorServiceImpl struct {
	store VendorStore
}

// NewVendorService creates a new vendor service instance
func NewVendorService(store VendorStore) VendorService {
	return &vendorServiceImpl{store: store}
}

// CreateVendor stores a new vendor
func (s *vendorServiceImpl) CreateVendor(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error) {
	if vendor == nil {
		return nil, apperrors.NewValidationError("image_link and name are required")
	}
	vendor.ImageLink = strings.TrimSpace(vendor.ImageLink)
	vendor.Name = strings.TrimSpace(vendor.Name)
	if vendor.ImageLink == "" || vendor.Name == "" {
		return nil, apperrors.NewValidationError("image_link and name are required")
	}

	for _, field := range []**string{
		&vendor.Category, &vendor.Location, &vendor.Contact, &vendor.Email,
		&vendor.Website, &vendor.Description, &vendor.Content,
	} {
		*field = helpers.NullIfBlank(*field)
	}
	if vendor.Markets == nil {
		vendor.Markets = []int64{}
	}
	if vendor.Products == nil {
		vendor.Products = []string{}
	}

	return s.store.Create(ctx, vendor)
}

// GetVendor retrieves a vendor by ID
func (s *vendorServiceImpl) GetVendor(ctx context.Context, id int64) (*models.Vendor, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("vendor id must be a positive number")
	}
	return s.store.GetByID(ctx, id)
}

// ListVendors returns all vendors ordered by name
func (s *vendorServiceImpl) ListVendors(ctx context.Context) ([]*models.Vendor, error) {
	return s.store.List(ctx)
}
