package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/student-api/internal/app/models/dto"
	"github.com/yigit/student-api/internal/app/services"
	"github.com/yigit/student-api/internal/middleware"
)

// VendorController handles vendor listings
type VendorController struct {
	vendorService services.VendorService
}

// NewVendorController creates a new VendorController
func NewVendorController(vendorService services.VendorService) *VendorController {
	return &VendorController{
		vendorService: vendorService,
	}
}

// CreateVendor handles vendor creation
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body dto.CreateVendorRequest true "Vendor information"
// @Success 201 {object} dto.VendorResponse "Vendor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vendors [post]
func (c *VendorController) CreateVendor(ctx *gin.Context) {
	var req dto.CreateVendorRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	vendor, err := c.vendorService.CreateVendor(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.VendorResponse{
		Message: "vendor created successfully",
		Vendor:  vendor,
	})
}

// GetVendor retrieves a vendor by ID
// @Summary Get vendor by ID
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} models.Vendor
// @Failure 400 {object} dto.ErrorResponse "Invalid vendor ID"
// @Failure 404 {object} dto.ErrorResponse "Vendor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vendors/{id} [get]
func (c *VendorController) GetVendor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "vendor")
	if !ok {
		return
	}

	vendor, err := c.vendorService.GetVendor(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

// ListVendors returns all vendors
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} models.Vendor
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /vendors [get]
func (c *VendorController) ListVendors(ctx *gin.Context) {
	vendors, err := c.vendorService.ListVendors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, vendors)
}
