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

var vendorColumns = []string{
	"id", "image_link", "name", "category", "location", "contact",
	"email", "website", "markets", "products", "description", "content",
}

const vendorReturning = "RETURNING id, image_link, name, category, location, contact, email, website, markets, products, description, content"

// ErrVendorNotFound is returned when no vendor has the given id
var ErrVendorNotFound = apperrors.NewResourceNotFoundError("vendor not found")

// VendorRepository handles vendor database operations
type VendorRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewVendorRepository creates a new VendorRepository
func NewVendorRepository(q db.Querier) *VendorRepository {
	return &VendorRepository{
		db: q,
		sb: statementBuilder(),
	}
}

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	v := &models.Vendor{}
	err := row.Scan(&v.ID, &v.ImageLink, &v.Name, &v.Category, &v.Location, &v.Contact,
		&v.Email, &v.Website, &v.Markets, &v.Products, &v.Description, &v.Content)
	return v, err
}

// Create inserts a vendor and returns the stored row
func (r *VendorRepository) Create(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error) {
	sql, args, err := r.sb.Insert("vendors").
		Columns(vendorColumns[1:]...).
		Values(vendor.ImageLink, vendor.Name, vendor.Category, vendor.Location, vendor.Contact,
			vendor.Email, vendor.Website, vendor.Markets, vendor.Products, vendor.Description, vendor.Content).
		Suffix(vendorReturning).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create vendor SQL")
		return nil, fmt.Errorf("failed to build create vendor query: %w", err)
	}

	created, err := scanVendor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("name", vendor.Name).Msg("Error executing create vendor query")
		return nil, fmt.Errorf("error creating vendor: %w", err)
	}
	return created, nil
}

// GetByID retrieves a vendor by ID
func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*models.Vendor, error) {
	sql, args, err := r.sb.Select(vendorColumns...).
		From("vendors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get vendor query: %w", err)
	}

	vendor, err := scanVendor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		logger.Error().Err(err).Int64("vendorID", id).Msg("Error scanning vendor row")
		return nil, fmt.Errorf("error getting vendor by ID: %w", err)
	}
	return vendor, nil
}

// List retrieves all vendors ordered by name
func (r *VendorRepository) List(ctx context.Context) ([]*models.Vendor, error) {
	sql, args, err := r.sb.Select(vendorColumns...).
		From("vendors").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list vendors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list vendors query")
		return nil, fmt.Errorf("error querying vendors: %w", err)
	}
	defer rows.Close()

	vendors := []*models.Vendor{}
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning vendor row")
			return nil, fmt.Errorf("error scanning vendor row: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating vendor rows")
		return nil, fmt.Errorf("error iterating vendor rows: %w", err)
	}
	return vendors, nil
}
