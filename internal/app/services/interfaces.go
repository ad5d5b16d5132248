package services

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/yigit/student-api/internal/app/models"
)

// StudentStore persists attendance records
type StudentStore interface {
	Exists(ctx context.Context, studentID string) (bool, error)
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	Update(ctx context.Context, studentID string, changes models.StudentChanges) (*models.Student, error)
}

// UserStore persists users
type UserStore interface {
	FindConflict(ctx context.Context, username, email string) error
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// MarketStore persists markets
type MarketStore interface {
	Create(ctx context.Context, market *models.Market) (*models.Market, error)
	GetByID(ctx context.Context, id int64) (*models.Market, error)
	List(ctx context.Context) ([]*models.Market, error)
}

// VendorStore persists vendors
type VendorStore interface {
	Create(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error)
	GetByID(ctx context.Context, id int64) (*models.Vendor, error)
	List(ctx context.Context) ([]*models.Vendor, error)
}

// ArticleStore persists articles
type ArticleStore interface {
	Create(ctx context.Context, article *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, postID int64) (*models.Article, error)
	List(ctx context.Context) ([]*models.Article, error)
}
