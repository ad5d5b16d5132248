package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/yigit/student-api/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	UserRepository    *UserRepository
	MarketRepository  *MarketRepository
	VendorRepository  *VendorRepository
	ArticleRepository *ArticleRepository
}

// NewRepositories initializes all repositories on top of one querier
func NewRepositories(q db.Querier) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(q),
		UserRepository:    NewUserRepository(q),
		MarketRepository:  NewMarketRepository(q),
		VendorRepository:  NewVendorRepository(q),
		ArticleRepository: NewArticleRepository(q),
	}
}

// statementBuilder renders $n placeholders for PostgreSQL
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
