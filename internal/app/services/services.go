package services

import "github.com/yigit/student-api/internal/app/repositories"

// Options toggles optional service behaviour
type Options struct {
	// ConflictPrecheck looks for an existing row before inserting into a unique column
	ConflictPrecheck bool
}

// Services holds all the service instances
type Services struct {
	StudentService StudentService
	UserService    UserService
	MarketService  MarketService
	VendorService  VendorService
	ArticleService ArticleService
}

// NewServices wires every service to its repository
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	return &Services{
		StudentService: NewStudentService(repos.StudentRepository, opts),
		UserService:    NewUserService(repos.UserRepository, opts),
		MarketService:  NewMarketService(repos.MarketRepository),
		VendorService:  NewVendorService(repos.VendorRepository),
		ArticleService: NewArticleService(repos.ArticleRepository),
	}
}
