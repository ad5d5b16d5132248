package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/student-api/internal/app/controllers"
	"github.com/yigit/student-api/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Health  *controllers.HealthController
	Student *controllers.StudentController
	User    *controllers.UserController
	Market  *controllers.MarketController
	Vendor  *controllers.VendorController
	Article *controllers.ArticleController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	router.GET("/", c.Health.Root)
	router.GET("/health", c.Health.Health)

	// Attendance records
	student := router.Group("/student")
	{
		student.POST("", c.Student.CreateStudent)
		student.GET("/:studentID", c.Student.GetStudent)
		student.PUT("/:studentID", c.Student.UpdateStudent)
	}

	users := router.Group("/users")
	{
		users.POST("/register", c.User.RegisterUser)
		users.GET("", c.User.ListUsers)
	}

	markets := router.Group("/markets")
	{
		markets.POST("", c.Market.CreateMarket)
		markets.GET("", c.Market.ListMarkets)
		markets.GET("/:id", c.Market.GetMarket)
	}

	vendors := router.Group("/vendors")
	{
		vendors.POST("", c.Vendor.CreateVendor)
		vendors.GET("", c.Vendor.ListVendors)
		vendors.GET("/:id", c.Vendor.GetVendor)
	}

	articles := router.Group("/articles")
	{
		articles.POST("", c.Article.CreateArticle)
		articles.GET("", c.Article.ListArticles)
		articles.GET("/:id", c.Article.GetArticle)
	}

	router.NoRoute(middleware.NoRoute())
}
