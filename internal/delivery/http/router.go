// Package http wires the REST surface: Echo routes, bearer-token
// middleware and the role guard on admin operations.
package http

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"library-service/internal/domain/entities"
	"library-service/internal/infrastructure"
)

type Handlers struct {
	Auth          *AuthHandler
	Books         *BookHandler
	BorrowingList *BorrowingListHandler
	Transactions  *TransactionHandler
}

func NewRouter(handlers Handlers, jwtService *infrastructure.JWTService, limiter *infrastructure.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", handlers.Auth.Register, RateLimit(limiter))
	auth.POST("/login", handlers.Auth.Login, RateLimit(limiter))
	auth.POST("/refresh-token", handlers.Auth.Refresh, RateLimit(limiter))
	auth.POST("/logout", handlers.Auth.Logout, RateLimit(limiter))
	auth.GET("/:id", handlers.Auth.GetUser, BearerAuth(jwtService))
	auth.PUT("/:id", handlers.Auth.UpdateUser, BearerAuth(jwtService))
	auth.DELETE("/:id", handlers.Auth.DeleteUser, BearerAuth(jwtService), RequireRole(entities.RoleAdmin))

	books := api.Group("/books", BearerAuth(jwtService))
	books.GET("/all", handlers.Books.GetAll)
	books.GET("/search", handlers.Books.Search)
	books.GET("/:isbn", handlers.Books.GetByISBN)
	books.POST("/save", handlers.Books.Save, RequireRole(entities.RoleAdmin))
	books.PUT("/update/:isbn", handlers.Books.Update, RequireRole(entities.RoleAdmin))
	books.DELETE("/delete/:isbn", handlers.Books.Delete, RequireRole(entities.RoleAdmin))
	books.POST("/:isbn/reviews", handlers.Books.AddReview)

	borrowingList := api.Group("/borrowing-list", BearerAuth(jwtService))
	borrowingList.GET("", handlers.BorrowingList.Get)
	borrowingList.POST("/add", handlers.BorrowingList.Add)
	borrowingList.DELETE("/remove/:isbn", handlers.BorrowingList.Remove)
	borrowingList.DELETE("/clear", handlers.BorrowingList.Clear)

	transactions := api.Group("/transactions", BearerAuth(jwtService))
	transactions.POST("/borrow", handlers.Transactions.Borrow)
	transactions.POST("/return", handlers.Transactions.Return)
	transactions.GET("", handlers.Transactions.List)

	return e
}
