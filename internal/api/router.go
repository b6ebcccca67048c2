package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codingwithdipika/book-lending-api/internal/api/handler"
	"github.com/codingwithdipika/book-lending-api/internal/api/middleware"
	"github.com/codingwithdipika/book-lending-api/internal/core/domain"
	"github.com/codingwithdipika/book-lending-api/internal/core/service"
	"github.com/codingwithdipika/book-lending-api/internal/infrastructure/config"
	mongodb "github.com/codingwithdipika/book-lending-api/internal/infrastructure/db/mongo"
	redisdb "github.com/codingwithdipika/book-lending-api/internal/infrastructure/db/redis"
	"github.com/codingwithdipika/book-lending-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booklending"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.Window)

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, throttle)
	bookService := service.NewBookService(bookRepo, log)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	adminHandler := handler.NewAdminHandler(bookService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes (no token required) ---
	e.POST("/auth", authHandler.Register)
	e.POST("/auth/token", authHandler.Login)

	// --- Book routes (owner-scoped) ---
	books := e.Group("/books", authMiddleware)
	books.GET("", bookHandler.List)
	books.POST("/create-book", bookHandler.Create)
	books.PUT("/update_book/:id", bookHandler.Update)
	books.GET("/:id", bookHandler.Get)

	// --- Admin routes ---
	admin := e.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/todo", adminHandler.ListAll)
	admin.DELETE("/books/:id", adminHandler.Delete)

	// --- User self-service routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("", userHandler.Profile)
	users.PUT("/change_password", userHandler.ChangePassword)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
