package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ratewise/store-ratings/internal/api/handler"
	"github.com/ratewise/store-ratings/internal/api/middleware"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/service"
	"github.com/ratewise/store-ratings/internal/infrastructure/db/postgres"
)

// Options carries the request-facing settings the router needs.
type Options struct {
	JWTSecret string
	// ClientOrigin is the single origin allowed by CORS. The session cookie
	// travels on credentialed cross-site requests, and browsers refuse a
	// wildcard Access-Control-Allow-Origin when credentials are included, so
	// the origin must be named explicitly.
	ClientOrigin string
	// CookieDomain scopes the session cookie; empty means host-only.
	CookieDomain string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{opts.ClientOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("storerating"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	storeRepo := postgres.NewStoreRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, 24*time.Hour)
	storeService := service.NewStoreService(storeRepo, userRepo, log)
	ratingService := service.NewRatingService(ratingRepo, storeRepo, log)
	adminService := service.NewAdminService(authService, userRepo, storeRepo, ratingRepo, log)

	authHandler := handler.NewAuthHandler(authService, opts.CookieDomain)
	storeHandler := handler.NewStoreHandler(storeService)
	userHandler := handler.NewUserHandler(authService, ratingService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMW := middleware.Auth(opts.JWTSecret)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, authMW)

	// --- Store routes ---
	store := e.Group("/store", authMW)
	store.GET("/get", storeHandler.List)
	store.POST("/create", storeHandler.Create, middleware.RBAC(domain.RoleAdmin))
	store.GET("/my-ratings", storeHandler.MyRatings, middleware.RBAC(domain.RoleOwner))
	store.PUT("/update-password", userHandler.UpdatePassword, middleware.RBAC(domain.RoleOwner))

	// --- User routes ---
	user := e.Group("/user", authMW, middleware.RBAC(domain.RoleUser))
	user.PUT("/update-password", userHandler.UpdatePassword)
	user.POST("/rate", userHandler.SubmitRating)
	user.PUT("/rate", userHandler.UpdateRating)

	// --- Admin routes ---
	admin := e.Group("/admin", authMW, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/create-user", adminHandler.CreateUser)
	admin.POST("/create-store", storeHandler.Create)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/stores", adminHandler.Stores)
	admin.GET("/user/:id", adminHandler.UserDetails)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
