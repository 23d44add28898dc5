package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accessflow/accessflow/internal/api/handler"
	"github.com/accessflow/accessflow/internal/api/middleware"
	"github.com/accessflow/accessflow/internal/core/service"
	mongodb "github.com/accessflow/accessflow/internal/infrastructure/db/mongo"
	redisdb "github.com/accessflow/accessflow/internal/infrastructure/db/redis"
)

// RouterConfig carries the runtime settings the router needs beyond its
// storage handles.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accessflow"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb, cfg.TokenTTL)
	statsCache := redisdb.NewStatsCache(rdb, time.Minute)

	authService := service.NewAuthService(userRepo, profileRepo, denylist, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, profileRepo, log)
	profileService := service.NewProfileService(profileRepo, userRepo, log)
	metricsService := service.NewMetricsService(userRepo, profileRepo, statsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	authRequired := middleware.Auth(cfg.JWTSecret, denylist)
	adminOnly := middleware.AdminOnly()

	// --- Open routes: login, registration, probes, prometheus ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.SignUp)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Session-gated routes ---
	e.POST("/auth/logout", authHandler.Logout, authRequired)

	apiGroup := e.Group("/api", authRequired)
	apiGroup.GET("/metrics", metricsHandler.Snapshot)

	users := apiGroup.Group("/users")
	users.GET("", userHandler.GetAll, adminOnly)
	users.GET("/search", userHandler.GetByParams, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("/:id", userHandler.Update) // self-service or admin, checked in handler
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	profiles := apiGroup.Group("/profiles")
	profiles.GET("", profileHandler.GetAll) // user form needs the catalog
	profiles.GET("/search", profileHandler.GetByParams, adminOnly)
	profiles.POST("", profileHandler.Create, adminOnly)
	profiles.PUT("/:id", profileHandler.Update, adminOnly)
	profiles.DELETE("/:id", profileHandler.Delete, adminOnly)

	return e
}
