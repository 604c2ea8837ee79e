package main

import (
	"log"
	"net/http"

	_ "prismtasks/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"prismtasks/internal/auth"
	"prismtasks/internal/cache"
	"prismtasks/internal/config"
	"prismtasks/internal/db"
	"prismtasks/internal/handler"
	"prismtasks/internal/model"
	"prismtasks/internal/repository"
	"prismtasks/internal/router"
	"prismtasks/internal/service"
)

// @title PrismTasks API
// @version 1.0
// @description Multi-tenant todo API with JWT authentication and role-based access control.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Todo{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	cookieOpts := auth.NewCookieOptions(cfg.CookieSameSite, cfg.SecureCookies)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	todoService := service.NewTodoService(todoRepo)
	userService := service.NewUserService(userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cookieOpts)
	todoHandler := handler.NewTodoHandler(todoService)
	adminHandler := handler.NewAdminHandler(todoService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		todoHandler,
		adminHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
