package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"prismtasks/internal/auth"
	"prismtasks/internal/config"
	"prismtasks/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	todoHandler *handler.TodoHandler,
	adminHandler *handler.AdminHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/", authHandler.Register)
	e.POST("/auth/token", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	authenticated := auth.Middleware(jwtService)

	// Todo routes (owner-scoped)
	todos := e.Group("", authenticated)
	todos.GET("/", todoHandler.List)
	todos.GET("/todo/:id", todoHandler.Get)
	todos.POST("/todo", todoHandler.Create)
	todos.PUT("/todo/:id", todoHandler.Update)
	todos.DELETE("/todo/:id", todoHandler.Delete)

	// Admin routes
	admin := e.Group("/admin", authenticated, auth.RequireAdmin)
	admin.GET("/todo", adminHandler.ListAll)
	admin.PUT("/todo/:id", adminHandler.Update)
	admin.DELETE("/todo/:id", adminHandler.Delete)

	// Profile routes
	user := e.Group("/user", authenticated)
	user.GET("/get_user", userHandler.GetProfile)
	user.PATCH("/change_password", userHandler.ChangePassword)
	user.PUT("/update_user", userHandler.UpdateProfile)
	user.DELETE("/delete_user", userHandler.DeleteAccount)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
