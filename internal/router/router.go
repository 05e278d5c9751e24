package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"coursehub/internal/auth"
	"coursehub/internal/handler"
	"coursehub/internal/middleware"
	"coursehub/internal/model"
	"coursehub/internal/service"
)

// Handlers bundles everything Register wires into routes.
type Handlers struct {
	Auth    *handler.AuthHandler
	Faculty *handler.FacultyHandler
	Group   *handler.GroupHandler
	Course  *handler.CourseHandler
	Lesson  *handler.LessonHandler
	Grade   *handler.GradeHandler
	User    *handler.UserHandler
}

// Register wires routes and middleware. Role allow-lists are declared here,
// per operation, at registration time.
func Register(e *echo.Echo, jwtService *auth.JWTService, authService service.AuthService, h Handlers) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	accessGuard := middleware.AccessTokenGuard(jwtService, authService)
	refreshGuard := middleware.RefreshTokenGuard(jwtService, authService)

	// Public auth routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/signup", h.Auth.SignUp)
	// Refresh authenticates via the httpOnly cookie, logout via bearer token
	api.POST("/auth/refresh", h.Auth.Refresh, refreshGuard)
	api.POST("/auth/logout", h.Auth.Logout, accessGuard)

	secured := api.Group("", accessGuard)

	anyRole := middleware.RequireRoles()
	adminOnly := middleware.RequireRoles(model.RoleAdmin)
	staff := middleware.RequireRoles(model.RoleAdmin, model.RoleInstructor)

	secured.GET("/faculties", h.Faculty.List, anyRole)
	secured.GET("/faculties/:id", h.Faculty.Get, anyRole)
	secured.POST("/faculties", h.Faculty.Create, adminOnly)
	secured.PUT("/faculties/:id", h.Faculty.Update, adminOnly)
	secured.DELETE("/faculties/:id", h.Faculty.Delete, adminOnly)

	secured.GET("/groups", h.Group.List, anyRole)
	secured.GET("/groups/:id", h.Group.Get, anyRole)
	secured.POST("/groups", h.Group.Create, adminOnly)
	secured.PUT("/groups/:id", h.Group.Update, adminOnly)
	secured.DELETE("/groups/:id", h.Group.Delete, adminOnly)

	secured.GET("/courses", h.Course.List, anyRole)
	secured.GET("/courses/:id", h.Course.Get, anyRole)
	secured.POST("/courses", h.Course.Create, adminOnly)
	secured.PUT("/courses/:id", h.Course.Update, adminOnly)
	secured.DELETE("/courses/:id", h.Course.Delete, adminOnly)

	secured.GET("/lessons", h.Lesson.List, anyRole)
	secured.GET("/lessons/:id", h.Lesson.Get, anyRole)
	secured.POST("/lessons", h.Lesson.Create, staff)
	secured.PUT("/lessons/:id", h.Lesson.Update, staff)
	secured.DELETE("/lessons/:id", h.Lesson.Delete, staff)

	secured.GET("/grades", h.Grade.List, staff)
	secured.GET("/grades/:id", h.Grade.Get, anyRole)
	secured.POST("/grades", h.Grade.Create, staff)
	secured.PUT("/grades/:id", h.Grade.Update, staff)
	secured.DELETE("/grades/:id", h.Grade.Delete, staff)

	secured.GET("/users", h.User.List, adminOnly)
	secured.GET("/users/:id", h.User.Get, adminOnly)
	secured.POST("/users", h.User.Create, adminOnly)
	secured.PUT("/users/:id", h.User.Update, adminOnly)
	secured.DELETE("/users/:id", h.User.Delete, adminOnly)
	secured.GET("/users/:id/courses", h.User.EnrolledCourses, adminOnly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
