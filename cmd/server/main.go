package main

import (
	"log"
	"net/http"

	"coursehub/docs"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"coursehub/internal/auth"
	"coursehub/internal/cache"
	"coursehub/internal/config"
	"coursehub/internal/db"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/handler"
	"coursehub/internal/model"
	"coursehub/internal/repository"
	"coursehub/internal/router"
	"coursehub/internal/service"
)

// @title Course Management API
// @version 1.0
// @description Course management API with faculties, groups, courses, lessons, grades and JWT authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Faculty{},
		&model.Group{},
		&model.Course{},
		&model.Enrollment{},
		&model.Lesson{},
		&model.Grade{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	facultyRepo := repository.NewFacultyRepository(gormDB)
	groupRepo := repository.NewGroupRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	lessonRepo := repository.NewLessonRepository(gormDB)
	gradeRepo := repository.NewGradeRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	hasher := auth.NewHasher(cfg.PasswordHashCost, cfg.TokenHashCost)

	// Services
	authService := service.NewAuthService(userRepo, roleRepo, jwtService, hasher, logger)
	facultyService := service.NewFacultyService(facultyRepo, logger)
	groupService := service.NewGroupService(groupRepo, facultyRepo, logger)
	courseService := service.NewCourseService(courseRepo, cacheClient, logger)
	lessonService := service.NewLessonService(lessonRepo, courseRepo, logger)
	gradeService := service.NewGradeService(gradeRepo, lessonRepo, logger)
	userService := service.NewUserService(userRepo, roleRepo, courseRepo, hasher, logger)

	e := echo.New()
	e.Use(echomw.RequestID())
	e.HTTPErrorHandler = apperrors.NewHTTPErrorHandler(logger)

	router.Register(e, jwtService, authService, router.Handlers{
		Auth:    handler.NewAuthHandler(authService, jwtService),
		Faculty: handler.NewFacultyHandler(facultyService),
		Group:   handler.NewGroupHandler(groupService),
		Course:  handler.NewCourseHandler(courseService),
		Lesson:  handler.NewLessonHandler(lessonService),
		Grade:   handler.NewGradeHandler(gradeService),
		User:    handler.NewUserHandler(userService),
	})

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
