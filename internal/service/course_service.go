package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursehub/internal/cache"
	"coursehub/internal/datatable"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

const courseCacheTTL = 5 * time.Minute

// Columns the course list endpoint exposes for search and sort.
var courseColumns = datatable.MustConfig(
	datatable.Column{Name: "id", Prop: "id", Source: "courses", Sortable: true, Type: datatable.Integer, DefaultSort: datatable.SortAsc},
	datatable.Column{Name: "name", Prop: "name", Source: "courses", Searchable: true, Sortable: true, Type: datatable.Text},
	datatable.Column{Name: "description", Prop: "description", Source: "courses", Searchable: true, Type: datatable.Text},
	datatable.Column{Name: "createdAt", Prop: "created_at", Source: "courses", Sortable: true, Type: datatable.Date},
)

// CourseService handles course operations.
type CourseService interface {
	List(ctx context.Context, p datatable.Params) ([]model.Course, int64, error)
	Get(ctx context.Context, id uint) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) (*model.Course, error)
	Update(ctx context.Context, id uint, course *model.Course) (*model.Course, error)
	Delete(ctx context.Context, id uint) error
}

type courseService struct {
	repo  repository.CourseRepository
	cache *cache.Client
	log   *zap.Logger
}

// NewCourseService builds a CourseService with repository and cache.
func NewCourseService(repo repository.CourseRepository, cache *cache.Client, log *zap.Logger) CourseService {
	return &courseService{repo: repo, cache: cache, log: log}
}

func (s *courseService) cacheKey(id uint) string {
	return fmt.Sprintf("course:%d", id)
}

func (s *courseService) List(ctx context.Context, p datatable.Params) ([]model.Course, int64, error) {
	return s.repo.List(ctx, p, courseColumns)
}

// Get retrieves a course by ID with read-through caching.
func (s *courseService) Get(ctx context.Context, id uint) (*model.Course, error) {
	var cached model.Course
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Course not found")
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), course, courseCacheTTL)
	return course, nil
}

func (s *courseService) Create(ctx context.Context, course *model.Course) (*model.Course, error) {
	existing, err := s.repo.FindByName(ctx, course.Name)
	if err == nil && existing != nil {
		return nil, apperrors.Conflict("Course already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check course existence: %w", err)
	}

	if err := s.repo.Create(ctx, course); err != nil {
		s.log.Error("create course", zap.String("name", course.Name), zap.Error(err))
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, id uint, course *model.Course) (*model.Course, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Course not found")
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	existing.Name = course.Name
	existing.Description = course.Description
	if err := s.repo.Update(ctx, existing); err != nil {
		s.log.Error("update course", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("update course: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return existing, nil
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Course not found")
		}
		return fmt.Errorf("find course: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("delete course", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("delete course: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
