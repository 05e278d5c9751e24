package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursehub/internal/datatable"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

var lessonColumns = datatable.MustConfig(
	datatable.Column{Name: "id", Prop: "id", Source: "lessons", Sortable: true, Type: datatable.Integer},
	datatable.Column{Name: "title", Prop: "title", Source: "lessons", Searchable: true, Sortable: true, Type: datatable.Text},
	datatable.Column{Name: "courseId", Prop: "course_id", Source: "lessons", Searchable: true, Sortable: true, Type: datatable.Integer},
	datatable.Column{Name: "startsAt", Prop: "starts_at", Source: "lessons", Searchable: true, Sortable: true, Type: datatable.Date, DefaultSort: datatable.SortDesc},
)

// LessonService handles lesson operations.
type LessonService interface {
	List(ctx context.Context, p datatable.Params) ([]model.Lesson, int64, error)
	Get(ctx context.Context, id uint) (*model.Lesson, error)
	Create(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error)
	Update(ctx context.Context, id uint, lesson *model.Lesson) (*model.Lesson, error)
	Delete(ctx context.Context, id uint) error
}

type lessonService struct {
	repo    repository.LessonRepository
	courses repository.CourseRepository
	log     *zap.Logger
}

// NewLessonService builds a LessonService.
func NewLessonService(repo repository.LessonRepository, courses repository.CourseRepository, log *zap.Logger) LessonService {
	return &lessonService{repo: repo, courses: courses, log: log}
}

func (s *lessonService) List(ctx context.Context, p datatable.Params) ([]model.Lesson, int64, error) {
	return s.repo.List(ctx, p, lessonColumns)
}

func (s *lessonService) Get(ctx context.Context, id uint) (*model.Lesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Lesson not found")
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	return lesson, nil
}

func (s *lessonService) Create(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error) {
	if _, err := s.courses.FindByID(ctx, lesson.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Course not found")
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	if err := s.repo.Create(ctx, lesson); err != nil {
		s.log.Error("create lesson", zap.String("title", lesson.Title), zap.Error(err))
		return nil, fmt.Errorf("create lesson: %w", err)
	}
	return lesson, nil
}

func (s *lessonService) Update(ctx context.Context, id uint, lesson *model.Lesson) (*model.Lesson, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Lesson not found")
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}

	if lesson.CourseID != existing.CourseID {
		if _, err := s.courses.FindByID(ctx, lesson.CourseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Course not found")
			}
			return nil, fmt.Errorf("find course: %w", err)
		}
	}

	existing.Title = lesson.Title
	existing.CourseID = lesson.CourseID
	existing.StartsAt = lesson.StartsAt
	if err := s.repo.Update(ctx, existing); err != nil {
		s.log.Error("update lesson", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("update lesson: %w", err)
	}
	return existing, nil
}

func (s *lessonService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Lesson not found")
		}
		return fmt.Errorf("find lesson: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("delete lesson", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("delete lesson: %w", err)
	}
	return nil
}
