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

var gradeColumns = datatable.MustConfig(
	datatable.Column{Name: "id", Prop: "id", Source: "grades", Sortable: true, Type: datatable.Integer},
	datatable.Column{Name: "studentId", Prop: "student_id", Source: "grades", Searchable: true, Sortable: true, Type: datatable.Integer},
	datatable.Column{Name: "lessonId", Prop: "lesson_id", Source: "grades", Searchable: true, Sortable: true, Type: datatable.Integer},
	datatable.Column{Name: "value", Prop: "value", Source: "grades", Searchable: true, Sortable: true, Type: datatable.Integer},
	datatable.Column{Name: "createdAt", Prop: "created_at", Source: "grades", Sortable: true, Type: datatable.Date, DefaultSort: datatable.SortDesc},
)

// GradeService handles grade operations.
type GradeService interface {
	List(ctx context.Context, p datatable.Params) ([]model.Grade, int64, error)
	Get(ctx context.Context, id uint) (*model.Grade, error)
	Create(ctx context.Context, grade *model.Grade) (*model.Grade, error)
	Update(ctx context.Context, id uint, value int) (*model.Grade, error)
	Delete(ctx context.Context, id uint) error
}

type gradeService struct {
	repo    repository.GradeRepository
	lessons repository.LessonRepository
	log     *zap.Logger
}

// NewGradeService builds a GradeService.
func NewGradeService(repo repository.GradeRepository, lessons repository.LessonRepository, log *zap.Logger) GradeService {
	return &gradeService{repo: repo, lessons: lessons, log: log}
}

func (s *gradeService) List(ctx context.Context, p datatable.Params) ([]model.Grade, int64, error) {
	return s.repo.List(ctx, p, gradeColumns)
}

func (s *gradeService) Get(ctx context.Context, id uint) (*model.Grade, error) {
	grade, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Grade not found")
		}
		return nil, fmt.Errorf("find grade: %w", err)
	}
	return grade, nil
}

func (s *gradeService) Create(ctx context.Context, grade *model.Grade) (*model.Grade, error) {
	if _, err := s.lessons.FindByID(ctx, grade.LessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Lesson not found")
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}

	existing, err := s.repo.FindByStudentAndLesson(ctx, grade.StudentID, grade.LessonID)
	if err == nil && existing != nil {
		return nil, apperrors.Conflict("Grade already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check grade existence: %w", err)
	}

	if err := s.repo.Create(ctx, grade); err != nil {
		s.log.Error("create grade",
			zap.Uint("student_id", grade.StudentID),
			zap.Uint("lesson_id", grade.LessonID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create grade: %w", err)
	}
	return grade, nil
}

func (s *gradeService) Update(ctx context.Context, id uint, value int) (*model.Grade, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Grade not found")
		}
		return nil, fmt.Errorf("find grade: %w", err)
	}

	existing.Value = value
	if err := s.repo.Update(ctx, existing); err != nil {
		s.log.Error("update grade", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("update grade: %w", err)
	}
	return existing, nil
}

func (s *gradeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Grade not found")
		}
		return fmt.Errorf("find grade: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("delete grade", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("delete grade: %w", err)
	}
	return nil
}
