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

var facultyColumns = datatable.MustConfig(
	datatable.Column{Name: "id", Prop: "id", Source: "faculties", Sortable: true, Type: datatable.Integer, DefaultSort: datatable.SortAsc},
	datatable.Column{Name: "name", Prop: "name", Source: "faculties", Searchable: true, Sortable: true, Type: datatable.Text},
	datatable.Column{Name: "createdAt", Prop: "created_at", Source: "faculties", Sortable: true, Type: datatable.Date},
)

// FacultyService handles faculty operations.
type FacultyService interface {
	List(ctx context.Context, p datatable.Params) ([]model.Faculty, int64, error)
	Get(ctx context.Context, id uint) (*model.Faculty, error)
	Create(ctx context.Context, faculty *model.Faculty) (*model.Faculty, error)
	Update(ctx context.Context, id uint, faculty *model.Faculty) (*model.Faculty, error)
	Delete(ctx context.Context, id uint) error
}

type facultyService struct {
	repo repository.FacultyRepository
	log  *zap.Logger
}

// NewFacultyService builds a FacultyService.
func NewFacultyService(repo repository.FacultyRepository, log *zap.Logger) FacultyService {
	return &facultyService{repo: repo, log: log}
}

func (s *facultyService) List(ctx context.Context, p datatable.Params) ([]model.Faculty, int64, error) {
	return s.repo.List(ctx, p, facultyColumns)
}

func (s *facultyService) Get(ctx context.Context, id uint) (*model.Faculty, error) {
	faculty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Faculty not found")
		}
		return nil, fmt.Errorf("find faculty: %w", err)
	}
	return faculty, nil
}

func (s *facultyService) Create(ctx context.Context, faculty *model.Faculty) (*model.Faculty, error) {
	existing, err := s.repo.FindByName(ctx, faculty.Name)
	if err == nil && existing != nil {
		return nil, apperrors.Conflict("Faculty already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check faculty existence: %w", err)
	}

	if err := s.repo.Create(ctx, faculty); err != nil {
		s.log.Error("create faculty", zap.String("name", faculty.Name), zap.Error(err))
		return nil, fmt.Errorf("create faculty: %w", err)
	}
	return faculty, nil
}

func (s *facultyService) Update(ctx context.Context, id uint, faculty *model.Faculty) (*model.Faculty, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Faculty not found")
		}
		return nil, fmt.Errorf("find faculty: %w", err)
	}

	existing.Name = faculty.Name
	if err := s.repo.Update(ctx, existing); err != nil {
		s.log.Error("update faculty", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("update faculty: %w", err)
	}
	return existing, nil
}

func (s *facultyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Faculty not found")
		}
		return fmt.Errorf("find faculty: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("delete faculty", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("delete faculty: %w", err)
	}
	return nil
}
